package graph

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownNode is returned when an operation references a node that is
	// not in the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownEdge is returned when an operation references an edge ID that
	// is not in the graph.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrInvalidWeight is returned by [Graph.AddEdge] for negative, NaN or
	// infinite weights.
	ErrInvalidWeight = errors.New("edge weight must be a non-negative finite number")

	// ErrUnknownColumn is returned when writing an edge attribute to a column
	// that has not been declared on the edge table.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnsupported is returned by orientation-dependent queries on an
	// undirected view.
	ErrUnsupported = errors.New("operation not supported on this view")
)

// Attributes stores attribute values keyed by column name.
// Attribute maps are never nil once a node or edge is stored.
type Attributes map[string]any

// Node is a vertex of the graph.
type Node struct {
	ID    string
	Attrs Attributes
}

// Edge connects From and To with a non-negative weight.
// Undirected edges are stored with the endpoints in insertion order; the
// orientation carries no meaning.
type Edge struct {
	ID       string
	From     string
	To       string
	Weight   float64
	Directed bool
	Attrs    Attributes
}

// IsSelfLoop reports whether the edge starts and ends at the same node.
func (e Edge) IsSelfLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

type pair struct{ from, to string }

// Graph is a mutable weighted multigraph with attribute columns.
//
// The zero value is not usable; use New.
type Graph struct {
	directed bool

	nodes     map[string]*Node
	nodeOrder []string
	edges     map[string]*Edge
	edgeOrder []string

	incident map[string][]string // node ID -> incident edge IDs, insertion order
	byPair   map[pair][]string   // (from, to) as stored -> edge IDs

	nodeColumns *Columns
	edgeColumns *Columns

	nextEdge uint64
}

// New creates an empty graph. The directed flag records the graph's
// default orientation and gates whether a directed [View] is available.
func New(directed bool) *Graph {
	return &Graph{
		directed:    directed,
		nodes:       make(map[string]*Node),
		edges:       make(map[string]*Edge),
		incident:    make(map[string][]string),
		byPair:      make(map[pair][]string),
		nodeColumns: newColumns(),
		edgeColumns: newColumns(),
	}
}

// Directed reports whether the graph was created directed.
func (g *Graph) Directed() bool { return g.directed }

// NodeColumns returns the node attribute table schema.
func (g *Graph) NodeColumns() *Columns { return g.nodeColumns }

// EdgeColumns returns the edge attribute table schema.
func (g *Graph) EdgeColumns() *Columns { return g.edgeColumns }

// AddNode adds a node with the given attributes. Every attribute key is
// declared as a node column with a type inferred from its first value.
func (g *Graph) AddNode(id string, attrs Attributes) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNodeID, id)
	}
	if attrs == nil {
		attrs = Attributes{}
	}
	for k, v := range attrs {
		g.nodeColumns.declare(k, typeOf(v))
	}
	g.nodes[id] = &Node{ID: id, Attrs: attrs}
	g.nodeOrder = append(g.nodeOrder, id)
	return nil
}

// RemoveNode deletes a node and every edge touching it.
func (g *Graph) RemoveNode(id string) error {
	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	for _, eid := range slices.Clone(g.incident[id]) {
		g.dropEdge(eid)
	}
	delete(g.nodes, id)
	delete(g.incident, id)
	g.nodeOrder = slices.DeleteFunc(g.nodeOrder, func(s string) bool { return s == id })
	return nil
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node with the given ID and true, or nil and false.
// The returned pointer refers to the stored node.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodeOrder))
	for i, id := range g.nodeOrder {
		out[i] = g.nodes[id]
	}
	return out
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string { return slices.Clone(g.nodeOrder) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// AddEdge adds an edge between two existing nodes and returns its ID.
// IDs are assigned sequentially as "e1", "e2", and so on.
func (g *Graph) AddEdge(from, to string, weight float64, directed bool) (string, error) {
	if _, ok := g.nodes[from]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownNode, to)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	g.nextEdge++
	id := "e" + strconv.FormatUint(g.nextEdge, 10)
	e := &Edge{ID: id, From: from, To: to, Weight: weight, Directed: directed, Attrs: Attributes{}}
	g.edges[id] = e
	g.edgeOrder = append(g.edgeOrder, id)
	g.incident[from] = append(g.incident[from], id)
	if from != to {
		g.incident[to] = append(g.incident[to], id)
	}
	key := pair{from, to}
	g.byPair[key] = append(g.byPair[key], id)
	return id, nil
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(id string) error {
	if _, ok := g.edges[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEdge, id)
	}
	g.dropEdge(id)
	return nil
}

func (g *Graph) dropEdge(id string) {
	e := g.edges[id]
	delete(g.edges, id)
	g.edgeOrder = slices.DeleteFunc(g.edgeOrder, func(s string) bool { return s == id })
	isID := func(s string) bool { return s == id }
	g.incident[e.From] = slices.DeleteFunc(g.incident[e.From], isID)
	if e.To != e.From {
		g.incident[e.To] = slices.DeleteFunc(g.incident[e.To], isID)
	}
	key := pair{e.From, e.To}
	if ids := slices.DeleteFunc(g.byPair[key], isID); len(ids) > 0 {
		g.byPair[key] = ids
	} else {
		delete(g.byPair, key)
	}
}

// HasEdge reports whether an edge with the given ID exists.
func (g *Graph) HasEdge(id string) bool {
	_, ok := g.edges[id]
	return ok
}

// Edge returns the edge with the given ID and true, or nil and false.
func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edgeOrder))
	for i, id := range g.edgeOrder {
		out[i] = g.edges[id]
	}
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// EnsureEdgeColumn returns without error if a string column with the given
// name exists on the edge table, creating it otherwise.
func (g *Graph) EnsureEdgeColumn(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty column name", ErrUnknownColumn)
	}
	g.edgeColumns.declare(name, ColumnString)
	return nil
}

// SetEdgeAttribute stores value under column on the given edge.
// The column must already be declared on the edge table.
func (g *Graph) SetEdgeAttribute(edgeID, column string, value any) error {
	e, ok := g.edges[edgeID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEdge, edgeID)
	}
	if !g.edgeColumns.Has(column) {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	e.Attrs[column] = value
	return nil
}

// SetEdgeAttributes stores attrs on the given edge. Like AddNode, it
// declares every key as an edge column typed from its value; a key already
// declared with another type degrades to ColumnAny.
func (g *Graph) SetEdgeAttributes(edgeID string, attrs Attributes) error {
	e, ok := g.edges[edgeID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEdge, edgeID)
	}
	for k, v := range attrs {
		if k == "" {
			return fmt.Errorf("%w: empty column name", ErrUnknownColumn)
		}
		g.edgeColumns.declare(k, typeOf(v))
		e.Attrs[k] = v
	}
	return nil
}

// edgeSeq returns the sequence number encoded in an edge ID.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}
