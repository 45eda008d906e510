package graph

import "fmt"

// View is a directed or undirected window onto a Graph. Reads and writes
// through a View act on the underlying graph immediately.
type View struct {
	g        *Graph
	directed bool
}

// View returns a view of g. The view is directed only when g is directed
// and directed is true.
func (g *Graph) View(directed bool) *View {
	return &View{g: g, directed: directed && g.directed}
}

// Graph returns the underlying graph.
func (v *View) Graph() *Graph { return v.g }

// IsDirected reports whether edge lookups respect orientation.
func (v *View) IsDirected() bool { return v.directed }

// Nodes returns the IDs of all visible nodes in insertion order.
func (v *View) Nodes() []string { return v.g.NodeIDs() }

// Contains reports whether the node is present.
func (v *View) Contains(id string) bool { return v.g.HasNode(id) }

// Attribute returns the node's value for column, if it has one.
// A stored nil counts as absent.
func (v *View) Attribute(id, column string) (any, bool) {
	n, ok := v.g.nodes[id]
	if !ok {
		return nil, false
	}
	val, ok := n.Attrs[column]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}

// Neighbors returns the distinct nodes sharing an edge with id, in the
// order their first connecting edge was added. Both incoming and outgoing
// edges count, and the node itself is excluded.
func (v *View) Neighbors(id string) ([]string, error) {
	if !v.g.HasNode(id) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	seen := make(map[string]struct{})
	var out []string
	for _, eid := range v.g.incident[id] {
		other := v.g.edges[eid].Other(id)
		if other == id {
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	return out, nil
}

// Successors returns the targets of edges leaving id, counting undirected
// edges in both directions. It returns ErrUnsupported on an undirected view.
func (v *View) Successors(id string) ([]string, error) {
	return v.oriented(id, true)
}

// Predecessors returns the sources of edges entering id, counting
// undirected edges in both directions. It returns ErrUnsupported on an
// undirected view.
func (v *View) Predecessors(id string) ([]string, error) {
	return v.oriented(id, false)
}

func (v *View) oriented(id string, outgoing bool) ([]string, error) {
	if !v.directed {
		return nil, ErrUnsupported
	}
	if !v.g.HasNode(id) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	seen := make(map[string]struct{})
	var out []string
	for _, eid := range v.g.incident[id] {
		e := v.g.edges[eid]
		var other string
		switch {
		case !e.Directed:
			other = e.Other(id)
		case outgoing && e.From == id:
			other = e.To
		case !outgoing && e.To == id:
			other = e.From
		default:
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	return out, nil
}

// Edge looks up an edge between from and to and returns its ID and weight.
//
// On a directed view, directed edges match only from→to while undirected
// edges match either way. On an undirected view any edge between the pair
// matches. When several edges qualify the earliest added wins. Unknown
// endpoints return ErrUnknownNode.
func (v *View) Edge(from, to string) (string, float64, bool, error) {
	if !v.g.HasNode(from) {
		return "", 0, false, fmt.Errorf("%w: %s", ErrUnknownNode, from)
	}
	if !v.g.HasNode(to) {
		return "", 0, false, fmt.Errorf("%w: %s", ErrUnknownNode, to)
	}
	if e := v.lookup(from, to); e != nil {
		return e.ID, e.Weight, true, nil
	}
	return "", 0, false, nil
}

func (v *View) lookup(from, to string) *Edge {
	var best *Edge
	consider := func(ids []string, undirectedOnly bool) {
		for _, eid := range ids {
			e := v.g.edges[eid]
			if undirectedOnly && e.Directed {
				continue
			}
			if best == nil || edgeSeq(e.ID) < edgeSeq(best.ID) {
				best = e
			}
			return
		}
	}
	consider(v.g.byPair[pair{from, to}], false)
	if from != to {
		consider(v.g.byPair[pair{to, from}], v.directed)
	}
	return best
}

// RemoveNode deletes the node and its incident edges.
func (v *View) RemoveNode(id string) error { return v.g.RemoveNode(id) }

// RemoveEdge deletes the edge with the given ID.
func (v *View) RemoveEdge(id string) error { return v.g.RemoveEdge(id) }

// AddEdge adds an edge. A directed edge requested on an undirected view is
// stored undirected.
func (v *View) AddEdge(from, to string, weight float64, directed bool) (string, error) {
	return v.g.AddEdge(from, to, weight, directed && v.directed)
}
