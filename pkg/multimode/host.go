package multimode

// EdgeTypeColumn is the edge column that records which two categories
// produced an edge.
const EdgeTypeColumn = "MMNT-EdgeType"

// labelSeparator joins the in and out categories in the provenance label.
const labelSeparator = "<--->"

// nullCategory is the category of a node that has no value for the
// classification attribute.
const nullCategory = "null"

// GraphView is the part of a host graph a projection reads and mutates.
//
// Nodes must enumerate in a stable order. Edge reports the edge joining
// from and to as seen through the view, with ok false when there is none;
// a non-nil error means the lookup itself could not be answered.
type GraphView interface {
	Nodes() []string
	IsDirected() bool
	Contains(id string) bool
	Attribute(id, column string) (any, bool)
	Neighbors(id string) ([]string, error)
	Edge(from, to string) (id string, weight float64, ok bool, err error)
	RemoveNode(id string) error
	RemoveEdge(id string) error
	AddEdge(from, to string, weight float64, directed bool) (string, error)
}

// Host hands out graph views. considerDirected requests the directed view;
// hosts without one return their undirected view.
type Host interface {
	View(considerDirected bool) GraphView
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(considerDirected bool) GraphView

// View calls f(considerDirected).
func (f HostFunc) View(considerDirected bool) GraphView { return f(considerDirected) }

// AttributeStore writes edge attributes.
type AttributeStore interface {
	// EnsureEdgeColumn gets or creates a string column on the edge table.
	EnsureEdgeColumn(name string) error
	SetEdgeAttribute(edgeID, column string, value any) error
}
