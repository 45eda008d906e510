package multimode

import (
	"errors"
	"testing"

	"github.com/joancf/Multimode-Networks/pkg/graph"
)

var errLookup = errors.New("lookup unsupported")

// tripartite builds the A,B (X) / C (Y) / D,E (Z) graph.
func tripartite(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(false)
	for _, n := range []struct{ id, kind string }{
		{"A", "X"}, {"B", "X"}, {"C", "Y"}, {"D", "Z"}, {"E", "Z"},
	} {
		if err := g.AddNode(n.id, graph.Attributes{"type": n.kind}); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"A", "C", 2}, {"B", "C", 3}, {"C", "D", 4}, {"C", "E", 5},
	} {
		if _, err := g.AddEdge(e.from, e.to, e.w, false); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func hostOf(g *graph.Graph) Host {
	return HostFunc(func(directed bool) GraphView { return g.View(directed) })
}

func xyz() Options {
	return Options{Attribute: "type", In: "X", Common: "Y", Out: "Z"}
}

// faultyView fails neighbor queries for the nodes in neighbors and edge
// lookups for the pairs in edges.
type faultyView struct {
	GraphView
	neighbors map[string]bool
	edges     map[[2]string]bool
}

func (v *faultyView) Neighbors(id string) ([]string, error) {
	if v.neighbors[id] {
		return nil, errLookup
	}
	return v.GraphView.Neighbors(id)
}

func (v *faultyView) Edge(from, to string) (string, float64, bool, error) {
	if v.edges[[2]string{from, to}] {
		return "", 0, false, errLookup
	}
	return v.GraphView.Edge(from, to)
}

// edgeBetween returns the edge joining a and b in either direction.
func edgeBetween(t *testing.T, g *graph.Graph, a, b string) (*graph.Edge, bool) {
	t.Helper()
	id, _, ok, err := g.View(false).Edge(a, b)
	if err != nil {
		t.Fatalf("Edge(%s, %s) error: %v", a, b, err)
	}
	if !ok {
		return nil, false
	}
	e, _ := g.Edge(id)
	return e, true
}
