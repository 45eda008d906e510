package multimode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joancf/Multimode-Networks/pkg/graph"
	"github.com/joancf/Multimode-Networks/pkg/matrix"
)

// staged runs the phases up to and including Multiply.
func staged(t *testing.T, g *graph.Graph, opts Options) (GraphView, Partition, *matrix.Dense, *matrix.Dense, *matrix.Dense) {
	t.Helper()
	view := g.View(opts.ConsiderDirected)
	p := Classify(view, opts.Attribute, opts.In, opts.Common, opts.Out)
	first, _ := BuildBiAdjacency(view, p.FirstVertical, p.FirstHorizontal, nil)
	second, _ := BuildBiAdjacency(view, p.SecondVertical, p.SecondHorizontal, nil)
	result, err := Multiply(first, second)
	require.NoError(t, err)
	return view, p, first, second, result
}

func TestMultiplyScenario(t *testing.T) {
	_, _, _, _, result := staged(t, tripartite(t), xyz())
	require.Equal(t, matrix.NewFromRows([][]float64{{8, 10}, {12, 15}}), result)
}

func TestMultiplyShapeMismatch(t *testing.T) {
	_, err := Multiply(matrix.New(2, 3), matrix.New(2, 2))
	require.ErrorIs(t, err, matrix.ErrShape)
}

func TestRemoveIntermediateNodes(t *testing.T) {
	g := tripartite(t)
	opts := xyz()
	opts.RemoveNodes = true
	opts.RemoveEdges = true
	view, p, first, second, _ := staged(t, g, opts)

	stats := RemoveIntermediate(view, p, first, second, opts)
	require.Equal(t, RemovalStats{NodesRemoved: 1}, stats)
	require.False(t, g.HasNode("C"))
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, 4, g.NodeCount())
}

func TestRemoveIntermediateEdges(t *testing.T) {
	g := tripartite(t)
	_, _ = g.AddEdge("A", "B", 1, false)
	opts := xyz()
	opts.RemoveEdges = true
	view, p, first, second, _ := staged(t, g, opts)

	stats := RemoveIntermediate(view, p, first, second, opts)
	require.Equal(t, RemovalStats{EdgesRemoved: 4}, stats)
	require.True(t, g.HasNode("C"))
	require.Equal(t, 1, g.EdgeCount(), "only the edge outside both matrices survives")
}

func TestRemoveIntermediateSkipsMissing(t *testing.T) {
	g := tripartite(t)
	opts := xyz()
	opts.RemoveEdges = true
	view, p, first, second, _ := staged(t, g, opts)

	id, _, _, _ := view.Edge("A", "C")
	require.NoError(t, view.RemoveEdge(id))
	require.NoError(t, view.RemoveNode("E"))

	stats := RemoveIntermediate(view, p, first, second, opts)
	require.Equal(t, RemovalStats{EdgesRemoved: 2}, stats)
	require.Equal(t, 0, g.EdgeCount())
}

func TestRemoveIntermediateNone(t *testing.T) {
	g := tripartite(t)
	view, p, first, second, _ := staged(t, g, xyz())

	stats := RemoveIntermediate(view, p, first, second, xyz())
	require.Equal(t, RemovalStats{}, stats)
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, 5, g.NodeCount())
}

func TestCreateEdgesScenario(t *testing.T) {
	g := tripartite(t)
	opts := xyz()
	view, p, _, _, result := staged(t, g, opts)

	var rows []int
	stats, err := CreateEdges(context.Background(), view, g, p, result, opts, func(row int) {
		rows = append(rows, row)
	})
	require.NoError(t, err)
	require.Equal(t, CreationStats{Created: 4}, stats)
	require.Equal(t, []int{0, 1}, rows)

	for _, tt := range []struct {
		from, to string
		w        float64
	}{
		{"A", "D", 8}, {"A", "E", 10}, {"B", "D", 12}, {"B", "E", 15},
	} {
		e, ok := edgeBetween(t, g, tt.from, tt.to)
		require.Truef(t, ok, "edge %s–%s missing", tt.from, tt.to)
		require.Equal(t, tt.w, e.Weight)
		require.False(t, e.Directed)
		require.Equal(t, "X<--->Z", e.Attrs[EdgeTypeColumn])
	}
	require.True(t, g.EdgeColumns().Has(EdgeTypeColumn))
}

func TestCreateEdgesThresholdIsStrict(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		cells     [][]float64
		want      int
	}{
		{"zero never survives", 0, [][]float64{{0, 0}, {0, 0}}, 0},
		{"epsilon survives", 0, [][]float64{{1e-12, 0}, {0, 0}}, 1},
		{"equal is dropped", 10, [][]float64{{8, 10}, {12, 15}}, 2},
		{"all above", 7.5, [][]float64{{8, 10}, {12, 15}}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tripartite(t)
			opts := xyz()
			opts.Threshold = tt.threshold
			view := g.View(false)
			p := Classify(view, "type", "X", "Y", "Z")

			stats, err := CreateEdges(context.Background(), view, g, p, matrix.NewFromRows(tt.cells), opts, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, stats.Created)
			require.Equal(t, 4+tt.want, g.EdgeCount())
		})
	}
}

func TestCreateEdgesSkipsSelfLoopsAndExisting(t *testing.T) {
	g := graph.New(false)
	_ = g.AddNode("A", graph.Attributes{"type": "X"})
	_ = g.AddNode("B", graph.Attributes{"type": "X"})
	_ = g.AddNode("C", graph.Attributes{"type": "Y"})
	_, _ = g.AddEdge("A", "C", 1, false)
	_, _ = g.AddEdge("B", "C", 1, false)
	_, _ = g.AddEdge("A", "B", 7, false)

	// In and Out are the same group, so the diagonal would be self-loops.
	opts := Options{Attribute: "type", In: "X", Common: "Y", Out: "X"}
	view, p, _, _, result := staged(t, g, opts)
	require.Equal(t, matrix.NewFromRows([][]float64{{1, 1}, {1, 1}}), result)

	stats, err := CreateEdges(context.Background(), view, g, p, result, opts, nil)
	require.NoError(t, err)
	require.Equal(t, CreationStats{SelfLoops: 2, Existing: 2}, stats)
	require.Equal(t, 3, g.EdgeCount())

	e, _ := edgeBetween(t, g, "A", "B")
	require.Equal(t, 7.0, e.Weight, "existing edge keeps its weight")
}

func TestCreateEdgesSkipsMissingEndpoints(t *testing.T) {
	g := tripartite(t)
	opts := xyz()
	view, p, _, _, result := staged(t, g, opts)
	require.NoError(t, view.RemoveNode("D"))

	stats, err := CreateEdges(context.Background(), view, g, p, result, opts, nil)
	require.NoError(t, err)
	require.Equal(t, CreationStats{Created: 2, MissingEndpoints: 2}, stats)
}

func TestCreateEdgesDirected(t *testing.T) {
	build := func(directedGraph bool) *graph.Graph {
		g := graph.New(directedGraph)
		_ = g.AddNode("A", graph.Attributes{"type": "X"})
		_ = g.AddNode("C", graph.Attributes{"type": "Y"})
		_ = g.AddNode("D", graph.Attributes{"type": "Z"})
		_, _ = g.AddEdge("A", "C", 2, directedGraph)
		_, _ = g.AddEdge("C", "D", 3, directedGraph)
		return g
	}
	tests := []struct {
		name             string
		directedGraph    bool
		considerDirected bool
		want             bool
	}{
		{"directed graph, directed view", true, true, true},
		{"directed graph, undirected view", true, false, false},
		{"undirected graph, directed request", false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(tt.directedGraph)
			opts := xyz()
			opts.ConsiderDirected = tt.considerDirected
			view, p, _, _, result := staged(t, g, opts)

			stats, err := CreateEdges(context.Background(), view, g, p, result, opts, nil)
			require.NoError(t, err)
			require.Equal(t, 1, stats.Created)
			e, ok := edgeBetween(t, g, "A", "D")
			require.True(t, ok)
			require.Equal(t, 6.0, e.Weight)
			require.Equal(t, tt.want, e.Directed)
		})
	}
}

func TestCreateEdgesStopsPerRow(t *testing.T) {
	g := tripartite(t)
	opts := xyz()
	view, p, _, _, result := staged(t, g, opts)

	ctx, cancel := context.WithCancel(context.Background())
	stats, err := CreateEdges(ctx, view, g, p, result, opts, func(int) { cancel() })
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 2, stats.Created, "first row completes before the check")

	_, ok := edgeBetween(t, g, "B", "D")
	require.False(t, ok)
}

type brokenStore struct{ columnErr, setErr error }

func (s brokenStore) EnsureEdgeColumn(string) error              { return s.columnErr }
func (s brokenStore) SetEdgeAttribute(string, string, any) error { return s.setErr }

func TestCreateEdgesTagFailures(t *testing.T) {
	tests := []struct {
		name  string
		store brokenStore
	}{
		{"column", brokenStore{columnErr: errLookup}},
		{"set", brokenStore{setErr: errLookup}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tripartite(t)
			opts := xyz()
			view, p, _, _, result := staged(t, g, opts)

			stats, err := CreateEdges(context.Background(), view, tt.store, p, result, opts, nil)
			require.NoError(t, err)
			require.Equal(t, CreationStats{Created: 4, Untagged: 4}, stats)
		})
	}
}
