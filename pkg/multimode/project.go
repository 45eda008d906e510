package multimode

import (
	"context"
	"fmt"

	"github.com/joancf/Multimode-Networks/pkg/matrix"
)

// Multiply returns first · second, the co-occurrence weights between the
// first and second groups.
func Multiply(first, second *matrix.Dense) (*matrix.Dense, error) {
	result, err := matrix.Mul(first, second)
	if err != nil {
		return nil, fmt.Errorf("multiply: %w", err)
	}
	return result, nil
}

// RemovalStats counts what RemoveIntermediate deleted.
type RemovalStats struct {
	NodesRemoved int
	EdgesRemoved int
}

// RemoveIntermediate applies the removal policy of opts. With RemoveNodes it
// deletes the intermediate group, which takes its edges with it. Otherwise,
// with RemoveEdges, it deletes the edge behind every positive cell of first
// and second. Nodes and edges that are already gone are skipped.
func RemoveIntermediate(view GraphView, part Partition, first, second *matrix.Dense, opts Options) RemovalStats {
	var stats RemovalStats
	switch {
	case opts.RemoveNodes:
		for _, id := range part.FirstHorizontal {
			if !view.Contains(id) {
				continue
			}
			if err := view.RemoveNode(id); err == nil {
				stats.NodesRemoved++
			}
		}
	case opts.RemoveEdges:
		stats.EdgesRemoved += removeCells(view, first, part.FirstVertical, part.FirstHorizontal)
		stats.EdgesRemoved += removeCells(view, second, part.SecondVertical, part.SecondHorizontal)
	}
	return stats
}

func removeCells(view GraphView, m *matrix.Dense, rows, cols []string) int {
	removed := 0
	m.NonZero(func(i, j int, _ float64) {
		from, to := rows[i], cols[j]
		if !view.Contains(from) || !view.Contains(to) {
			return
		}
		id, _, ok, err := view.Edge(from, to)
		if err != nil || !ok {
			return
		}
		if view.RemoveEdge(id) == nil {
			removed++
		}
	})
	return removed
}

// CreationStats counts the outcome of every result cell above the threshold.
type CreationStats struct {
	Created          int
	SelfLoops        int // cells whose endpoints are the same node
	MissingEndpoints int // cells with an endpoint no longer in the graph
	Existing         int // cells whose endpoints are already connected
	Failed           int // cells the host refused to add or look up
	Untagged         int // created edges whose label could not be written
}

// CreateEdges adds an edge for every cell of result strictly above
// opts.Threshold, weighted by the cell value and tagged with opts.Label().
// onRow, if non-nil, is called after each result row. ctx is checked after
// every row; when it is done CreateEdges stops and returns ctx.Err() along
// with the counts so far.
func CreateEdges(ctx context.Context, view GraphView, attrs AttributeStore, part Partition, result *matrix.Dense, opts Options, onRow func(row int)) (CreationStats, error) {
	var stats CreationStats
	opts.setDefaults()

	tag := true
	if err := attrs.EnsureEdgeColumn(EdgeTypeColumn); err != nil {
		opts.Logger.Warn("cannot create edge type column", "column", EdgeTypeColumn, "err", err)
		tag = false
	}
	label := opts.Label()
	directed := opts.ConsiderDirected && view.IsDirected()

	for i, from := range part.FirstVertical {
		for j, to := range part.SecondHorizontal {
			w := result.At(i, j)
			if !(w > opts.Threshold) {
				continue
			}
			if from == to {
				stats.SelfLoops++
				continue
			}
			if !view.Contains(from) || !view.Contains(to) {
				stats.MissingEndpoints++
				continue
			}
			_, _, exists, err := view.Edge(from, to)
			if err != nil {
				stats.Failed++
				opts.Logger.Debug("edge lookup failed", "from", from, "to", to, "err", err)
				continue
			}
			if exists {
				stats.Existing++
				continue
			}
			id, err := view.AddEdge(from, to, w, directed)
			if err != nil {
				stats.Failed++
				opts.Logger.Debug("add edge failed", "from", from, "to", to, "err", err)
				continue
			}
			stats.Created++
			if !tag {
				stats.Untagged++
				continue
			}
			if err := attrs.SetEdgeAttribute(id, EdgeTypeColumn, label); err != nil {
				stats.Untagged++
				opts.Logger.Debug("tag edge failed", "edge", id, "err", err)
			}
		}
		if onRow != nil {
			onRow(i)
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}
	}
	return stats, nil
}
