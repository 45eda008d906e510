package multimode

import (
	"github.com/charmbracelet/log"

	"github.com/joancf/Multimode-Networks/pkg/matrix"
)

// LookupFailure records a recovered host error.
type LookupFailure struct {
	Node     string // row node whose query failed
	Neighbor string // set when an edge lookup failed
	Err      error
}

// BuildStats summarizes one bi-adjacency build.
type BuildStats struct {
	Rows, Cols      int
	Cells           int // cells holding an edge weight
	FailedNeighbors int // rows left empty because the neighbor query failed
	SkippedCells    int // cells left zero because the edge lookup failed
	Failures        []LookupFailure
}

// BuildBiAdjacency builds the |vertical|×|horizontal| matrix whose cell
// (i, j) holds the weight of the edge from vertical[i] to horizontal[j],
// or zero when the view has no such edge.
//
// Only neighbors of each row node are looked up, so the cost follows the
// number of edges rather than the matrix size. Lookup errors never abort
// the build; see [BuildStats].
func BuildBiAdjacency(view GraphView, vertical, horizontal []string, logger *log.Logger) (*matrix.Dense, BuildStats) {
	stats := BuildStats{Rows: len(vertical), Cols: len(horizontal)}
	m := matrix.New(len(vertical), len(horizontal))
	if len(vertical) == 0 || len(horizontal) == 0 {
		return m, stats
	}

	column := make(map[string]int, len(horizontal))
	for j, id := range horizontal {
		if _, dup := column[id]; !dup {
			column[id] = j
		}
	}

	for i, id := range vertical {
		neighbors, err := view.Neighbors(id)
		if err != nil {
			stats.FailedNeighbors++
			stats.Failures = append(stats.Failures, LookupFailure{Node: id, Err: err})
			if logger != nil {
				logger.Debug("neighbor query failed", "node", id, "err", err)
			}
			continue
		}
		for _, n := range neighbors {
			j, ok := column[n]
			if !ok {
				continue
			}
			_, w, found, err := view.Edge(id, n)
			if err != nil {
				stats.SkippedCells++
				stats.Failures = append(stats.Failures, LookupFailure{Node: id, Neighbor: n, Err: err})
				if logger != nil {
					logger.Debug("edge lookup failed", "node", id, "neighbor", n, "err", err)
				}
				continue
			}
			if !found {
				continue
			}
			m.Set(i, j, w)
			stats.Cells++
		}
	}
	return m, stats
}
