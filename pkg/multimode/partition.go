package multimode

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Partition holds the four node lists that index the bi-adjacency matrices.
//
// FirstHorizontal and SecondVertical always hold the same nodes in the same
// order; they are kept apart because they index different matrices. The
// lists are snapshots taken before any mutation and do not follow later
// changes to the graph.
type Partition struct {
	FirstVertical    []string // matches In
	FirstHorizontal  []string // matches Common
	SecondVertical   []string // matches Common
	SecondHorizontal []string // matches Out
}

// Classify sorts the view's nodes into a Partition in one pass, keeping the
// view's enumeration order. A node is tested against each category
// separately, so colliding category values put it in several lists.
//
// Values compare as strings. A missing value reads "null", and a float
// reads like a Java Double, so 1 from a JSON file matches "1.0".
func Classify(view GraphView, attribute, in, common, out string) Partition {
	var p Partition
	for _, id := range view.Nodes() {
		value := categoryOf(view, id, attribute)
		if value == in {
			p.FirstVertical = append(p.FirstVertical, id)
		}
		if value == common {
			p.FirstHorizontal = append(p.FirstHorizontal, id)
			p.SecondVertical = append(p.SecondVertical, id)
		}
		if value == out {
			p.SecondHorizontal = append(p.SecondHorizontal, id)
		}
	}
	return p
}

// Category is one distinct value of a classification attribute.
type Category struct {
	Value string
	Count int
}

// Categories lists the distinct values of attribute across the view's nodes,
// sorted by value. Nodes without a value are counted under "null". Float
// values are listed as "1.0" rather than "1", matching what Classify
// compares against.
func Categories(view GraphView, attribute string) []Category {
	counts := make(map[string]int)
	for _, id := range view.Nodes() {
		counts[categoryOf(view, id, attribute)]++
	}
	out := make([]Category, 0, len(counts))
	for v, n := range counts {
		out = append(out, Category{Value: v, Count: n})
	}
	slices.SortFunc(out, func(a, b Category) int { return strings.Compare(a.Value, b.Value) })
	return out
}

func categoryOf(view GraphView, id, attribute string) string {
	v, ok := view.Attribute(id, attribute)
	if !ok || v == nil {
		return nullCategory
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return formatFloat(s, 64)
	case float32:
		return formatFloat(float64(s), 32)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat renders f the way JVM-based graph tools print Double and
// Float attributes: integral values keep a ".0" suffix ("1.0"), magnitudes
// outside [1e-3, 1e7) use "1.5E10" notation.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	if abs := math.Abs(f); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bits)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, bits), "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(n)
}
