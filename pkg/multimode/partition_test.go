package multimode

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/joancf/Multimode-Networks/pkg/graph"
)

func TestClassify(t *testing.T) {
	g := tripartite(t)
	p := Classify(g.View(false), "type", "X", "Y", "Z")

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"FirstVertical", p.FirstVertical, []string{"A", "B"}},
		{"FirstHorizontal", p.FirstHorizontal, []string{"C"}},
		{"SecondVertical", p.SecondVertical, []string{"C"}},
		{"SecondHorizontal", p.SecondHorizontal, []string{"D", "E"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestClassifyNullCategory(t *testing.T) {
	g := graph.New(false)
	_ = g.AddNode("tagged", graph.Attributes{"type": "X"})
	_ = g.AddNode("bare", nil)
	_ = g.AddNode("nil", graph.Attributes{"type": nil})

	p := Classify(g.View(false), "type", "null", "X", "missing")
	if want := []string{"bare", "nil"}; !slices.Equal(p.FirstVertical, want) {
		t.Errorf("FirstVertical = %v, want %v", p.FirstVertical, want)
	}
	if want := []string{"tagged"}; !slices.Equal(p.FirstHorizontal, want) {
		t.Errorf("FirstHorizontal = %v, want %v", p.FirstHorizontal, want)
	}
	if len(p.SecondHorizontal) != 0 {
		t.Errorf("SecondHorizontal = %v, want empty", p.SecondHorizontal)
	}
}

func TestClassifyOverlappingCategories(t *testing.T) {
	g := tripartite(t)
	p := Classify(g.View(false), "type", "Y", "Y", "Z")

	if !slices.Equal(p.FirstVertical, []string{"C"}) {
		t.Errorf("FirstVertical = %v, want [C]", p.FirstVertical)
	}
	if !slices.Equal(p.FirstHorizontal, []string{"C"}) {
		t.Errorf("FirstHorizontal = %v, want [C]", p.FirstHorizontal)
	}
}

func TestClassifyStringifiesValues(t *testing.T) {
	g := graph.New(false)
	_ = g.AddNode("i", graph.Attributes{"level": 3})
	_ = g.AddNode("f", graph.Attributes{"level": 3.5})
	_ = g.AddNode("b", graph.Attributes{"level": true})

	p := Classify(g.View(false), "level", "3", "3.5", "true")
	if !slices.Equal(p.FirstVertical, []string{"i"}) {
		t.Errorf("FirstVertical = %v, want [i]", p.FirstVertical)
	}
	if !slices.Equal(p.FirstHorizontal, []string{"f"}) {
		t.Errorf("FirstHorizontal = %v, want [f]", p.FirstHorizontal)
	}
	if !slices.Equal(p.SecondHorizontal, []string{"b"}) {
		t.Errorf("SecondHorizontal = %v, want [b]", p.SecondHorizontal)
	}
}

func TestClassifyFloatValuesReadLikeDoubles(t *testing.T) {
	g := graph.New(false)
	_ = g.AddNode("one", graph.Attributes{"mode": 1.0})
	_ = g.AddNode("two", graph.Attributes{"mode": 2.0})
	_ = g.AddNode("half", graph.Attributes{"mode": float32(0.5)})

	p := Classify(g.View(false), "mode", "1.0", "0.5", "2")
	if !slices.Equal(p.FirstVertical, []string{"one"}) {
		t.Errorf("FirstVertical = %v, want [one]", p.FirstVertical)
	}
	if !slices.Equal(p.FirstHorizontal, []string{"half"}) {
		t.Errorf("FirstHorizontal = %v, want [half]", p.FirstHorizontal)
	}
	if len(p.SecondHorizontal) != 0 {
		t.Errorf("SecondHorizontal = %v, want empty: 2.0 reads as \"2.0\"", p.SecondHorizontal)
	}

	got := Categories(g.View(false), "mode")
	want := []Category{{"0.5", 1}, {"1.0", 1}, {"2.0", 1}}
	if !slices.Equal(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{-3, "-3.0"},
		{0, "0.0"},
		{2.5, "2.5"},
		{0.001, "0.001"},
		{1234567, "1234567.0"},
		{1e7, "1.0E7"},
		{1.5e10, "1.5E10"},
		{1e-4, "1.0E-4"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in, 64); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassifyIsSnapshot(t *testing.T) {
	g := tripartite(t)
	view := g.View(false)
	p := Classify(view, "type", "X", "Y", "Z")

	_ = view.RemoveNode("C")
	if !slices.Equal(p.FirstHorizontal, []string{"C"}) {
		t.Errorf("FirstHorizontal after removal = %v, want [C]", p.FirstHorizontal)
	}
}

func TestClassifyConsistentWithAttributes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	kinds := []string{"X", "Y", "Z", "W", ""}

	g := graph.New(false)
	for i := range 200 {
		attrs := graph.Attributes{}
		if k := kinds[rng.Intn(len(kinds))]; k != "" {
			attrs["type"] = k
		}
		_ = g.AddNode(fmt.Sprintf("n%d", i), attrs)
	}
	view := g.View(false)
	p := Classify(view, "type", "X", "Y", "null")

	check := func(name string, ids []string, want string) {
		for _, id := range ids {
			if !view.Contains(id) {
				t.Errorf("%s contains unknown node %s", name, id)
			}
			if got := categoryOf(view, id, "type"); got != want {
				t.Errorf("%s node %s has category %q, want %q", name, id, got, want)
			}
		}
	}
	check("FirstVertical", p.FirstVertical, "X")
	check("FirstHorizontal", p.FirstHorizontal, "Y")
	check("SecondVertical", p.SecondVertical, "Y")
	check("SecondHorizontal", p.SecondHorizontal, "null")

	total := 0
	for _, c := range Categories(view, "type") {
		switch c.Value {
		case "X":
			total += c.Count
			if c.Count != len(p.FirstVertical) {
				t.Errorf("X count = %d, FirstVertical has %d", c.Count, len(p.FirstVertical))
			}
		case "null":
			if c.Count != len(p.SecondHorizontal) {
				t.Errorf("null count = %d, SecondHorizontal has %d", c.Count, len(p.SecondHorizontal))
			}
		}
	}
	if total == 0 {
		t.Error("expected some X nodes in the random graph")
	}
}

func TestCategories(t *testing.T) {
	g := tripartite(t)
	_ = g.AddNode("F", nil)

	got := Categories(g.View(false), "type")
	want := []Category{{"X", 2}, {"Y", 1}, {"Z", 2}, {"null", 1}}
	if !slices.Equal(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}
