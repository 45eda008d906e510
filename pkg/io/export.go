package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joancf/Multimode-Networks/pkg/graph"
)

type document struct {
	Directed bool   `json:"directed"`
	Nodes    []node `json:"nodes"`
	Edges    []edge `json:"edges"`
}

type node struct {
	ID    string           `json:"id"`
	Attrs graph.Attributes `json:"attrs,omitempty"`
}

type edge struct {
	From     string           `json:"from"`
	To       string           `json:"to"`
	Weight   *float64         `json:"weight,omitempty"`
	Directed *bool            `json:"directed,omitempty"`
	Attrs    graph.Attributes `json:"attrs,omitempty"`
}

// WriteJSON encodes g as JSON and writes it to w. Nodes and edges are
// written in the graph's enumeration order. An edge's directed flag is
// written only when it differs from the graph's.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	nodes := g.Nodes()
	edges := g.Edges()
	out := document{
		Directed: g.Directed(),
		Nodes:    make([]node, len(nodes)),
		Edges:    make([]edge, len(edges)),
	}

	for i, n := range nodes {
		out.Nodes[i] = node{ID: n.ID, Attrs: n.Attrs}
	}
	for i, e := range edges {
		weight := e.Weight
		ed := edge{From: e.From, To: e.To, Weight: &weight, Attrs: e.Attrs}
		if e.Directed != g.Directed() {
			directed := e.Directed
			ed.Directed = &directed
		}
		out.Edges[i] = ed
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
