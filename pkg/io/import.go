package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joancf/Multimode-Networks/pkg/errors"
	"github.com/joancf/Multimode-Networks/pkg/graph"
)

// DefaultWeight is the weight of an edge that does not specify one.
const DefaultWeight = 1.0

// ReadJSON decodes a JSON graph from r.
//
// ReadJSON returns an INVALID_GRAPH error if:
//   - The JSON is malformed
//   - A node has an empty or duplicate ID
//   - An edge references an unknown node ID or has an invalid weight
//
// Errors name the node or edge that caused the problem and wrap the
// graph package's sentinel errors. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "decode")
	}

	g := graph.New(data.Directed)
	for _, n := range data.Nodes {
		if err := g.AddNode(n.ID, n.Attrs); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "node %q", n.ID)
		}
	}
	for i, e := range data.Edges {
		w := DefaultWeight
		if e.Weight != nil {
			w = *e.Weight
		}
		directed := data.Directed
		if e.Directed != nil {
			directed = *e.Directed
		}
		id, err := g.AddEdge(e.From, e.To, w, directed)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "edge %d (%s->%s)", i, e.From, e.To)
		}
		if err := g.SetEdgeAttributes(id, e.Attrs); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "edge %d attributes", i)
		}
	}
	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
// A missing file yields a FILE_NOT_FOUND error.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
