// Package graph provides an in-memory host graph store for multimode
// projection.
//
// # Overview
//
// A [Graph] is a mutable weighted multigraph. Nodes are identified by
// non-empty strings and carry attribute values keyed by column name. Edges
// connect two nodes, carry a non-negative weight, and are individually
// directed or undirected. Parallel edges and self-loops are stored as-is.
//
// # Columns
//
// Node and edge attributes are organized into typed columns, mirroring the
// attribute tables of graph workbenches. Node columns are declared
// implicitly when [Graph.AddNode] sees a new key; edge columns must exist
// before a value is written, typically via [Graph.EnsureEdgeColumn].
//
// # Views
//
// Algorithms read and mutate the graph through a [View]. A directed view
// respects edge orientation for edge lookups; an undirected view treats
// every edge as symmetric. A directed view is only available when the graph
// itself was created directed. Requesting one on an undirected graph yields
// an undirected view:
//
//	g := graph.New(true)
//	v := g.View(true)   // directed
//	u := g.View(false)  // undirected
//
// Queries that only make sense with orientation, such as [View.Successors],
// return [ErrUnsupported] on an undirected view.
//
// # Ordering
//
// [Graph.Nodes], [Graph.Edges] and [View.Neighbors] return results in
// insertion order, so enumeration is stable and deterministic as long as the
// graph is not mutated in between.
//
// # Concurrency
//
// Graph is not safe for concurrent mutation. Callers serialize structural
// edits; a projection job assumes exclusive write access for its duration.
package graph
