// Package multimode projects multimode graphs through a shared intermediate
// group of nodes.
//
// # Overview
//
// A multimode graph carries a categorical attribute whose value sorts nodes
// into groups (modes). Projecting "X" through "Y" onto "Z" connects every X
// node to every Z node it reaches through some Y node, weighting the new edge
// by the sum over Y of the products of the two hop weights. The computation
// is the product of two bi-adjacency matrices:
//
//	first  = X × Y   (rows: X nodes, columns: Y nodes)
//	second = Y × Z   (rows: Y nodes, columns: Z nodes)
//	result = first · second
//
// Every result cell strictly above [Options.Threshold] becomes an edge
// tagged with [Options.Label] in the [EdgeTypeColumn] edge column.
//
// # Pipeline
//
// A [Job] runs the phases in strict order:
//
//	Start → Partition → BuildFirstMatrix → BuildSecondMatrix →
//	Multiply → RemoveIntermediate → CreateEdges → Finish
//
// Each phase runs to completion, reports progress, then checks for
// cancellation. CreateEdges also checks once per result row. A stopped job
// leaves the graph as it was at that point; nothing is rolled back.
//
// The phases are exported as standalone functions ([Classify],
// [BuildBiAdjacency], [Multiply], [RemoveIntermediate], [CreateEdges]) for
// callers that want to drive them directly.
//
// # Host Graphs
//
// The package does not own a graph model. Callers supply a [Host], which
// hands out a [GraphView] for the requested directedness, and an
// [AttributeStore] for the provenance column. The reference store in
// package graph satisfies both:
//
//	g := graph.New(false)
//	// ... populate g ...
//	host := multimode.HostFunc(func(directed bool) multimode.GraphView {
//	    return g.View(directed)
//	})
//	job, err := multimode.NewJob(host, g, multimode.Options{
//	    Attribute: "type",
//	    In:        "actor",
//	    Common:    "event",
//	    Out:       "organization",
//	    RemoveNodes: true,
//	})
//	res := job.Run(ctx)
//
// The host must not be mutated by anyone else while a job runs.
//
// # Failure Handling
//
// Lookup failures while building a matrix are recovered: a failing
// neighbor query yields an empty row and a failing edge lookup leaves a
// zero cell. Both are counted in [BuildStats] and logged at debug level.
// Missing nodes and edges during removal or creation are skipped.
package multimode
