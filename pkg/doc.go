// Package pkg provides the libraries behind the multimode command line.
//
// # Overview
//
// Multimode projects a multimode network (a graph whose nodes belong to
// categories) onto a pair of categories. Two groups that only meet through
// a third, intermediate group are linked directly, with weights summed over
// the intermediate nodes they share. The pkg directory is organized as:
//
//  1. [multimode] - Partitioning, bi-adjacency building, projection and the
//     cancellable projection job
//  2. [matrix] - Dense float64 matrices with a parallel product
//  3. [graph] - In-memory attributed multigraph used as the host graph
//  4. [io] - JSON import and export of host graphs
//  5. [config] - TOML/YAML job files and MULTIMODE_* environment settings
//  6. [errors], [observability], [buildinfo] - Shared error codes, hooks and
//     version metadata
//
// # Architecture
//
// The typical data flow through multimode:
//
//	graph.json
//	     ↓
//	[io] package (decode into a [graph] store)
//	     ↓
//	[multimode] package (partition → build → multiply → remove → create)
//	     ↓
//	[io] package (encode the projected graph)
//
// # Quick Start
//
//	g, _ := io.ImportJSON("network.json")
//	host := multimode.HostFunc(func(directed bool) multimode.GraphView {
//	    return g.View(directed)
//	})
//	job, _ := multimode.NewJob(host, g, multimode.Options{
//	    Attribute:   "type",
//	    In:          "actor",
//	    Common:      "event",
//	    Out:         "org",
//	    RemoveNodes: true,
//	})
//	res := job.Run(context.Background())
//	_ = io.ExportJSON(g, "network.projected.json")
//	fmt.Println(res.Creation.Created)
package pkg
