// Package io provides JSON import and export for attributed multigraphs.
//
// # Overview
//
// The multimode command line reads its input graph from, and writes its
// result to, a simple JSON document. The format carries exactly what a
// projection needs: node categories and weighted edges.
//
// # JSON Format
//
//	{
//	  "directed": false,
//	  "nodes": [
//	    {"id": "alice", "attrs": {"type": "actor"}},
//	    {"id": "summit", "attrs": {"type": "event"}}
//	  ],
//	  "edges": [
//	    {"from": "alice", "to": "summit", "weight": 2}
//	  ]
//	}
//
// # Node Fields
//
// Required:
//   - id: Unique non-empty string identifier
//
// Optional:
//   - attrs: Freeform object of node attributes
//
// # Edge Fields
//
// Required:
//   - from, to: Node IDs
//
// Optional:
//   - weight: Non-negative number (defaults to 1)
//   - directed: Overrides the graph-level flag for this edge
//   - attrs: Freeform object of edge attributes; each key becomes an edge
//     column typed from its first value
//
// Edge IDs are not part of the format; they are reassigned on import.
package io
