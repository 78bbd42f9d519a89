// Package graphio reads and writes core graphs as YAML or JSON documents.
//
// Document layout (YAML shown; JSON uses the same keys):
//
//	directed: true
//	loops: false
//	vertices: [C, D, E]        # optional; endpoints of edges are added anyway
//	edges:
//	  - {from: C, to: D, weight: 1, attrs: {length: 3}}
//	  - {from: C, to: E, weight: 2}
//
// An edge without weight gets DefaultWeight. attrs carries any further
// numeric cost metrics, selectable by the algorithms' WithWeightKey option.
//
// Decode accepts both formats since JSON is parsed as YAML. Unknown keys are
// rejected so that typos do not silently drop data. Edges are inserted in
// document order, so edge IDs and neighbor order follow the file.
package graphio
