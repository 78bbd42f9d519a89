// Package kpaths lists the k loopless shortest paths between two vertices of
// a weighted graph, in non-decreasing order of total weight.
//
// 🚀 What is kpaths?
//
//	A small, thread-safe library built around Yen's deviation algorithm:
//		• Core primitives: vertices, edges with named numeric attributes, snapshots
//		• Shortest path: Dijkstra with deterministic tie-breaking
//		• K shortest paths: Yen, optionally fanning spur searches out over goroutines
//		• Fixtures: complete, cycle, path, grid and seeded random graphs
//		• Graph documents: YAML / JSON load and save
//		• CLI: kpaths find / kpaths demo
//
// ✨ Guarantees
//
//   - Deterministic – equal inputs give equal output, ties included
//   - Non-mutating – the caller's graph is only read
//   - Any cost metric – select an edge attribute with WithWeightKey
//
// Packages:
//
//	core/      — Graph, Vertex, Edge, Clone, WithoutVertices
//	dijkstra/  — single-source distances and single-pair ShortestPath
//	yen/       — KShortestPaths, PathLength
//	builder/   — deterministic graph fixtures
//	graphio/   — YAML/JSON graph documents
//	cmd/kpaths — command-line front end
//
// Quick start:
//
//	g := core.NewGraph(core.WithDirected(true))
//	g.AddEdge("C", "D", 1)
//	g.AddEdge("D", "H", 2)
//	g.AddEdge("C", "H", 4)
//	res, err := yen.KShortestPaths(g, "C", "H", 2)
//	// res.Weights == [3 4], res.Paths == [[C D H] [C H]]
//
// Install:
//
//	go get github.com/katalvlaran/kpaths
package kpaths
