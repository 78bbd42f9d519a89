// Package dijkstra provides Dijkstra's shortest-path algorithm on weighted
// graphs with non-negative edge weights, and the single-pair ShortestPath
// query used as the oracle of the k-shortest-paths search in package yen.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex
//     to all reachable vertices in O((V + E) log V).
//   - ShortestPath answers one source→target query and returns the path,
//     stopping as soon as the target is settled.
//   - Costs come from a named edge attribute (WithWeightKey); the default key
//     reads core.Edge.Weight.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: returns a predecessor map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Works on directed and undirected core graphs.
//
// Determinism:
//
//   - Neighbors are relaxed in edge creation order, the heap breaks distance
//     ties by push order and relaxation is strict. Equal inputs therefore
//     always produce the same predecessor tree, which k-shortest-path
//     enumeration relies on.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, source, target string, opts ...Option) (float64, []string, error)
//
// Thread safety:
//
//   - Dijkstra only reads g; concurrent queries on an unchanging graph are safe.
//     Concurrent mutation during a query yields an unspecified (but race-free) result.
package dijkstra
