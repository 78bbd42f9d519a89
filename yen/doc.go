// Package yen enumerates the k loopless shortest paths between two vertices
// of a weighted core.Graph (Yen's deviation algorithm), in non-decreasing
// order of total weight.
//
// Overview:
//
//   - The cheapest path is found with dijkstra.ShortestPath and accepted first.
//   - Each accepted path P is then deviated at every index i from the index
//     where P itself branched off its parent (its spur) to the next-to-last
//     vertex. The search from P[i] runs on a fresh snapshot of the graph
//     without P[0..i-1] and without the edge P[i]→next of every accepted path
//     sharing the root P[0..i]. The root plus the spur path is a candidate.
//   - The cheapest unseen candidate is accepted next; the search stops after
//     k paths or when no candidate is left.
//
// Candidate weights are always recomputed on the caller's graph with
// PathLength, so removed root edges are still priced.
//
// Determinism:
//
//   - Candidates are ordered by (weight, discovery order). Within a round,
//     discovery order is the spur index, whether or not the round ran in
//     parallel. Equal inputs give equal outputs, including among paths of
//     equal weight.
//
// Options:
//
//   - WithWeightKey(key): edge attribute used as cost (default "weight").
//   - WithParallelism(n): run up to n spur searches of a round concurrently.
//   - WithContext(ctx):   abort between spur searches when ctx is done.
//   - WithLogger(l):      debug records for seed, rounds and acceptance.
//
// Errors:
//
//   - ErrNoPath when target is unreachable from source. Running out of
//     deviations later is not an error; the result is just shorter than k.
//   - ErrMissingEdge from PathLength signals a path priced on the wrong graph.
//
// API reference:
//
//	func KShortestPaths(g *core.Graph, source, target string, k int, opts ...Option) (*Result, error)
//	func PathLength(g *core.Graph, path []string, key string) (float64, error)
//
// Complexity: O(k · n · (V + E) log V) for paths of at most n vertices;
// each spur search also copies the graph in O(V + E).
//
// Thread safety:
//
//   - g is only read, never mutated. Concurrent queries on an unchanging graph are safe.
package yen
