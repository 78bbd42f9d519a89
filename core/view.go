// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (fresh graphs derived from a source graph).
// Determinism:
//   - Preserves vertex/edge IDs, weights, attributes and directedness.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// WithoutVertices returns a new Graph equal to g minus the listed vertices
// and every edge incident to them. IDs absent from g are ignored.
// The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func WithoutVertices(g *Graph, ids ...string) *Graph {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	return g.filtered(drop)
}

// InducedSubgraph returns a new Graph induced by keep: only vertices v with
// keep[v] true, and edges whose endpoints are both kept.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	var drop []string
	for _, id := range g.Vertices() {
		if !keep[id] {
			drop = append(drop, id)
		}
	}

	return WithoutVertices(g, drop...)
}
