// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood API (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by edge creation sequence.
//   - NeighborIDs() follows the same order.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

// Neighbors returns the edges traversable out of id.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id.
//   - Undirected edges: every incident edge; use e.Other(id) for the far end.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), d = out-degree.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacencyList[id]))
	var eid string
	var e *Edge
	for _, eid = range g.adjacencyList[id] {
		e = g.edges[eid]
		if e.IsNil() {
			continue
		}
		out = append(out, e)
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the vertices reachable from id over one edge,
// in the order of Neighbors(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.Other(id)
	}

	return ids, nil
}

// ensureAdjacency makes sure the bucket for id exists.
// Must be called under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]string)
	}
}

// linkAdjacency registers e in from→to, and to→from when undirected.
// Must be called under muEdgeAdj write lock.
func linkAdjacency(g *Graph, e *Edge) {
	ensureAdjacency(g, e.From)
	g.adjacencyList[e.From][e.To] = e.ID
	if !e.Directed && e.From != e.To {
		ensureAdjacency(g, e.To)
		g.adjacencyList[e.To][e.From] = e.ID
	}
}

// removeAdjacency unlinks e from its buckets (both directions when undirected).
// Always pair with delete(g.edges, e.ID). Must be called under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From]; m != nil && m[e.To] == e.ID {
		delete(m, e.To)
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To]; m != nil && m[e.From] == e.ID {
			delete(m, e.From)
		}
	}
}
