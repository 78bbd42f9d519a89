// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/RemoveEdgeBetween/HasEdge/
//       EdgeBetween/GetEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by edge sequence ("e2" before "e10").
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge for the same ordered pair
//     (for undirected graphs, for either order).
//  4. Build the Edge, apply opts, validate attribute values.
//  5. Store in g.edges and link adjacency (mirrored when undirected).
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !finite(weight) {
		return "", fmt.Errorf("%w: edge %s→%s weight=%g", ErrBadWeight, from, to, weight)
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	directed := g.Directed()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacencyList[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{From: from, To: to, Weight: weight, Directed: directed}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}
	if !finite(e.Weight) {
		return "", fmt.Errorf("%w: edge %s→%s weight=%g", ErrBadWeight, from, to, e.Weight)
	}
	var key string
	var v float64
	for key, v = range e.Attrs {
		if !finite(v) {
			return "", fmt.Errorf("%w: edge %s→%s %s=%g", ErrBadWeight, from, to, key, v)
		}
	}

	e.ID = nextEdgeID(g)
	g.edges[e.ID] = e
	linkAdjacency(g, e)

	return e.ID, nil
}

// RemoveEdge deletes one edge (and its mirror for undirected edges).
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// RemoveEdgeBetween deletes the edge traversable from→to.
// For undirected graphs this removes the single edge joining both endpoints.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdgeBetween(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid, ok := g.adjacencyList[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	e := g.edges[eid]
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether an edge is traversable from→to.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacencyList[from][to]

	return ok
}

// EdgeBetween returns the edge traversable from→to.
// The returned *Edge must be treated as read-only.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacencyList[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// GetEdge returns the edge with the given ID.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in creation order (stable, deterministic).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal).
// Safe for concurrent callers.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence of an edge ID.
// IDs are always produced by nextEdgeID, so the parse cannot fail for them.
func edgeSeq(id string) uint64 {
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return math.MaxUint64
	}

	return n
}

// sortEdges orders edges by creation sequence so "e2" precedes "e10".
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return edgeSeq(es[i].ID) < edgeSeq(es[j].ID) })
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
