// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so edge IDs stay monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// attributes and adjacency. Mutating the clone never affects g.
// Vertex Metadata maps are shared, not copied.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	return g.filtered(nil)
}

// filtered copies g, skipping the vertices in drop and every edge incident
// to them. A nil drop copies everything.
func (g *Graph) filtered(drop map[string]struct{}) *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := NewGraph(g.options()...)
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var (
		id   string
		v    *Vertex
		skip bool
	)
	for id, v = range g.vertices {
		if _, skip = drop[id]; skip {
			continue
		}
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]string)
	}

	var e *Edge
	for _, e = range g.edges {
		if _, skip = drop[e.From]; skip {
			continue
		}
		if _, skip = drop[e.To]; skip {
			continue
		}
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		if len(e.Attrs) > 0 {
			ne.Attrs = make(map[string]float64, len(e.Attrs))
			for k, w := range e.Attrs {
				ne.Attrs[k] = w
			}
		}
		out.edges[ne.ID] = ne
		linkAdjacency(out, ne)
	}

	return out
}
