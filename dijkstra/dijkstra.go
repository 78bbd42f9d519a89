// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to resolve the weight
//     attribute, detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance,
//     or once Target is settled.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by push order, and relaxation is strict, so the
//     first-discovered predecessor wins among equal-cost routes.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/kpaths/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. Every edge must carry the weight attribute (core.ErrAttrNotFound, wrapped).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	r, err := newRunner(g, cfg)
	if err != nil {
		return nil, nil, err
	}
	r.init()
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph            // The input graph; read-only within Dijkstra.
	options Options                // Configuration options.
	weights map[*core.Edge]float64 // Resolved cost per edge (pre-scan).
	dist    map[string]float64     // Vertex ID → current best distance from Source.
	prev    map[string]string      // Vertex ID → predecessor on the shortest path.
	visited map[string]bool        // Tracks if a vertex's distance is finalized.
	pq      nodePQ                 // Min-heap of *nodeItem.
	seq     uint64                 // Push counter for deterministic heap ties.
}

// newRunner validates the inputs and resolves edge costs.
func newRunner(g *core.Graph, cfg Options) (*runner, error) {
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	edges := g.Edges()
	weights := make(map[*core.Edge]float64, len(edges))
	var (
		e   *core.Edge
		w   float64
		err error
	)
	for _, e = range edges {
		if w, err = e.WeightOf(cfg.WeightKey); err != nil {
			return nil, fmt.Errorf("dijkstra: edge %s→%s key %q: %w", e.From, e.To, cfg.WeightKey, err)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, w)
		}
		weights[e] = w
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		weights: weights,
		dist:    make(map[string]float64, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, n)
	}

	return r, nil
}

// init sets dist[v] = +Inf for every vertex and pushes Source with distance 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process is the core loop: extract the closest unsettled vertex, relax its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - Target has been settled.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if item.id == r.options.Target {
			break
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of the settled vertex u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var (
		e       *core.Edge
		v       string
		w       float64
		newDist float64
	)
	for _, e = range neighbors {
		v = e.Other(u)
		if r.visited[v] {
			continue
		}
		w = r.weights[e]
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only: the first route found keeps equal-cost ties.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		r.push(v, newDist)
	}

	return nil
}

func (r *runner) push(id string, dist float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source
	seq  uint64  // push order, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
