package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kpaths/core"
)

// ShortestPath returns the cost and vertex sequence of one cheapest
// source→target path in g, using the same options as Dijkstra (Source,
// Target and ReturnPath are set from the arguments).
//
// Errors:
//   - ErrEmptySource, ErrNilGraph, ErrNegativeWeight as for Dijkstra.
//   - ErrVertexNotFound if source or target is missing.
//   - ErrUnreachable if target cannot be reached (including when
//     MaxDistance or InfEdgeThreshold cut every route).
//
// For source == target the result is (0, [source]).
// The search stops as soon as target is settled.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (float64, []string, error) {
	if target == "" {
		return 0, nil, fmt.Errorf("%w: empty target", ErrVertexNotFound)
	}
	all := make([]Option, 0, len(opts)+3)
	all = append(all, opts...)
	all = append(all, Source(source), Target(target), WithReturnPath())

	dist, prev, err := Dijkstra(g, all...)
	if err != nil {
		return 0, nil, err
	}
	d := dist[target]
	if math.IsInf(d, 1) {
		return 0, nil, fmt.Errorf("%w: %s→%s", ErrUnreachable, source, target)
	}

	return d, walkBack(prev, source, target), nil
}

// walkBack rebuilds source→target from the predecessor map.
func walkBack(prev map[string]string, source, target string) []string {
	var rev []string
	for v := target; v != source; v = prev[v] {
		rev = append(rev, v)
	}
	rev = append(rev, source)

	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}
