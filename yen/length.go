// SPDX-License-Identifier: MIT

package yen

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// PathLength sums the key attribute over consecutive edges of path in g.
// A single-vertex path has length 0. An empty key means core.DefaultWeightKey.
//
// Errors:
//   - ErrNilGraph, ErrEmptyPath.
//   - ErrMissingEdge if two consecutive vertices are not joined in g.
//   - core.ErrAttrNotFound (wrapped) if an edge lacks the attribute.
func PathLength(g *core.Graph, path []string, key string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}

	var total float64
	for i := 0; i+1 < len(path); i++ {
		e, err := g.EdgeBetween(path[i], path[i+1])
		if err != nil {
			return 0, fmt.Errorf("%w: %s→%s", ErrMissingEdge, path[i], path[i+1])
		}
		w, err := e.WeightOf(key)
		if err != nil {
			return 0, fmt.Errorf("yen: edge %s→%s key %q: %w", path[i], path[i+1], key, err)
		}
		total += w
	}

	return total, nil
}
