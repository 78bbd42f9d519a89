// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges 0→1→…→(n-1) in order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = cfg.addEdge(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
