// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i → (i+1)%n for i=0..n-1.
//   • In a directed graph the ring has one orientation, so every pair of
//     vertices is joined by exactly one path; undirected rings have two.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = cfg.addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
