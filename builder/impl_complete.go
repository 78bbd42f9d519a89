// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j once; directed graphs also
//     get the reverse arc j→i right after i→j, with its own weight draw.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(g, methodComplete, n)
		if err != nil {
			return err
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = cfg.addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if directed {
					if err = cfg.addEdge(g, methodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
