// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Vertex IDs use the fixed scheme "r,c" (row-major order); cfg.idFn is
//     not consulted so coordinates stay explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emits Right then Bottom where they exist.
//     Directed graphs get the reverse arc right after each forward arc.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/kpaths/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridVertexID(r, c)
				if err := g.AddVertex(id); err != nil {
					return wrapf(methodGrid, err, "AddVertex(%s)", id)
				}
			}
		}

		directed := g.Directed()
		link := func(u, v string) error {
			if err := cfg.addEdge(g, methodGrid, u, v); err != nil {
				return err
			}
			if directed {
				return cfg.addEdge(g, methodGrid, v, u)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridVertexID(r, c)
				if c+1 < cols {
					if err := link(u, GridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridVertexID formats a grid coordinate as "r,c".
func GridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
