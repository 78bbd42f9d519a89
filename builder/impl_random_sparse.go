// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); self-loops only if g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc. For each pair the Bernoulli
//     draw comes first, then the weight and attribute draws of an accepted edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := cfg.addVertices(g, methodRandomSparse, n)
		if err != nil {
			return err
		}

		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !cfg.trial(p) {
					continue
				}
				if err = cfg.addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial reports whether a Bernoulli(p) draw succeeds. p ∈ {0,1} needs no RNG.
func (c builderConfig) trial(p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return c.rng.Float64() < p
	}
}
