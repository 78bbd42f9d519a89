// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn ("0","1","2",...)
//   • rng      = nil (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn (constant DefaultEdgeWeight)
//   • attrs    = none

package builder

import (
	"math/rand"

	"github.com/katalvlaran/kpaths/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Generator of core.Edge.Weight.
	weightFn WeightFn
	// Extra named attributes drawn per edge, in option order.
	attrs []attrGen
}

// attrGen draws one named edge attribute.
type attrGen struct {
	key string
	fn  WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeOptions draws the weight and every configured attribute for one edge.
// Draw order is fixed (weight first, then attributes in option order), so a
// seeded RNG yields the same graph on every run.
func (c builderConfig) edgeOptions() (float64, []core.EdgeOption) {
	w := c.weightFn(c.rng)
	if len(c.attrs) == 0 {
		return w, nil
	}
	opts := make([]core.EdgeOption, 0, len(c.attrs))
	for _, a := range c.attrs {
		opts = append(opts, core.WithEdgeAttr(a.key, a.fn(c.rng)))
	}

	return w, opts
}

// addEdge emits u→v with freshly drawn weight and attributes, wrapping core
// errors with the constructor name.
func (c builderConfig) addEdge(g *core.Graph, method, u, v string) error {
	w, opts := c.edgeOptions()
	if _, err := g.AddEdge(u, v, w, opts...); err != nil {
		return wrapf(method, err, "AddEdge(%s→%s, w=%g)", u, v, w)
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs in index order.
func (c builderConfig) addVertices(g *core.Graph, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = c.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, wrapf(method, err, "AddVertex(%s)", ids[i])
		}
	}

	return ids, nil
}
