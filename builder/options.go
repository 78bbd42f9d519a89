// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a constructor by mutating builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the generator of core.Edge.Weight. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithAttrFn draws an extra named attribute for every edge, so fixtures can
// carry several cost metrics (e.g. "length" next to "weight").
// Using core.DefaultWeightKey overrides the weight drawn by WithWeightFn.
// Panics on an empty key or nil fn.
func WithAttrFn(key string, fn WeightFn) BuilderOption {
	if key == "" {
		panic("builder: WithAttrFn(empty key)")
	}
	if fn == nil {
		panic("builder: WithAttrFn(nil)")
	}
	return func(c *builderConfig) {
		c.attrs = append(c.attrs, attrGen{key: key, fn: fn})
	}
}
