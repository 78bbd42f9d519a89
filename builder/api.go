// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs,
//     including edge IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first, return sentinel
// errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Errors: ErrConstructFailed for a nil constructor, otherwise whatever the
// constructor returns (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph, so fixtures can be
// layered on a hand-built graph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
