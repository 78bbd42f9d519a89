// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w; sentinels carry no parameters.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).
//
// Validation priority when several checks fail:
//   ErrTooFewVertices, then ErrInvalidProbability, then ErrNeedRandSource.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs a seeded
// RNG (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf prefixes a formatted message with the constructor name and wraps
// cause, so errors.Is still matches the sentinel or core error.
func wrapf(method string, cause error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), cause)
}
