// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state and never return a
// negative or non-finite value.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is negative or not finite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi).
// Panics if lo < 0 or hi < lo.
// If rng is nil, yields DefaultEdgeWeight.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// IntUniformWeightFn returns a WeightFn sampling integers uniformly in
// [lo, hi]. Integral weights produce frequent equal-cost ties.
// Panics if lo < 0 or hi < lo.
// If rng is nil, yields DefaultEdgeWeight.
func IntUniformWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("IntUniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[lo,hi) via UniformWeightFn.
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithIntWeight sets integral weights ∼ U{lo..hi} via IntUniformWeightFn.
func WithIntWeight(lo, hi int) BuilderOption {
	return WithWeightFn(IntUniformWeightFn(lo, hi))
}
