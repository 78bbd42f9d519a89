// Package builder_test contains unit tests for the WeightFn and IDFn
// implementations, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kpaths/builder"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestWeightFnConstructors verifies constructor panics on invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_loNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_hiLessThanLo", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntUniformWeightFn_hiLessThanLo", func() builder.WeightFn { return builder.IntUniformWeightFn(3, 2) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestWeightFnValues verifies ranges and nil-RNG fallbacks.
func TestWeightFnValues(t *testing.T) {
	t.Parallel()

	if got := builder.DefaultWeightFn(nil); got != builder.DefaultEdgeWeight {
		t.Errorf("DefaultWeightFn: got %g", got)
	}
	if got := builder.ConstantWeightFn(2.5)(nil); got != 2.5 {
		t.Errorf("ConstantWeightFn: got %g", got)
	}
	if got := builder.UniformWeightFn(2, 3)(nil); got != builder.DefaultEdgeWeight {
		t.Errorf("UniformWeightFn(nil rng): got %g", got)
	}
	if got := builder.UniformWeightFn(4, 4)(rand.New(rand.NewSource(1))); got != 4 {
		t.Errorf("UniformWeightFn degenerate: got %g", got)
	}

	rng := rand.New(rand.NewSource(5))
	u := builder.UniformWeightFn(2, 3)
	iu := builder.IntUniformWeightFn(1, 3)
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		if w := u(rng); w < 2 || w >= 3 {
			t.Fatalf("UniformWeightFn: %g outside [2,3)", w)
		}
		w := iu(rng)
		if w < 1 || w > 3 || w != float64(int(w)) {
			t.Fatalf("IntUniformWeightFn: %g outside {1,2,3}", w)
		}
		seen[w] = true
	}
	if len(seen) != 3 {
		t.Errorf("IntUniformWeightFn: expected all of 1..3 in 200 draws, saw %v", seen)
	}
}

// TestIDFns verifies each IDFn on valid and invalid input.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"Default_0", builder.DefaultIDFn, 0, "0", false},
		{"Default_42", builder.DefaultIDFn, 42, "42", false},
		{"Symbol_0", builder.SymbolIDFn, 0, "A", false},
		{"Symbol_25", builder.SymbolIDFn, 25, "Z", false},
		{"Symbol_26", builder.SymbolIDFn, 26, "", true},
		{"Excel_25", builder.ExcelColumnIDFn, 25, "Z", false},
		{"Excel_26", builder.ExcelColumnIDFn, 26, "AA", false},
		{"Excel_701", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"Excel_neg", builder.ExcelColumnIDFn, -1, "", true},
		{"SymbNumb_7", builder.SymbolNumberIDFn("v"), 7, "v7", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.input) }, tc.name)
				return
			}
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s(%d): want %q, got %q", tc.name, tc.input, tc.want, got)
			}
		})
	}
}
