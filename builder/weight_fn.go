// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is returned by stochastic WeightFns when no RNG is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces one edge weight from an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [lo, hi). Panics unless 0 ≤ lo ≤ hi.
// A nil rng yields DefaultEdgeWeight.
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

// IntWeightFn samples integers uniformly in [lo, hi]. Panics unless
// 0 ≤ lo ≤ hi. A nil rng yields DefaultEdgeWeight.
func IntWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// From1To100WeightFn draws an integer weight in [1, 100]; the default
// distribution of RandomWeights.
func From1To100WeightFn(rng *rand.Rand) float64 {
	return IntWeightFn(1, 100)(rng)
}
