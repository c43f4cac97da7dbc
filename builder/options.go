// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a generator by mutating its builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic generators.
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
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRadius sets the circle radius used by Circle and Barbell (> 0).
func WithRadius(r float64) BuilderOption {
	if !(r > 0) || math.IsInf(r, 1) {
		panic(fmt.Sprintf("builder: WithRadius(%g) needs a finite value > 0", r))
	}

	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithBridge sets the distance between the two Barbell centres (> 0).
func WithBridge(d float64) BuilderOption {
	if !(d > 0) || math.IsInf(d, 1) {
		panic(fmt.Sprintf("builder: WithBridge(%g) needs a finite value > 0", d))
	}

	return func(c *builderConfig) {
		c.bridge = d
	}
}

// WithWeightFn overrides the weight distribution of RandomWeights.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
