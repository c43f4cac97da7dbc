// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Deterministic defaults.
const (
	defaultRadius = 1.0  // Circle and Barbell radius
	defaultBridge = 10.0 // Barbell centre distance
)

// builderConfig aggregates all knobs used by generators.
type builderConfig struct {
	rng      *rand.Rand // nil means "no randomness available"
	radius   float64
	bridge   float64
	weightFn WeightFn
}

// newBuilderConfig starts from the defaults and applies opts in order
// (later options win).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		radius:   defaultRadius,
		bridge:   defaultBridge,
		weightFn: From1To100WeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
