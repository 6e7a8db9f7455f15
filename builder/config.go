// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// DefaultMaxCapacity is the upper capacity bound used by RandomCapacity.
const DefaultMaxCapacity int64 = 20

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for fixture edges (Complete, Cycle).
	weightFn WeightFn
	// Inclusive upper bound of RandomCapacity's uniform capacity.
	maxCap int64
}

// newBuilderConfig starts from deterministic defaults and applies opts in
// order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		maxCap:   DefaultMaxCapacity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
