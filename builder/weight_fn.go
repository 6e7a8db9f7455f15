// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphsim/core"
)

// WeightFn returns one edge weight; rng may be nil.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns core.DefaultWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return core.DefaultWeight
}

// ConstantWeightFn returns value for every edge. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformCapacityFn draws uniformly from [1, maxCap]; with a nil rng it
// returns core.DefaultWeight. Panics if maxCap < 1.
func UniformCapacityFn(maxCap int64) WeightFn {
	if maxCap < 1 {
		panic(fmt.Sprintf("UniformCapacityFn: maxCap must be ≥ 1, got %d", maxCap))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return core.DefaultWeight
		}

		return 1 + rng.Int63n(maxCap)
	}
}
