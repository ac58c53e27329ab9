// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// CapacityFn yields an edge capacity; rng may be nil for deterministic fns.
type CapacityFn func(rng *rand.Rand) float64

// DefaultCapacity is the capacity produced by DefaultCapacityFn.
const DefaultCapacity float64 = 1

// DefaultCapacityFn returns DefaultCapacity.
func DefaultCapacityFn(_ *rand.Rand) float64 { return DefaultCapacity }

// ConstantCapacityFn always returns value. It panics if value < 0.
func ConstantCapacityFn[T constraints.Integer | constraints.Float](value T) CapacityFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCapacityFn: value must be ≥ 0, got %v", value))
	}
	c := float64(value)
	return func(_ *rand.Rand) float64 { return c }
}

// UniformCapacityFn samples [min, max) uniformly; with a nil rng it returns min.
// It panics unless 0 ≤ min ≤ max.
func UniformCapacityFn(min, max float64) CapacityFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCapacityFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// UniformIntCapacityFn samples integers in [min, max]; with a nil rng it
// returns min. Integral capacities make max-flow values exact.
func UniformIntCapacityFn[T constraints.Integer](min, max T) CapacityFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntCapacityFn: require 0 ≤ min ≤ max, got min=%v, max=%v", min, max))
	}
	span := int64(max-min) + 1
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}
		return float64(int64(min) + rng.Int63n(span))
	}
}
