// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (nil funcs, nil RNG,
//     empty terminal IDs). Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID function for internal vertices.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand injects a caller-owned RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a private RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCapacityFn sets the edge capacity generator.
func WithCapacityFn(fn CapacityFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) { c.capacityFn = fn }
}

// WithUniformCapacity draws capacities uniformly from [min, max).
func WithUniformCapacity(min, max float64) BuilderOption {
	return WithCapacityFn(UniformCapacityFn(min, max))
}

// WithPartitionPrefix sets Bipartite side labels; empty values keep defaults.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}

// WithTerminals renames the source and sink vertices.
func WithTerminals(source, sink string) BuilderOption {
	if source == "" || sink == "" {
		panic("builder: WithTerminals(empty)")
	}
	return func(c *builderConfig) { c.sourceID, c.sinkID = source, sink }
}
