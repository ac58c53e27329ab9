// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// config.go: resolved configuration shared by all constructors.

package builder

import (
	"math/rand"
	"strconv"
)

// IDFn maps a 0-based vertex ordinal to its ID.
type IDFn func(idx int) string

// builderConfig is immutable once BuildNetwork hands it to constructors.
type builderConfig struct {
	idFn       IDFn
	rng        *rand.Rand
	capacityFn CapacityFn

	leftPrefix  string
	rightPrefix string

	sourceID string
	sinkID   string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		capacityFn:  DefaultCapacityFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		sourceID:    DefaultSourceID,
		sinkID:      DefaultSinkID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}
	return cfg
}

// capacity draws the next edge capacity.
func (c builderConfig) capacity() float64 { return c.capacityFn(c.rng) }

// DefaultIDFn renders decimal IDs "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// PrefixIDFn renders prefix+decimal IDs such as "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}
