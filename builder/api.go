// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// api.go: Constructor type and the BuildNetwork entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

// Constructor mutates n according to cfg. Constructors are applied in order
// by BuildNetwork and may be composed on one network.
type Constructor func(n *core.Network, cfg builderConfig) error

// BuildNetwork creates a network with nopts, resolves bopts once, and applies
// each constructor in order. The first failure aborts the build.
func BuildNetwork(nopts []core.NetworkOption, bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	n := core.NewNetwork(nopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuild, i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
	}
	return n, nil
}
