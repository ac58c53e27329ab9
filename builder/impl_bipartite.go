// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// impl_bipartite.go: matching-style network s → L → R → t.
//
// Contract:
//   - n1, n2 ≥ 1; 0 ≤ p ≤ 1; RNG required when 0 < p < 1.
//   - Left IDs leftPrefix+i, right IDs rightPrefix+j.
//   - Cross edges L_i → R_j are sampled in (i asc, j asc) order.
//   - With unit capacities the max flow is the maximum matching size.

package builder

import (
	"strconv"

	"github.com/katalvlaran/preflow/core"
)

// Bipartite returns a Constructor for the layered bipartite network.
func Bipartite(n1, n2 int, p float64) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		// 1) Validate
		if n1 < MinBipartiteSide || n2 < MinBipartiteSide {
			return builderErrorf(MethodBipartite, "n1=%d, n2=%d < min=%d: %w", n1, n2, MinBipartiteSide, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return builderErrorf(MethodBipartite, "p=%.6f not in [%.1f,%.1f]: %w", p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodBipartite, "rng is required: %w", ErrNeedRandSource)
		}
		if err := setTerminals(net, cfg, MethodBipartite); err != nil {
			return err
		}

		// 2) Sides
		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			if err := addEdge(net, cfg, cfg.sourceID, left[i], MethodBipartite); err != nil {
				return err
			}
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
		}

		// 3) Cross edges
		for _, u := range left {
			for _, v := range right {
				if p < MaxProbability && (p == MinProbability || cfg.rng.Float64() >= p) {
					continue
				}
				if err := addEdge(net, cfg, u, v, MethodBipartite); err != nil {
					return err
				}
			}
		}

		// 4) Drain
		for _, v := range right {
			if err := addEdge(net, cfg, v, cfg.sinkID, MethodBipartite); err != nil {
				return err
			}
		}
		return nil
	}
}
