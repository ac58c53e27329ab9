// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// impl_random.go: random sparse network with a guaranteed s-t spine.
//
// Model:
//   - Vertices 0..n-1; spine edges i → i+1, s → 0, n-1 → t.
//   - Every vertex draws `degree` targets uniformly among the other
//     internal vertices; duplicates of an existing ordered pair are skipped.
//   - s gains `degree` extra out-edges and t gains `degree` extra in-edges.
//
// Determinism: fixed draw order (spine, then i asc, then terminals).

package builder

import "github.com/katalvlaran/preflow/core"

// Random returns a Constructor for the random sparse network.
func Random(n, degree int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		// 1) Validate
		if n < MinRandomNodes {
			return builderErrorf(MethodRandom, "n=%d < min=%d: %w", n, MinRandomNodes, ErrTooFewVertices)
		}
		if degree < MinRandomDegree {
			return builderErrorf(MethodRandom, "degree=%d < min=%d: %w", degree, MinRandomDegree, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandom, "rng is required: %w", ErrNeedRandSource)
		}
		if err := setTerminals(net, cfg, MethodRandom); err != nil {
			return err
		}
		ids, err := addVertices(net, cfg.idFn, n, MethodRandom)
		if err != nil {
			return err
		}

		seen := make(map[[2]string]struct{}, n*(degree+1))
		link := func(u, v string) error {
			if u == v {
				return nil
			}
			key := [2]string{u, v}
			if _, dup := seen[key]; dup {
				return nil
			}
			seen[key] = struct{}{}
			return addEdge(net, cfg, u, v, MethodRandom)
		}

		// 2) Spine
		if err = link(cfg.sourceID, ids[0]); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(ids[i], ids[i+1]); err != nil {
				return err
			}
		}
		if err = link(ids[n-1], cfg.sinkID); err != nil {
			return err
		}

		// 3) Random out-edges
		for i := 0; i < n; i++ {
			for k := 0; k < degree; k++ {
				if err = link(ids[i], ids[cfg.rng.Intn(n)]); err != nil {
					return err
				}
			}
		}

		// 4) Terminal fan-out / fan-in
		for k := 0; k < degree; k++ {
			if err = link(cfg.sourceID, ids[cfg.rng.Intn(n)]); err != nil {
				return err
			}
			if err = link(ids[cfg.rng.Intn(n)], cfg.sinkID); err != nil {
				return err
			}
		}
		return nil
	}
}
