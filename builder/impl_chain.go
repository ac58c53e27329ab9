// SPDX-License-Identifier: MIT
package builder

import "github.com/katalvlaran/preflow/core"

// Chain returns a Constructor for the path s → 0 → … → n-1 → t.
// The max flow equals the smallest capacity on the path.
func Chain(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < MinChainNodes {
			return builderErrorf(MethodChain, "n=%d < min=%d: %w", n, MinChainNodes, ErrTooFewVertices)
		}
		if err := setTerminals(net, cfg, MethodChain); err != nil {
			return err
		}
		ids, err := addVertices(net, cfg.idFn, n, MethodChain)
		if err != nil {
			return err
		}

		prev := cfg.sourceID
		for _, id := range ids {
			if err = addEdge(net, cfg, prev, id, MethodChain); err != nil {
				return err
			}
			prev = id
		}
		return addEdge(net, cfg, prev, cfg.sinkID, MethodChain)
	}
}
