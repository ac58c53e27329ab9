// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

// setTerminals designates cfg's source and sink on n.
func setTerminals(n *core.Network, cfg builderConfig, method string) error {
	if cfg.sourceID == cfg.sinkID {
		return fmt.Errorf("%s: source and sink both %q: %w", method, cfg.sourceID, ErrOptionViolation)
	}
	if err := n.SetSource(cfg.sourceID); err != nil {
		return fmt.Errorf("%s: SetSource(%s): %w", method, cfg.sourceID, err)
	}
	if err := n.SetSink(cfg.sinkID); err != nil {
		return fmt.Errorf("%s: SetSink(%s): %w", method, cfg.sinkID, err)
	}
	return nil
}

// addVertices inserts idFn(0..count-1) and returns the IDs.
func addVertices(n *core.Network, idFn IDFn, count int, method string) ([]string, error) {
	ids := make([]string, count)
	for i := 0; i < count; i++ {
		ids[i] = idFn(i)
		if _, err := n.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}
	return ids, nil
}

// addEdge inserts u→v with the next configured capacity.
func addEdge(n *core.Network, cfg builderConfig, u, v, method string) error {
	c := cfg.capacity()
	if _, err := n.AddEdge(u, v, c); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, c=%g): %w", method, u, v, c, err)
	}
	return nil
}
