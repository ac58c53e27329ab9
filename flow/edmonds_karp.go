package flow

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/preflow/bfs"
	"github.com/katalvlaran/preflow/core"
)

// EdmondsKarp computes the maximum flow from net.Source() to net.Sink()
// by repeatedly augmenting along shortest (fewest-arc) residual paths.
// It serves as an independent reference for PreflowPush.
//
// Existing flows on net are discarded; on success net holds the result.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(ctx context.Context, net *core.Network, opts *FlowOptions) (*Result, error) {
	// 1) Options and input
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateNetwork(net, o); err != nil {
		return nil, err
	}
	net.ResetFlows()

	// 2) Augment until the sink is unreachable
	var st Stats
	st.Phases = 1
	if err = augmentPhase(ctx, net, o, o.Epsilon, &st); err != nil {
		return nil, err
	}

	// 3) Package
	res, err := newResult("edmonds-karp", net, o.Epsilon, st)
	if err != nil {
		return nil, err
	}
	o.Logger.Info("edmonds-karp done",
		zap.Float64("max_flow", res.MaxFlow),
		zap.Int("augmentations", st.Augmentations),
	)
	return res, nil
}

// CapacityScaling computes the maximum flow with capacity-scaling
// Ford–Fulkerson: Δ starts at the largest power of two not above the
// largest source edge capacity and halves down to 1; each phase only
// augments along paths whose every arc has residual ≥ Δ. A final
// unrestricted phase completes fractional capacities.
//
// Complexity: O(E² · log C) for integral capacities C.
// Memory:     O(V + E)
func CapacityScaling(ctx context.Context, net *core.Network, opts *FlowOptions) (*Result, error) {
	// 1) Options and input
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateNetwork(net, o); err != nil {
		return nil, err
	}
	net.ResetFlows()

	// 2) Initial Δ
	var maxCap float64
	for _, e := range net.IncidentEdges(net.Source()) {
		if net.Orientation(e, net.Source()) == core.Forward {
			maxCap = math.Max(maxCap, net.Capacity(e))
		}
	}
	delta := 0.0
	if maxCap >= 1 {
		delta = math.Exp2(math.Floor(math.Log2(maxCap)))
	}

	// 3) Scaling phases
	var st Stats
	for ; delta >= 1; delta /= 2 {
		st.Phases++
		if o.Verbose {
			o.Logger.Debug("scaling phase", zap.Float64("delta", delta))
		}
		if err = augmentPhase(ctx, net, o, delta-o.Epsilon, &st); err != nil {
			return nil, err
		}
	}

	// 4) Fractional remainder
	st.Phases++
	if err = augmentPhase(ctx, net, o, o.Epsilon, &st); err != nil {
		return nil, err
	}

	res, err := newResult("capacity-scaling", net, o.Epsilon, st)
	if err != nil {
		return nil, err
	}
	o.Logger.Info("capacity-scaling done",
		zap.Float64("max_flow", res.MaxFlow),
		zap.Int("phases", st.Phases),
		zap.Int("augmentations", st.Augmentations),
	)
	return res, nil
}

// augmentPhase augments along BFS paths of arcs with residual > threshold
// until none is left.
func augmentPhase(ctx context.Context, net *core.Network, o FlowOptions, threshold float64, st *Stats) error {
	sink := net.Sink()
	for {
		reach, err := bfs.BFS(net, net.Source(),
			bfs.WithContext(ctx),
			bfs.WithResidual(threshold),
			bfs.WithTarget(sink),
		)
		if err != nil {
			return err
		}
		if !reach.Reached(sink) {
			return nil
		}
		path, err := reach.PathTo(sink)
		if err != nil {
			return err
		}

		bottleneck := infinity
		for _, a := range path {
			bottleneck = minOf(bottleneck, net.Residual(a.Edge, a.From))
		}
		for _, a := range path {
			capacity, flow := net.Capacity(a.Edge), net.Flow(a.Edge)
			next := flow - bottleneck
			if a.Orientation == core.Forward {
				next = flow + bottleneck
			}
			if err = net.SetFlow(a.Edge, clamp(next, 0, capacity)); err != nil {
				return err
			}
		}
		st.Augmentations++
		if o.Verbose {
			o.Logger.Debug("augment",
				zap.Int("arcs", len(path)),
				zap.Float64("bottleneck", bottleneck),
			)
		}
	}
}
