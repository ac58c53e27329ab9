package flow

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/preflow/bfs"
	"github.com/katalvlaran/preflow/core"
)

func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// nearZero reports |x| ≤ eps, the same boundary active() uses.
func nearZero[T constraints.Float](x, eps T) bool {
	return x <= eps && x >= -eps
}

// snap maps |x| ≤ eps to exactly zero.
func snap[T constraints.Float](x, eps T) T {
	if nearZero(x, eps) {
		return 0
	}
	return x
}

// clamp bounds x to [lo, hi].
func clamp[T constraints.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// validateNetwork performs the input checks shared by every algorithm.
//
// Steps:
//  1. Non-nil network with designated source and sink.
//  2. No negative capacity.
//  3. Unless allowDisconnected, a directed path source→sink exists
//     (capacities ignored).
func validateNetwork(net *core.Network, o FlowOptions) error {
	// 1) Terminals
	if net == nil {
		return ErrNilNetwork
	}
	if net.Source() == core.NoVertex {
		return ErrSourceNotFound
	}
	if net.Sink() == core.NoVertex {
		return ErrSinkNotFound
	}

	// 2) Capacities
	for _, e := range net.Edges() {
		if e.Capacity < 0 {
			return EdgeError{From: net.ID(e.From), To: net.ID(e.To), Cap: e.Capacity}
		}
	}

	// 3) Structural reachability
	if o.AllowDisconnected {
		return nil
	}
	res, err := bfs.BFS(net, net.Source(), bfs.WithTarget(net.Sink()))
	if err != nil {
		return err
	}
	if !res.Reached(net.Sink()) {
		return ErrDisconnected
	}
	return nil
}

// snapshotFlows copies per-edge flows out of net.
func snapshotFlows(net *core.Network) []EdgeFlow {
	edges := net.Edges()
	out := make([]EdgeFlow, len(edges))
	for i, e := range edges {
		out[i] = EdgeFlow{
			Edge:     core.EdgeIndex(i),
			From:     net.ID(e.From),
			To:       net.ID(e.To),
			Capacity: e.Capacity,
			Flow:     e.Flow,
		}
	}
	return out
}

// newResult assembles the common parts of a Result from the final network.
func newResult(algorithm string, net *core.Network, eps float64, st Stats) (*Result, error) {
	cut, err := MinCut(net, eps)
	if err != nil {
		return nil, err
	}
	return &Result{
		Algorithm:     algorithm,
		MaxFlow:       snap(net.NetInflow(net.Sink()), eps),
		SourceOutflow: snap(-net.NetInflow(net.Source()), eps),
		Flows:         snapshotFlows(net),
		Cut:           cut,
		Stats:         st,
	}, nil
}

var infinity = math.Inf(1)
