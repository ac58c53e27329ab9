package flow

import (
	"fmt"

	"github.com/katalvlaran/preflow/bfs"
	"github.com/katalvlaran/preflow/core"
)

// MinCut derives the s-t cut certified by the current flows: vertices
// reachable from the source through arcs with residual > eps form the
// source side. When the flow is maximum, Capacity equals its value.
func MinCut(net *core.Network, eps float64) (Cut, error) {
	if net == nil {
		return Cut{}, ErrNilNetwork
	}
	if net.Source() == core.NoVertex {
		return Cut{}, ErrSourceNotFound
	}
	reach, err := bfs.BFS(net, net.Source(), bfs.WithResidual(eps))
	if err != nil {
		return Cut{}, err
	}

	var cut Cut
	for _, v := range reach.Order {
		cut.SourceSide = append(cut.SourceSide, net.ID(v))
	}
	for i, e := range net.Edges() {
		if reach.Reached(e.From) && !reach.Reached(e.To) {
			cut.Edges = append(cut.Edges, EdgeFlow{
				Edge:     core.EdgeIndex(i),
				From:     net.ID(e.From),
				To:       net.ID(e.To),
				Capacity: e.Capacity,
				Flow:     e.Flow,
			})
			cut.Capacity += e.Capacity
		}
	}
	return cut, nil
}

// Validate certifies the flows currently stored on net as a maximum flow:
//  1. every edge obeys 0 ≤ flow ≤ capacity (within eps);
//  2. every non-terminal vertex conserves flow (within eps);
//  3. no augmenting path remains in the residual graph.
func Validate(net *core.Network, eps float64) error {
	if net == nil {
		return ErrNilNetwork
	}
	if net.Source() == core.NoVertex {
		return ErrSourceNotFound
	}
	if net.Sink() == core.NoVertex {
		return ErrSinkNotFound
	}

	// 1) Capacity bounds
	for _, e := range net.Edges() {
		if e.Flow < -eps || e.Flow > e.Capacity+eps {
			return &ToleranceError{
				Vertex:   net.ID(e.From),
				Quantity: fmt.Sprintf("flow on %s (capacity %g)", e.ID, e.Capacity),
				Value:    e.Flow,
				Epsilon:  eps,
			}
		}
	}

	// 2) Conservation
	for i := 0; i < net.VertexCount(); i++ {
		v := core.VertexIndex(i)
		if v == net.Source() || v == net.Sink() {
			continue
		}
		if x := net.NetInflow(v); !nearZero(x, eps) {
			return &ToleranceError{Vertex: net.ID(v), Quantity: "conservation error", Value: x, Epsilon: eps}
		}
	}

	// 3) Optimality
	reach, err := bfs.BFS(net, net.Source(), bfs.WithResidual(eps), bfs.WithTarget(net.Sink()))
	if err != nil {
		return err
	}
	if reach.Reached(net.Sink()) {
		return fmt.Errorf("%w: augmenting path to %q remains", ErrInvariantViolation, net.ID(net.Sink()))
	}
	return nil
}
