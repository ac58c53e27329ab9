// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle, flow reads/writes and per-vertex flow balance.
// Determinism:
//   - Edges() returns edges in index order; IDs are "e1", "e2", ...

package core

import (
	"fmt"
	"math"
	"strconv"
)

const edgeIDPrefix = 'e'

// AddEdge inserts a directed edge from→to with the given capacity and zero
// flow, creating missing endpoints.
//
// Negative capacities are stored as given; algorithms reject them when they
// validate their input, so the loader can report them in context.
//
// Steps:
//  1. Validate IDs, capacity and loops.
//  2. Ensure endpoints.
//  3. Enforce the multi-edge policy on the ordered pair.
//  4. Append to the arena and to both incidence lists.
func (n *Network) AddEdge(from, to string, capacity float64) (EdgeIndex, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return -1, ErrEmptyVertexID
	}
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return -1, fmt.Errorf("%w: %q→%q: %v", ErrBadCapacity, from, to, capacity)
	}
	if from == to {
		return -1, fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	// 2) Endpoints
	u, err := n.AddVertex(from)
	if err != nil {
		return -1, err
	}
	v, err := n.AddVertex(to)
	if err != nil {
		return -1, err
	}

	// 3) Multi-edge policy
	key := [2]VertexIndex{u, v}
	if !n.allowMulti && n.pairs[key] > 0 {
		return -1, fmt.Errorf("%w: %q→%q", ErrMultiEdgeNotAllowed, from, to)
	}

	// 4) Store
	e := EdgeIndex(len(n.edges))
	n.edges = append(n.edges, Edge{
		ID:       nextEdgeID(e),
		From:     u,
		To:       v,
		Capacity: capacity,
	})
	n.incident[u] = append(n.incident[u], e)
	n.incident[v] = append(n.incident[v], e)
	n.pairs[key]++

	return e, nil
}

// nextEdgeID renders the stable textual ID of edge e ("e1" for index 0).
func nextEdgeID(e EdgeIndex) string {
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendInt(buf, int64(e)+1, 10)
	return string(buf)
}

// Edge returns a copy of edge e.
func (n *Network) Edge(e EdgeIndex) (Edge, error) {
	if !n.validEdge(e) {
		return Edge{}, fmt.Errorf("%w: index %d", ErrEdgeNotFound, e)
	}
	return n.edges[e], nil
}

// Edges returns a snapshot of all edges in index order.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)
	return out
}

// EdgeCount returns |E|.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Capacity returns the capacity of e (0 when e is out of range).
func (n *Network) Capacity(e EdgeIndex) float64 {
	if !n.validEdge(e) {
		return 0
	}
	return n.edges[e].Capacity
}

// Flow returns the current flow on e (0 when e is out of range).
func (n *Network) Flow(e EdgeIndex) float64 {
	if !n.validEdge(e) {
		return 0
	}
	return n.edges[e].Flow
}

// SetFlow writes flow on e. The value must lie in [0, capacity].
func (n *Network) SetFlow(e EdgeIndex, flow float64) error {
	if !n.validEdge(e) {
		return fmt.Errorf("%w: index %d", ErrEdgeNotFound, e)
	}
	if math.IsNaN(flow) || flow < 0 || flow > n.edges[e].Capacity {
		return fmt.Errorf("%w: edge %s flow %g capacity %g",
			ErrFlowOutOfBounds, n.edges[e].ID, flow, n.edges[e].Capacity)
	}
	n.edges[e].Flow = flow
	return nil
}

// ResetFlows zeroes the flow on every edge.
func (n *Network) ResetFlows() {
	for i := range n.edges {
		n.edges[i].Flow = 0
	}
}

// NetInflow returns Σ flow(into v) − Σ flow(out of v).
// For a preflow this is the excess of v.
func (n *Network) NetInflow(v VertexIndex) float64 {
	if !n.validVertex(v) {
		return 0
	}
	var sum float64
	for _, e := range n.incident[v] {
		edge := &n.edges[e]
		if edge.To == v {
			sum += edge.Flow
		} else {
			sum -= edge.Flow
		}
	}
	return sum
}

func (n *Network) validEdge(e EdgeIndex) bool {
	return e >= 0 && int(e) < len(n.edges)
}
