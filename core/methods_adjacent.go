// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Incidence queries and residual views.
// Notes:
//   - IncidentEdges returns the internal slice; callers must not modify it.
//   - Orientation/Residual take the vertex the residual step leaves from.

package core

// IncidentEdges lists every edge touching v, both outgoing and incoming,
// in insertion order. The slice is shared and read-only.
func (n *Network) IncidentEdges(v VertexIndex) []EdgeIndex {
	if !n.validVertex(v) {
		return nil
	}
	return n.incident[v]
}

// Degree returns the number of edges incident to v.
func (n *Network) Degree(v VertexIndex) int {
	return len(n.IncidentEdges(v))
}

// Opposite returns the endpoint of e that is not v.
func (n *Network) Opposite(e EdgeIndex, v VertexIndex) VertexIndex {
	edge := &n.edges[e]
	if edge.From == v {
		return edge.To
	}
	return edge.From
}

// Orientation returns Forward when the step leaves through e's tail,
// Backward when it leaves through e's head.
func (n *Network) Orientation(e EdgeIndex, from VertexIndex) Orientation {
	if n.edges[e].From == from {
		return Forward
	}
	return Backward
}

// Residual returns the residual capacity of e traversed from `from`:
// capacity−flow forward, flow backward.
func (n *Network) Residual(e EdgeIndex, from VertexIndex) float64 {
	edge := &n.edges[e]
	if edge.From == from {
		return edge.Capacity - edge.Flow
	}
	return edge.Flow
}

// ArcFrom builds the residual arc of e leaving v.
func (n *Network) ArcFrom(e EdgeIndex, v VertexIndex) Arc {
	return Arc{
		Edge:        e,
		From:        v,
		To:          n.Opposite(e, v),
		Orientation: n.Orientation(e, v),
	}
}

// FindEdge returns the first edge joining v and w in either direction,
// with the orientation of the step v→w.
func (n *Network) FindEdge(v, w VertexIndex) (EdgeIndex, Orientation, bool) {
	if !n.validVertex(v) || !n.validVertex(w) {
		return -1, Forward, false
	}
	for _, e := range n.incident[v] {
		if n.Opposite(e, v) == w {
			return e, n.Orientation(e, v), true
		}
	}
	return -1, Forward, false
}

// ResidualArcs appends to dst every arc leaving v whose residual exceeds eps.
func (n *Network) ResidualArcs(dst []Arc, v VertexIndex, eps float64) []Arc {
	for _, e := range n.IncidentEdges(v) {
		if n.Residual(e, v) > eps {
			dst = append(dst, n.ArcFrom(e, v))
		}
	}
	return dst
}
