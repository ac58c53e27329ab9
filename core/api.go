// SPDX-License-Identifier: MIT
// File: api.go
// Role: Whole-network summaries.

package core

// Stats reports counts, total capacity and terminal presence.
func (n *Network) Stats() Stats {
	st := Stats{
		VertexCount: len(n.vertices),
		EdgeCount:   len(n.edges),
		HasSource:   n.source != NoVertex,
		HasSink:     n.sink != NoVertex,
	}
	for i := range n.edges {
		st.TotalCapacity += n.edges[i].Capacity
	}
	return st
}

// AllowsMultiEdges reports whether WithMultiEdges was set.
func (n *Network) AllowsMultiEdges() bool { return n.allowMulti }

// OutCapacity sums the capacity of edges leaving v.
func (n *Network) OutCapacity(v VertexIndex) float64 {
	var sum float64
	for _, e := range n.IncidentEdges(v) {
		if n.edges[e].From == v {
			sum += n.edges[e].Capacity
		}
	}
	return sum
}
