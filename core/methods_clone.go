// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copies.

package core

// Clone returns an independent deep copy, flows and roles included.
// Indices in the clone match those of n.
func (n *Network) Clone() *Network {
	c := &Network{
		allowMulti: n.allowMulti,
		vertices:   make([]Vertex, len(n.vertices)),
		byID:       make(map[string]VertexIndex, len(n.byID)),
		edges:      make([]Edge, len(n.edges)),
		incident:   make([][]EdgeIndex, len(n.incident)),
		pairs:      make(map[[2]VertexIndex]int, len(n.pairs)),
		source:     n.source,
		sink:       n.sink,
	}
	for i, vx := range n.vertices {
		md := make(map[string]interface{}, len(vx.Metadata))
		for k, val := range vx.Metadata {
			md[k] = val
		}
		c.vertices[i] = Vertex{ID: vx.ID, Role: vx.Role, Metadata: md}
	}
	for id, v := range n.byID {
		c.byID[id] = v
	}
	copy(c.edges, n.edges)
	for i, inc := range n.incident {
		c.incident[i] = append([]EdgeIndex(nil), inc...)
	}
	for k, cnt := range n.pairs {
		c.pairs[k] = cnt
	}
	return c
}

// CloneEmpty copies vertices, roles and edges but resets all flows to zero.
func (n *Network) CloneEmpty() *Network {
	c := n.Clone()
	c.ResetFlows()
	return c
}
