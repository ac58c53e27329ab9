// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle, lookups and terminal roles.
// Determinism:
//   - Vertices() returns IDs in insertion (index) order.

package core

import "fmt"

// AddVertex inserts id and returns its index. Adding an existing id is a
// no-op that returns the existing index.
//
// Complexity: O(1) amortized.
func (n *Network) AddVertex(id string) (VertexIndex, error) {
	if id == "" {
		return NoVertex, ErrEmptyVertexID
	}
	if v, ok := n.byID[id]; ok {
		return v, nil
	}
	v := VertexIndex(len(n.vertices))
	n.vertices = append(n.vertices, Vertex{ID: id, Metadata: make(map[string]interface{})})
	n.incident = append(n.incident, nil)
	n.byID[id] = v

	return v, nil
}

// HasVertex reports whether id exists.
func (n *Network) HasVertex(id string) bool {
	_, ok := n.byID[id]
	return ok
}

// IndexOf resolves a vertex ID to its index.
func (n *Network) IndexOf(id string) (VertexIndex, error) {
	if id == "" {
		return NoVertex, ErrEmptyVertexID
	}
	v, ok := n.byID[id]
	if !ok {
		return NoVertex, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	return v, nil
}

// Vertex returns a copy of the vertex record at v.
func (n *Network) Vertex(v VertexIndex) (Vertex, error) {
	if !n.validVertex(v) {
		return Vertex{}, fmt.Errorf("%w: index %d", ErrVertexNotFound, v)
	}
	return n.vertices[v], nil
}

// ID returns the string ID of v, or "" when v is out of range.
func (n *Network) ID(v VertexIndex) string {
	if !n.validVertex(v) {
		return ""
	}
	return n.vertices[v].ID
}

// Vertices returns all vertex IDs in index order.
func (n *Network) Vertices() []string {
	out := make([]string, len(n.vertices))
	for i := range n.vertices {
		out[i] = n.vertices[i].ID
	}
	return out
}

// VertexCount returns |V|.
func (n *Network) VertexCount() int { return len(n.vertices) }

// SetSource designates id as the source, creating the vertex if needed.
// A previously designated source reverts to RoleInternal.
func (n *Network) SetSource(id string) error {
	v, err := n.setRole(id, RoleSource, n.sink)
	if err != nil {
		return err
	}
	n.source = v
	return nil
}

// SetSink designates id as the sink, creating the vertex if needed.
func (n *Network) SetSink(id string) error {
	v, err := n.setRole(id, RoleSink, n.source)
	if err != nil {
		return err
	}
	n.sink = v
	return nil
}

func (n *Network) setRole(id string, role Role, other VertexIndex) (VertexIndex, error) {
	v, err := n.AddVertex(id)
	if err != nil {
		return NoVertex, err
	}
	if v == other {
		return NoVertex, fmt.Errorf("%w: %q", ErrRoleConflict, id)
	}
	prev := n.source
	if role == RoleSink {
		prev = n.sink
	}
	if prev != NoVertex {
		n.vertices[prev].Role = RoleInternal
	}
	n.vertices[v].Role = role
	return v, nil
}

// Source returns the source index, or NoVertex when unset.
func (n *Network) Source() VertexIndex { return n.source }

// Sink returns the sink index, or NoVertex when unset.
func (n *Network) Sink() VertexIndex { return n.sink }

// Role returns the role of v (RoleInternal for out-of-range indices).
func (n *Network) Role(v VertexIndex) Role {
	if !n.validVertex(v) {
		return RoleInternal
	}
	return n.vertices[v].Role
}

func (n *Network) validVertex(v VertexIndex) bool {
	return v >= 0 && int(v) < len(n.vertices)
}
