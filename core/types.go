// SPDX-License-Identifier: MIT
// Package: preflow/core
//
// types.go: Vertex, Edge, Network, options and sentinel errors.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge index is out of range.
//	ErrBadCapacity         - capacity is NaN or infinite.
//	ErrLoopNotAllowed      - self-loop u→u.
//	ErrMultiEdgeNotAllowed - second edge on the same ordered pair without WithMultiEdges.
//	ErrRoleConflict        - vertex already carries the other terminal role.
//	ErrFlowOutOfBounds     - flow outside [0, capacity].
package core

import "errors"

// Sentinel errors for network operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates that a vertex lookup failed.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that an edge index or endpoint pair is unknown.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadCapacity indicates a NaN or infinite capacity.
	ErrBadCapacity = errors.New("core: capacity must be finite")

	// ErrLoopNotAllowed indicates an attempt to add a self-loop.
	ErrLoopNotAllowed = errors.New("core: self-loops not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge without WithMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrRoleConflict indicates that a vertex cannot be both source and sink.
	ErrRoleConflict = errors.New("core: vertex already has the opposite terminal role")

	// ErrFlowOutOfBounds indicates a flow value outside [0, capacity].
	ErrFlowOutOfBounds = errors.New("core: flow out of bounds")
)

// VertexIndex is the stable arena position of a vertex.
type VertexIndex int

// EdgeIndex is the stable arena position of an edge.
type EdgeIndex int

// NoVertex marks an unset source/sink or an absent parent.
const NoVertex VertexIndex = -1

// Role tags a vertex as source, sink or ordinary.
type Role uint8

const (
	// RoleInternal is an ordinary vertex.
	RoleInternal Role = iota
	// RoleSource is the flow origin.
	RoleSource
	// RoleSink is the flow destination.
	RoleSink
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleSource:
		return "source"
	case RoleSink:
		return "sink"
	default:
		return "internal"
	}
}

// Orientation says whether a residual step follows the edge (Forward)
// or runs against it (Backward). It is derived per access, never stored.
type Orientation uint8

const (
	// Forward traverses From→To; residual = capacity − flow.
	Forward Orientation = iota
	// Backward traverses To→From; residual = flow.
	Backward
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Backward {
		return "backward"
	}
	return "forward"
}

// Vertex is a network node.
type Vertex struct {
	ID       string
	Role     Role
	Metadata map[string]interface{}
}

// Edge is a directed capacitated arc From→To carrying Flow.
// Capacity is fixed after insertion; 0 ≤ Flow ≤ Capacity holds whenever
// Flow is written through Network.SetFlow.
type Edge struct {
	ID       string
	From     VertexIndex
	To       VertexIndex
	Capacity float64
	Flow     float64
}

// Arc is one residual direction of an edge as seen from From.
type Arc struct {
	Edge        EdgeIndex
	From        VertexIndex
	To          VertexIndex
	Orientation Orientation
}

// Network is an arena-backed flow network. Vertices and edges are addressed
// by VertexIndex/EdgeIndex, which stay valid for the network's lifetime
// (there is no removal).
//
// A Network is not safe for concurrent mutation. Clone it before handing it
// to another goroutine.
type Network struct {
	allowMulti bool

	vertices []Vertex
	byID     map[string]VertexIndex

	edges    []Edge
	incident [][]EdgeIndex // per vertex, both directions, insertion order
	pairs    map[[2]VertexIndex]int

	source VertexIndex
	sink   VertexIndex
}

// NetworkOption configures a Network before use.
type NetworkOption func(n *Network)

// WithMultiEdges permits several edges on the same ordered pair.
func WithMultiEdges() NetworkOption {
	return func(n *Network) { n.allowMulti = true }
}

// WithCapacityHint preallocates room for the given vertex and edge counts.
func WithCapacityHint(vertices, edges int) NetworkOption {
	return func(n *Network) {
		if vertices > 0 {
			n.vertices = make([]Vertex, 0, vertices)
			n.incident = make([][]EdgeIndex, 0, vertices)
		}
		if edges > 0 {
			n.edges = make([]Edge, 0, edges)
		}
	}
}

// NewNetwork creates an empty network with no source or sink.
func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{
		byID:   make(map[string]VertexIndex),
		pairs:  make(map[[2]VertexIndex]int),
		source: NoVertex,
		sink:   NoVertex,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Stats summarizes a network.
type Stats struct {
	VertexCount   int
	EdgeCount     int
	TotalCapacity float64
	HasSource     bool
	HasSink       bool
}
