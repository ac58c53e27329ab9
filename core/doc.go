// Package core provides the flow network storage used by every algorithm in
// this module: an arena of vertices and directed capacitated edges addressed
// by stable integer indices.
//
// A Network N = (V, E, s, t) holds:
//
//   - Vertices with a string ID, a Role (internal, source, sink) and free-form Metadata.
//   - Edges From→To with an immutable Capacity and a mutable Flow.
//   - Per-vertex incidence lists containing both outgoing and incoming edges,
//     so one scan of IncidentEdges(v) visits every residual arc leaving v.
//
// Residual view:
//
//	For an edge e = (u→v) with capacity c and flow f:
//	  leaving u (Forward)  residual = c − f
//	  leaving v (Backward) residual = f
//
// The Orientation of a step is computed from the edge's canonical endpoints
// each time it is needed (Orientation, Residual, ArcFrom); it is never stored.
//
// Configuration Options (NetworkOption):
//
//	– WithMultiEdges()
//	    Allows several edges on the same ordered pair (u→v). Antiparallel
//	    pairs (u→v, v→u) are always accepted.
//
//	– WithCapacityHint(vertices, edges)
//	    Preallocates arena storage.
//
// Core Methods:
//
//	AddVertex(id) (VertexIndex, error)            // O(1)
//	AddEdge(from, to, capacity) (EdgeIndex, error) // O(1)
//	SetSource(id) / SetSink(id) error
//	IncidentEdges(v) []EdgeIndex                  // shared, read-only
//	FindEdge(v, w) (EdgeIndex, Orientation, bool)  // O(deg v)
//	Residual(e, from) float64
//	SetFlow(e, flow) error                         // enforces 0 ≤ flow ≤ capacity
//	NetInflow(v) float64                           // excess of v under a preflow
//	Clone() *Network
//
// Concurrency:
//
//	A Network is a single-writer structure. Algorithms mutate flows in place;
//	run concurrent solvers on separate Clone()s.
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadCapacity,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrRoleConflict, ErrFlowOutOfBounds.
package core
