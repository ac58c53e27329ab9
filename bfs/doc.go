// Package bfs implements breadth-first traversal of a core.Network.
//
// Two traversal modes are supported:
//
//   - structural (default): follow edges From→To regardless of capacity or flow;
//   - residual (WithResidual(threshold)): follow any arc, forward or backward,
//     whose residual capacity exceeds threshold.
//
// Options:
//
//	WithContext(ctx)        cancellation, checked once per dequeued vertex
//	WithOnEnqueue(fn)       hook on discovery
//	WithOnVisit(fn)         hook on visit; an error aborts the search
//	WithMaxDepth(d)         depth limit (0 = unlimited, <0 = ErrOptionViolation)
//	WithFilterArc(fn)       extra arc predicate
//	WithTarget(v)           stop as soon as v is discovered
//
// The result is indexed by core.VertexIndex: Depth[v] == -1 marks an
// unreached vertex and Parent[v] is the arc used to reach v, so PathTo
// yields an arc sequence ready for flow augmentation.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
