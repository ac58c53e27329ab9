// Package flow computes maximum s-t flows on a *core.Network.
//
// The primary algorithm is highest-label push-relabel (preflow-push):
//
//   - PreflowPush
//
//   - Method: maintain a preflow and a valid height function; repeatedly
//     take the active vertex of greatest height and either push excess
//     along an admissible arc (h(v) = h(w)+1) or relabel it.
//
//   - Time:   O(V²·√E) with highest-label selection.
//
//   - Memory: O(V + E) for heights, excesses, admissible caches and the heap.
//
// Two augmenting-path methods are provided as independent references:
//
//   - EdmondsKarp: BFS shortest augmenting paths, O(V·E²).
//   - CapacityScaling: Ford–Fulkerson restricted to arcs with residual ≥ Δ,
//     Δ halving from the largest power of two under the source capacities.
//
// # Push-relabel internals
//
// Every vertex owns an admissible-arc cache and a cursor. The cache is a pure
// function of the current flows and heights; it is rebuilt when a selected
// vertex has none, after the vertex is relabeled, and for each neighbor whose
// cache points at a just-relabeled vertex. The cursor advances only after a
// saturating push; an exhausted cursor triggers a relabel. Orientation
// (forward/backward) of each residual arc is derived from the edge endpoints
// on every access.
//
// The work-list is a binary max-heap on height with a membership bitmap, so
// enqueueing an already queued vertex is a no-op.
//
// # API
//
//	opts := flow.DefaultOptions()
//	opts.Logger = logger   // *zap.Logger; Verbose adds per-operation Debug records
//	res, err := flow.PreflowPush(net, &opts)
//	// res.MaxFlow, res.Flows, res.Heights, res.Cut, res.Stats
//
//	res, err = flow.CapacityScaling(ctx, net, nil)
//	err = flow.Validate(net, opts.Epsilon)
//
// All algorithms write their flows into the network they are given; use
// net.Clone() to keep the input intact or to run solvers concurrently.
//
// # Errors
//
//	ErrInvalidInput        - ErrNilNetwork, ErrSourceNotFound, ErrSinkNotFound,
//	                         ErrDisconnected, EdgeError (negative capacity).
//	ErrInvariantViolation  - *InvariantViolationError with vertex diagnostics.
//	ErrNumericTolerance    - *ToleranceError when a residue exceeds Epsilon.
//	ErrOptionViolation     - negative or NaN Epsilon.
//	context.Canceled / context.DeadlineExceeded - augmenting-path methods only.
package flow
