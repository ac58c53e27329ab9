// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Network.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/preflow/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for an unreached destination.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	OnEnqueue func(v core.VertexIndex, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v core.VertexIndex, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// Residual switches traversal from structural (forward edges only) to
	// residual: an arc is followed in either orientation when its residual
	// capacity exceeds Threshold.
	Residual  bool
	Threshold float64

	// FilterArc can skip arcs by returning false. It runs after the
	// structural/residual rule.
	FilterArc func(a core.Arc) bool

	// Target, when set, stops the search as soon as it is enqueued.
	Target core.VertexIndex

	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - structural traversal along edge direction
//   - no depth limit, no target, no filtering
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(core.VertexIndex, int) {},
		OnVisit:   func(core.VertexIndex, int) error { return nil },
		FilterArc: func(core.Arc) bool { return true },
		Target:    core.NoVertex,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v core.VertexIndex, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v core.VertexIndex, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithResidual walks the residual graph, following arcs whose residual
// capacity is strictly greater than threshold.
func WithResidual(threshold float64) Option {
	return func(o *BFSOptions) {
		if threshold < 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: residual threshold %v", ErrOptionViolation, threshold)
			return
		}
		o.Residual = true
		o.Threshold = threshold
	}
}

// WithFilterArc skips arcs when fn returns false.
func WithFilterArc(fn func(a core.Arc) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterArc = fn
		}
	}
}

// WithTarget stops the search once v is reached.
func WithTarget(v core.VertexIndex) Option {
	return func(o *BFSOptions) { o.Target = v }
}

// BFSResult holds the outcome of a BFS traversal, indexed by VertexIndex:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance in arcs from the start, -1 when unreached.
//   - Parent: arc used to reach each vertex; Edge == -1 for the start and unreached vertices.
type BFSResult struct {
	Start  core.VertexIndex
	Order  []core.VertexIndex
	Depth  []int
	Parent []core.Arc
}

// Reached reports whether v was discovered.
func (r *BFSResult) Reached(v core.VertexIndex) bool {
	return v >= 0 && int(v) < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the arcs from the start vertex to dest.
// The path to the start itself is empty.
func (r *BFSResult) PathTo(dest core.VertexIndex) ([]core.Arc, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to vertex %d", ErrNoPath, dest)
	}
	path := make([]core.Arc, 0, r.Depth[dest])
	for cur := dest; cur != r.Start; {
		a := r.Parent[cur]
		path = append(path, a)
		cur = a.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
