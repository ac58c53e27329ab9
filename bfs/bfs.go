// Package bfs provides breadth-first search over a core.Network,
// returning unweighted distances, parent arcs, and visit order.
//
// BFS runs either structurally (along edge direction, ignoring capacity) or
// over the residual graph (WithResidual), which is what the flow package
// uses for reachability checks, min-cut extraction and augmenting paths.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	net   *core.Network
	opts  BFSOptions
	ctx   context.Context
	queue []core.VertexIndex
	res   *BFSResult
	done  bool
}

// BFS runs breadth-first search on net starting from start,
// applying any number of functional Options.
// Returns ErrNetworkNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(net *core.Network, start core.VertexIndex, opts ...Option) (*BFSResult, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := net.VertexCount()
	if start < 0 || int(start) >= n {
		return nil, fmt.Errorf("%w: index %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		net:   net,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]core.VertexIndex, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.VertexIndex, 0, n),
			Depth:  make([]int, n),
			Parent: make([]core.Arc, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
		w.res.Parent[i] = core.Arc{Edge: -1, From: core.NoVertex, To: core.VertexIndex(i)}
	}

	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks v discovered at depth d and adds it to the queue.
func (w *walker) enqueue(v core.VertexIndex, d int) {
	w.res.Depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, v)
	if v == w.opts.Target {
		w.done = true
	}
}

// loop processes the queue until empty, target hit, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		w.expand(v)
	}
	return nil
}

// expand enqueues every unseen vertex reachable through an allowed arc.
func (w *walker) expand(v core.VertexIndex) {
	next := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.net.IncidentEdges(v) {
		a := w.net.ArcFrom(e, v)
		if !w.allowed(a) || w.res.Depth[a.To] >= 0 {
			continue
		}
		w.res.Parent[a.To] = a
		w.enqueue(a.To, next)
		if w.done {
			return
		}
	}
}

func (w *walker) allowed(a core.Arc) bool {
	if w.opts.Residual {
		if w.net.Residual(a.Edge, a.From) <= w.opts.Threshold {
			return false
		}
	} else if a.Orientation != core.Forward {
		return false
	}
	return w.opts.FilterArc(a)
}
