package flow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/preflow/core"
)

// PreflowPush computes the maximum flow from net.Source() to net.Sink()
// with the highest-label push-relabel method.
//
// Existing flows on net are discarded; on success net holds the maximum
// flow and the returned Result mirrors it.
//
// Options (nil uses defaults):
//   - Epsilon:  magnitudes ≤ Epsilon count as zero (default 1e-9)
//   - Verbose:  Debug trace of every push, relabel and cache rebuild
//   - OnPush / OnRelabel / CheckInvariants: observation and self-checks
//
// Errors: ErrInvalidInput kinds before any work is done,
// *InvariantViolationError if an internal invariant breaks,
// *ToleranceError if leftover excess exceeds Epsilon at termination.
//
// Complexity: O(V²·√E) pushes with highest-label selection.
// Memory:     O(V + E).
func PreflowPush(net *core.Network, opts *FlowOptions) (*Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateNetwork(net, o); err != nil {
		return nil, err
	}

	p := newPreflow(net, o)
	if err = p.init(); err != nil {
		return nil, err
	}
	if err = p.run(); err != nil {
		return nil, err
	}
	return p.finish()
}

// init places the initial preflow.
//
// Steps:
//  1. Clear flows; h(source) = |V|, every other height 0.
//  2. Saturate every edge leaving the source.
//  3. Compute excess everywhere and enqueue active vertices.
func (p *preflow) init() error {
	// 1) Heights
	p.net.ResetFlows()
	p.states[p.source].height = p.n

	// 2) Saturate source edges
	for _, e := range p.net.IncidentEdges(p.source) {
		if p.net.Orientation(e, p.source) != core.Forward {
			continue
		}
		if c := p.net.Capacity(e); c > 0 {
			if err := p.net.SetFlow(e, c); err != nil {
				return fmt.Errorf("flow: init: %w", err)
			}
		}
	}

	// 3) Excess and work-list
	for i := 0; i < p.n; i++ {
		v := core.VertexIndex(i)
		p.recomputeExcess(v)
		if p.active(v) {
			p.sched.Enqueue(v)
		}
	}
	if p.trace {
		p.log.Debug("preflow initialized",
			zap.Int("vertices", p.n),
			zap.Int("edges", p.net.EdgeCount()),
			zap.Int("active", p.sched.Len()),
		)
	}
	return nil
}

// run drains the work-list, doing one push or one relabel per dequeued vertex.
func (p *preflow) run() error {
	for {
		v, ok := p.sched.Dequeue()
		if !ok {
			return nil
		}
		if !p.active(v) {
			continue
		}
		p.stats.Iterations++

		if len(p.states[v].cache) == 0 {
			p.rebuild(v)
		}

		a, ok := p.current(v)
		if !ok {
			if err := p.relabel(v); err != nil {
				return err
			}
			p.sched.Enqueue(v)
		} else {
			saturating, err := p.push(a)
			if err != nil {
				return err
			}
			if saturating {
				p.states[v].cursor++
			}
			if p.active(v) {
				p.sched.Enqueue(v)
			}
			if p.active(a.To) {
				p.sched.Enqueue(a.To)
			}
		}

		if p.opts.CheckInvariants {
			if err := p.CheckHeights(); err != nil {
				return err
			}
		}
	}
}

// finish checks that no excess is stranded and packages the Result.
func (p *preflow) finish() (*Result, error) {
	for i := 0; i < p.n; i++ {
		v := core.VertexIndex(i)
		if v == p.source || v == p.sink {
			continue
		}
		if x := p.net.NetInflow(v); !nearZero(x, p.eps) {
			return nil, &ToleranceError{Vertex: p.net.ID(v), Quantity: "excess", Value: x, Epsilon: p.eps}
		}
	}

	res, err := newResult("preflow-push", p.net, p.eps, p.stats)
	if err != nil {
		return nil, err
	}
	res.Heights = make([]int, p.n)
	for i := range p.states {
		res.Heights[i] = p.states[i].height
	}

	p.log.Info("preflow-push done",
		zap.Float64("max_flow", res.MaxFlow),
		zap.Int("pushes", p.stats.Pushes),
		zap.Int("saturating", p.stats.SaturatingPushes),
		zap.Int("relabels", p.stats.Relabels),
		zap.Int("rebuilds", p.stats.CacheRebuilds),
	)
	return res, nil
}
