package flow

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/preflow/core"
)

// push moves min(excess(v), residual(a)) along the admissible arc a and
// reports whether the arc was saturated.
//
// Steps:
//  1. delta = min(excess, residual); saturating iff delta == residual.
//  2. Forward arcs gain delta of flow, backward arcs lose it; a saturating
//     push writes the exact bound (capacity or 0).
//  3. Excess of both endpoints is recomputed from incident flows.
func (p *preflow) push(a core.Arc) (bool, error) {
	v, w := a.From, a.To

	// 1) Amount
	residual := p.net.Residual(a.Edge, v)
	delta := minOf(p.states[v].excess, residual)
	saturating := delta >= residual

	// 2) Flow update
	capacity := p.net.Capacity(a.Edge)
	flow := p.net.Flow(a.Edge)
	var next float64
	switch {
	case a.Orientation == core.Forward && saturating:
		next = capacity
	case a.Orientation == core.Forward:
		next = flow + delta
	case saturating:
		next = 0
	default:
		next = flow - delta
	}
	if err := p.net.SetFlow(a.Edge, clamp(next, 0, capacity)); err != nil {
		return false, p.violation(v, err.Error())
	}

	// 3) Excess
	p.recomputeExcess(v)
	p.recomputeExcess(w)

	p.stats.Pushes++
	if saturating {
		p.stats.SaturatingPushes++
	} else {
		p.stats.NonSaturatingPushes++
	}
	if p.trace {
		p.log.Debug("push",
			zap.String("from", p.net.ID(v)),
			zap.String("to", p.net.ID(w)),
			zap.Stringer("orientation", a.Orientation),
			zap.Float64("delta", delta),
			zap.Bool("saturating", saturating),
		)
	}
	if p.opts.OnPush != nil {
		p.opts.OnPush(PushEvent{
			From: v, To: w, Edge: a.Edge, Orientation: a.Orientation,
			Delta: delta, Saturating: saturating,
		}, p)
	}
	return saturating, nil
}

// relabel lifts v to 1 + the lowest height among its usable residual
// neighbors, then refreshes v's cache and every cache that pointed at v.
func (p *preflow) relabel(v core.VertexIndex) error {
	old := p.states[v].height
	lowest := math.MaxInt
	for _, e := range p.net.IncidentEdges(v) {
		if p.net.Residual(e, v) <= p.eps {
			continue
		}
		lowest = minOf(lowest, p.states[p.net.Opposite(e, v)].height)
	}
	if lowest == math.MaxInt {
		return p.violation(v, "active vertex has no usable residual arc")
	}

	next := lowest + 1
	if next <= old {
		return p.violation(v, "relabel would not increase height")
	}
	if next > 2*p.n-1 {
		return p.violation(v, "height exceeds 2|V|-1")
	}

	p.states[v].height = next
	p.stats.Relabels++
	if p.trace {
		p.log.Debug("relabel",
			zap.String("vertex", p.net.ID(v)),
			zap.Int("from", old),
			zap.Int("to", next),
		)
	}

	p.rebuild(v)
	p.rebuildReferencing(v)

	if p.opts.OnRelabel != nil {
		p.opts.OnRelabel(RelabelEvent{Vertex: v, OldHeight: old, NewHeight: next}, p)
	}
	return nil
}
