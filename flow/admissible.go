package flow

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/preflow/core"
)

// admissibleArcs appends to dst every admissible arc leaving v: residual
// above eps and h(v) == h(w)+1. It depends only on the network and the
// heights, so two calls without intervening changes return the same list.
func admissibleArcs(dst []core.Arc, net *core.Network, st []vertexState, v core.VertexIndex, eps float64) []core.Arc {
	h := st[v].height
	for _, e := range net.IncidentEdges(v) {
		if net.Residual(e, v) <= eps {
			continue
		}
		w := net.Opposite(e, v)
		if h == st[w].height+1 {
			dst = append(dst, net.ArcFrom(e, v))
		}
	}
	return dst
}

// rebuild recomputes v's cache and resets its cursor.
func (p *preflow) rebuild(v core.VertexIndex) {
	st := &p.states[v]
	st.cache = admissibleArcs(st.cache[:0], p.net, p.states, v, p.eps)
	st.cursor = 0
	p.stats.CacheRebuilds++
	if p.trace {
		p.log.Debug("rebuild admissible cache",
			zap.String("vertex", p.net.ID(v)),
			zap.Int("height", st.height),
			zap.Int("arcs", len(st.cache)),
		)
	}
}

// references reports whether w's cache holds an arc into v.
func (p *preflow) references(w, v core.VertexIndex) bool {
	for _, a := range p.states[w].cache {
		if a.To == v {
			return true
		}
	}
	return false
}

// rebuildReferencing rebuilds, once each, the caches of v's neighbors that
// still point at v. Called after v's height changed.
func (p *preflow) rebuildReferencing(v core.VertexIndex) {
	p.epoch++
	for _, e := range p.net.IncidentEdges(v) {
		w := p.net.Opposite(e, v)
		if p.mark[w] == p.epoch {
			continue
		}
		p.mark[w] = p.epoch
		if p.references(w, v) {
			p.rebuild(w)
		}
	}
}

// current returns the arc at v's cursor, skipping entries that are no
// longer admissible. ok is false when the cursor is exhausted.
func (p *preflow) current(v core.VertexIndex) (core.Arc, bool) {
	st := &p.states[v]
	for st.cursor < len(st.cache) {
		a := st.cache[st.cursor]
		if p.net.Residual(a.Edge, v) > p.eps && st.height == p.states[a.To].height+1 {
			return a, true
		}
		st.cursor++
	}
	return core.Arc{}, false
}
