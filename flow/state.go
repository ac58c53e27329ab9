package flow

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/preflow/core"
)

// vertexState is the per-vertex algorithm state, stored in an arena
// parallel to the network's vertices.
type vertexState struct {
	height int
	excess float64
	cache  []core.Arc // admissible arcs, incidence order
	cursor int        // next cache entry to try
}

// preflow is one push-relabel run over a single network.
type preflow struct {
	net    *core.Network
	opts   FlowOptions
	log    *zap.Logger
	trace  bool
	eps    float64
	n      int
	source core.VertexIndex
	sink   core.VertexIndex

	states []vertexState
	sched  *scheduler
	stats  Stats

	mark  []int // per-vertex epoch, dedupes neighbor rebuilds
	epoch int
}

func newPreflow(net *core.Network, o FlowOptions) *preflow {
	n := net.VertexCount()
	p := &preflow{
		net:    net,
		opts:   o,
		log:    o.Logger,
		trace:  o.Verbose,
		eps:    o.Epsilon,
		n:      n,
		source: net.Source(),
		sink:   net.Sink(),
		states: make([]vertexState, n),
		mark:   make([]int, n),
	}
	p.sched = newScheduler(n, p.Height)
	return p
}

// Height implements View.
func (p *preflow) Height(v core.VertexIndex) int { return p.states[v].height }

// Excess implements View.
func (p *preflow) Excess(v core.VertexIndex) float64 { return p.states[v].excess }

// active reports excess > eps at a non-terminal vertex.
func (p *preflow) active(v core.VertexIndex) bool {
	return v != p.source && v != p.sink && p.states[v].excess > p.eps
}

// recomputeExcess sets excess(v) from the incident flows.
func (p *preflow) recomputeExcess(v core.VertexIndex) {
	p.states[v].excess = snap(p.net.NetInflow(v), p.eps)
}

// CheckHeights implements View.
func (p *preflow) CheckHeights() error {
	for i := 0; i < p.n; i++ {
		v := core.VertexIndex(i)
		for _, e := range p.net.IncidentEdges(v) {
			if p.net.Residual(e, v) <= p.eps {
				continue
			}
			w := p.net.Opposite(e, v)
			if p.states[v].height > p.states[w].height+1 {
				return p.violation(v, "height exceeds residual neighbor "+p.net.ID(w)+" by more than one")
			}
		}
	}
	return nil
}

// violation builds the diagnostic error for v.
func (p *preflow) violation(v core.VertexIndex, reason string) error {
	st := &p.states[v]
	cache := make([]string, 0, len(st.cache))
	for _, a := range st.cache {
		cache = append(cache, p.net.ID(a.To))
	}
	err := &InvariantViolationError{
		Vertex: p.net.ID(v),
		Height: st.height,
		Excess: st.excess,
		Cache:  cache,
		Reason: reason,
	}
	p.log.Error("push-relabel invariant violated",
		zap.String("vertex", err.Vertex),
		zap.Int("height", err.Height),
		zap.Float64("excess", err.Excess),
		zap.Strings("cache", err.Cache),
		zap.String("reason", reason),
	)
	return err
}
