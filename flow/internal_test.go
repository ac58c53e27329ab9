package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/core"
)

func buildNet(t *testing.T, edges [][3]interface{}) (*core.Network, map[string]core.VertexIndex) {
	t.Helper()
	n := core.NewNetwork()
	require.NoError(t, n.SetSource("s"))
	require.NoError(t, n.SetSink("t"))
	for _, e := range edges {
		_, err := n.AddEdge(e[0].(string), e[1].(string), e[2].(float64))
		require.NoError(t, err)
	}
	idx := make(map[string]core.VertexIndex)
	for _, id := range n.Vertices() {
		idx[id], _ = n.IndexOf(id)
	}
	return n, idx
}

func newTestPreflow(t *testing.T, n *core.Network) *preflow {
	t.Helper()
	o, err := resolveOptions(nil)
	require.NoError(t, err)
	return newPreflow(n, o)
}

func TestSchedulerHighestFirstAndIdempotent(t *testing.T) {
	heights := []int{0, 5, 3, 5, 1}
	s := newScheduler(len(heights), func(v core.VertexIndex) int { return heights[v] })

	for _, v := range []core.VertexIndex{2, 4, 3, 1} {
		require.True(t, s.Enqueue(v))
	}
	require.False(t, s.Enqueue(3))
	require.True(t, s.Contains(3))
	require.Equal(t, 4, s.Len())

	var order []core.VertexIndex
	for {
		v, ok := s.Dequeue()
		if !ok {
			break
		}
		order = append(order, v)
	}
	// height 5 ties break on lower index
	require.Equal(t, []core.VertexIndex{1, 3, 2, 4}, order)
	require.False(t, s.Contains(3))
	require.True(t, s.Enqueue(3))
}

func TestAdmissibleCacheIsIdempotent(t *testing.T) {
	n, idx := buildNet(t, [][3]interface{}{
		{"s", "a", 4.0}, {"a", "b", 2.0}, {"a", "t", 1.0}, {"b", "t", 3.0}, {"b", "a", 1.0},
	})
	p := newTestPreflow(t, n)
	require.NoError(t, p.init())

	a := idx["a"]
	p.states[a].height = 1
	p.rebuild(a)
	first := append([]core.Arc(nil), p.states[a].cache...)
	p.rebuild(a)
	require.Equal(t, first, p.states[a].cache)
	require.Zero(t, p.states[a].cursor)

	// h(a)=1 admits only arcs into height-0 vertices with residual: a→b, a→t
	require.Len(t, first, 2)
	for _, arc := range first {
		require.Equal(t, core.Forward, arc.Orientation)
	}
}

func TestCurrentSkipsStaleEntries(t *testing.T) {
	n, idx := buildNet(t, [][3]interface{}{
		{"s", "a", 4.0}, {"a", "b", 2.0}, {"a", "t", 1.0},
	})
	p := newTestPreflow(t, n)
	require.NoError(t, p.init())

	a := idx["a"]
	p.states[a].height = 1
	p.rebuild(a)
	require.Len(t, p.states[a].cache, 2)

	// saturate a→b behind the cache's back
	e, _, ok := n.FindEdge(a, idx["b"])
	require.True(t, ok)
	require.NoError(t, n.SetFlow(e, 2))

	arc, ok := p.current(a)
	require.True(t, ok)
	require.Equal(t, idx["t"], arc.To)
	require.Equal(t, 1, p.states[a].cursor)
}

func TestRelabelRefreshesReferencingNeighbors(t *testing.T) {
	n, idx := buildNet(t, [][3]interface{}{
		{"s", "a", 4.0}, {"a", "b", 2.0}, {"b", "t", 1.0},
	})
	p := newTestPreflow(t, n)
	require.NoError(t, p.init())

	a, b := idx["a"], idx["b"]
	p.states[a].height = 1
	p.rebuild(a)
	require.True(t, p.references(a, b))

	// lift b: its only usable arc is b→t (h=0), so b goes to 1 and
	// a's arc a→b is no longer admissible.
	p.states[b].excess = 1
	require.NoError(t, p.relabel(b))
	require.Equal(t, 1, p.states[b].height)
	require.False(t, p.references(a, b))
	require.Len(t, p.states[b].cache, 1)
}

func TestRelabelWithoutUsableArcIsFatal(t *testing.T) {
	n, idx := buildNet(t, [][3]interface{}{
		{"s", "a", 0.0}, {"a", "t", 0.0},
	})
	p := newTestPreflow(t, n)
	a := idx["a"]
	p.states[a].excess = 1

	err := p.relabel(a)
	var iv *InvariantViolationError
	require.True(t, errors.As(err, &iv))
	require.Equal(t, "a", iv.Vertex)
	require.Equal(t, 1.0, iv.Excess)
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestRelabelMustIncreaseHeight(t *testing.T) {
	n, idx := buildNet(t, [][3]interface{}{
		{"s", "a", 1.0}, {"a", "t", 1.0},
	})
	p := newTestPreflow(t, n)
	a := idx["a"]
	p.states[a].height = 5
	p.states[a].excess = 1

	err := p.relabel(a)
	require.ErrorIs(t, err, ErrInvariantViolation)
	require.Equal(t, 5, p.states[a].height)
}

func TestPushSaturatingWritesExactBound(t *testing.T) {
	n, idx := buildNet(t, [][3]interface{}{
		{"s", "a", 0.3}, {"a", "t", 0.1},
	})
	p := newTestPreflow(t, n)
	require.NoError(t, p.init())

	a := idx["a"]
	p.states[a].height = 1
	p.rebuild(a)
	arc, ok := p.current(a)
	require.True(t, ok)

	sat, err := p.push(arc)
	require.NoError(t, err)
	require.True(t, sat)
	require.Equal(t, 0.1, n.Flow(arc.Edge))
	require.InDelta(t, 0.2, p.states[a].excess, 1e-15)
	require.Equal(t, 0.1, p.states[idx["t"]].excess)
}

func TestCheckHeightsDetectsSteepArc(t *testing.T) {
	n, idx := buildNet(t, [][3]interface{}{{"s", "a", 1.0}, {"a", "t", 1.0}})
	p := newTestPreflow(t, n)
	p.states[idx["a"]].height = 2
	require.ErrorIs(t, p.CheckHeights(), ErrInvariantViolation)
}

func TestSnapAndClamp(t *testing.T) {
	require.Equal(t, 0.0, snap(5e-10, 1e-9))
	require.Equal(t, 2e-9, snap(2e-9, 1e-9))
	require.Equal(t, 0.0, snap(1e-9, 1e-9))
	require.True(t, nearZero(-1e-9, 1e-9))
	require.Equal(t, 1.0, clamp(1.0000001, 0, 1))
	require.Equal(t, 0.0, clamp(-1e-17, 0, 1))
	require.Equal(t, 3, minOf(3, 4))
}
