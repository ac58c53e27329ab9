package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/preflow/bfs"
	"github.com/katalvlaran/preflow/core"
)

type BFSSuite struct {
	suite.Suite
	net *core.Network
	idx map[string]core.VertexIndex
}

// s→a→t, s→b, b→a (cap 0), t→c
func (s *BFSSuite) SetupTest() {
	s.net = core.NewNetwork()
	require.NoError(s.T(), s.net.SetSource("s"))
	require.NoError(s.T(), s.net.SetSink("t"))
	for _, e := range []struct {
		from, to string
		c        float64
	}{
		{"s", "a", 3}, {"a", "t", 2}, {"s", "b", 1}, {"b", "a", 0}, {"t", "c", 1},
	} {
		_, err := s.net.AddEdge(e.from, e.to, e.c)
		require.NoError(s.T(), err)
	}
	s.idx = make(map[string]core.VertexIndex)
	for _, id := range s.net.Vertices() {
		v, err := s.net.IndexOf(id)
		require.NoError(s.T(), err)
		s.idx[id] = v
	}
}

func (s *BFSSuite) TestStructural() {
	res, err := bfs.BFS(s.net, s.idx["s"])
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, res.Depth[s.idx["s"]])
	require.Equal(s.T(), 1, res.Depth[s.idx["a"]])
	require.Equal(s.T(), 2, res.Depth[s.idx["t"]])
	require.Equal(s.T(), 3, res.Depth[s.idx["c"]])
	require.Len(s.T(), res.Order, 5)

	path, err := res.PathTo(s.idx["t"])
	require.NoError(s.T(), err)
	require.Len(s.T(), path, 2)
	require.Equal(s.T(), s.idx["a"], path[0].To)
	require.Equal(s.T(), core.Forward, path[1].Orientation)
}

func (s *BFSSuite) TestStructuralIgnoresDirectionAgainstEdges() {
	res, err := bfs.BFS(s.net, s.idx["t"])
	require.NoError(s.T(), err)
	require.False(s.T(), res.Reached(s.idx["s"]))
	require.True(s.T(), res.Reached(s.idx["c"]))

	_, err = res.PathTo(s.idx["s"])
	require.ErrorIs(s.T(), err, bfs.ErrNoPath)
}

func (s *BFSSuite) TestResidualFollowsBackwardArcs() {
	e, _, ok := s.net.FindEdge(s.idx["s"], s.idx["a"])
	require.True(s.T(), ok)
	require.NoError(s.T(), s.net.SetFlow(e, 3))

	res, err := bfs.BFS(s.net, s.idx["a"], bfs.WithResidual(0))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Reached(s.idx["s"]))
	path, err := res.PathTo(s.idx["s"])
	require.NoError(s.T(), err)
	require.Equal(s.T(), core.Backward, path[0].Orientation)

	// saturated s→a is not usable from s; b→a has zero capacity
	res, err = bfs.BFS(s.net, s.idx["s"], bfs.WithResidual(0))
	require.NoError(s.T(), err)
	require.False(s.T(), res.Reached(s.idx["a"]))
	require.True(s.T(), res.Reached(s.idx["b"]))
}

func (s *BFSSuite) TestResidualThreshold() {
	res, err := bfs.BFS(s.net, s.idx["s"], bfs.WithResidual(2))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Reached(s.idx["a"]))
	require.False(s.T(), res.Reached(s.idx["t"]))
}

func (s *BFSSuite) TestTargetAndDepth() {
	res, err := bfs.BFS(s.net, s.idx["s"], bfs.WithTarget(s.idx["a"]))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Reached(s.idx["a"]))
	require.False(s.T(), res.Reached(s.idx["t"]))

	res, err = bfs.BFS(s.net, s.idx["s"], bfs.WithMaxDepth(1))
	require.NoError(s.T(), err)
	require.False(s.T(), res.Reached(s.idx["t"]))
}

func (s *BFSSuite) TestFilterAndHooks() {
	var enq []core.VertexIndex
	res, err := bfs.BFS(s.net, s.idx["s"],
		bfs.WithFilterArc(func(a core.Arc) bool { return a.To != s.idx["b"] }),
		bfs.WithOnEnqueue(func(v core.VertexIndex, _ int) { enq = append(enq, v) }),
	)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Reached(s.idx["b"]))
	require.Equal(s.T(), res.Order, enq)

	boom := errors.New("boom")
	_, err = bfs.BFS(s.net, s.idx["s"], bfs.WithOnVisit(func(core.VertexIndex, int) error { return boom }))
	require.ErrorIs(s.T(), err, boom)
}

func (s *BFSSuite) TestErrors() {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(s.T(), err, bfs.ErrNetworkNil)
	_, err = bfs.BFS(s.net, 99)
	require.ErrorIs(s.T(), err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(s.net, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(s.T(), err, bfs.ErrOptionViolation)
	_, err = bfs.BFS(s.net, 0, bfs.WithResidual(-1))
	require.ErrorIs(s.T(), err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(s.net, 0, bfs.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestBFSSuite(t *testing.T) {
	suite.Run(t, new(BFSSuite))
}
