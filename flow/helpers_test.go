package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/core"
)

type edgeDef struct {
	from, to string
	c        float64
}

// network builds a network with terminals "s" and "t" from edge specs.
func network(t testing.TB, opts []core.NetworkOption, edges ...edgeDef) *core.Network {
	t.Helper()
	n := core.NewNetwork(opts...)
	require.NoError(t, n.SetSource("s"))
	require.NoError(t, n.SetSink("t"))
	for _, e := range edges {
		_, err := n.AddEdge(e.from, e.to, e.c)
		require.NoError(t, err)
	}
	return n
}

// diamondEdges: two disjoint 10-capacity routes plus a 5-capacity cross link.
var diamondEdges = []edgeDef{
	{"s", "a", 10}, {"s", "b", 10}, {"a", "t", 10}, {"b", "t", 10}, {"a", "b", 5},
}

func flowOn(t testing.TB, n *core.Network, from, to string) float64 {
	t.Helper()
	u, err := n.IndexOf(from)
	require.NoError(t, err)
	v, err := n.IndexOf(to)
	require.NoError(t, err)
	e, o, ok := n.FindEdge(u, v)
	require.True(t, ok)
	require.Equal(t, core.Forward, o)
	return n.Flow(e)
}
