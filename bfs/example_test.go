package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/preflow/bfs"
	"github.com/katalvlaran/preflow/core"
)

// sample builds s→a(3), a→b(2), b→t(4), s→b(1).
func sample() *core.Network {
	n := core.NewNetwork()
	_ = n.SetSource("s")
	_ = n.SetSink("t")
	_, _ = n.AddEdge("s", "a", 3)
	_, _ = n.AddEdge("a", "b", 2)
	_, _ = n.AddEdge("b", "t", 4)
	_, _ = n.AddEdge("s", "b", 1)
	return n
}

// ExampleBFS walks the network along edge direction, ignoring capacities.
func ExampleBFS() {
	n := sample()
	res, err := bfs.BFS(n, n.Source())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Order {
		fmt.Print(n.ID(v), " ")
	}
	fmt.Println()
	// Output:
	// s a b t
}

// ExampleWithResidual finds an augmenting path once a→b is saturated.
func ExampleWithResidual() {
	n := sample()
	_ = n.SetFlow(1, 2) // a→b

	res, err := bfs.BFS(n, n.Source(), bfs.WithResidual(1e-9), bfs.WithTarget(n.Sink()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(n.Sink())
	for _, a := range path {
		fmt.Printf("%s→%s %s\n", n.ID(a.From), n.ID(a.To), a.Orientation)
	}
	// Output:
	// s→b forward
	// b→t forward
}
