package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/flow"
)

// ExamplePreflowPush computes the max flow of the diamond network.
//
//	s→a(10)→t
//	s→b(10)→t
//	a→b(5)
func ExamplePreflowPush() {
	n := core.NewNetwork()
	_ = n.SetSource("s")
	_ = n.SetSink("t")
	_, _ = n.AddEdge("s", "a", 10)
	_, _ = n.AddEdge("s", "b", 10)
	_, _ = n.AddEdge("a", "t", 10)
	_, _ = n.AddEdge("b", "t", 10)
	_, _ = n.AddEdge("a", "b", 5)

	res, err := flow.PreflowPush(n, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.MaxFlow)
	// Output:
	// 20
}

// ExampleResult_cut prints the minimum cut certified by the final flows.
func ExampleResult_cut() {
	n := core.NewNetwork()
	_ = n.SetSource("s")
	_ = n.SetSink("t")
	_, _ = n.AddEdge("s", "a", 100)
	_, _ = n.AddEdge("a", "b", 1)
	_, _ = n.AddEdge("b", "t", 100)

	res, _ := flow.PreflowPush(n, nil)
	for _, e := range res.Cut.Edges {
		fmt.Printf("%s→%s %g\n", e.From, e.To, e.Capacity)
	}
	fmt.Println(res.Cut.SourceSide)
	// Output:
	// a→b 1
	// [s a]
}

// ExampleCapacityScaling shows the reference method on a two-path network.
//
//	s→a(3)→t(2)
//	s→b(2)→t(3)
func ExampleCapacityScaling() {
	n := core.NewNetwork()
	_ = n.SetSource("s")
	_ = n.SetSink("t")
	_, _ = n.AddEdge("s", "a", 3)
	_, _ = n.AddEdge("a", "t", 2)
	_, _ = n.AddEdge("s", "b", 2)
	_, _ = n.AddEdge("b", "t", 3)

	res, _ := flow.CapacityScaling(context.Background(), n, nil)
	fmt.Println(res.MaxFlow, res.Stats.Phases)
	// Output:
	// 4 3
}
