// Package preflow computes maximum flows on directed capacitated networks
// with the highest-label push-relabel method.
//
// The module is organized into small subpackages:
//
//	core/       Network arena: vertices, edges, capacities, flows, residual arcs
//	bfs/        breadth-first search, structural or residual
//	flow/       PreflowPush, EdmondsKarp, CapacityScaling, MinCut, Validate
//	builder/    deterministic network constructors (chain, mesh, bipartite, random)
//	converters/ plain-text edge-list reader and writer
//	cmd/preflow command-line solver over edge-list files
//
// A short session:
//
//	net := core.NewNetwork()
//	_, _ = net.AddEdge("s", "a", 10)
//	_, _ = net.AddEdge("a", "t", 4)
//	_ = net.SetSource("s")
//	_ = net.SetSink("t")
//	res, err := flow.PreflowPush(net, nil) // nil selects DefaultOptions
//	// res.MaxFlow == 4
//
// Solvers mutate the flows stored on the network. Clone a network before
// handing it to concurrent solvers.
package preflow
