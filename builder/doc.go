// SPDX-License-Identifier: MIT
// Package builder generates flow networks for tests, benchmarks and demos.
//
// Every generator is a Constructor: a closure over its shape parameters that
// BuildNetwork applies to a fresh *core.Network together with a resolved
// builderConfig (ID scheme, RNG, capacity function, terminal names).
//
// Topologies (each wires a designated source and sink):
//
//	Chain(n)              s → 0 → 1 → … → n-1 → t
//	Mesh(rows, cols)      grid; right edges plus antiparallel vertical pairs;
//	                      s feeds column 0, column cols-1 drains into t
//	Bipartite(n1, n2, p)  s → L_i, L_i → R_j with probability p, R_j → t
//	Random(n, degree)     spine 0→…→n-1 plus `degree` random out-edges per vertex;
//	                      s and t attach to random vertices and to the spine ends
//
// Determinism: for a fixed seed (WithSeed) and options, vertex order, edge
// order and capacities are reproducible.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, ErrOptionViolation. Option constructors panic on
// meaningless values; constructors never panic.
package builder
