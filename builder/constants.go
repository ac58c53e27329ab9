// SPDX-License-Identifier: MIT
package builder

// Method tags used in error messages.
const (
	MethodChain     = "Chain"
	MethodMesh      = "Mesh"
	MethodBipartite = "Bipartite"
	MethodRandom    = "Random"
	MethodBuild     = "BuildNetwork"
)

// Default terminal IDs, matching the edge-list convention.
const (
	DefaultSourceID = "s"
	DefaultSinkID   = "t"
)

// Size minima.
const (
	MinChainNodes    = 1
	MinMeshDim       = 1
	MinBipartiteSide = 1
	MinRandomNodes   = 2
	MinRandomDegree  = 0
)

// Probability domain.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
