// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// impl_mesh.go: rows×cols mesh with a source column and a sink column.
//
// Layout (row-major ordinals, ID = idFn(r*cols+c)):
//   - s → (r,0) for every row.
//   - (r,c) → (r,c+1) horizontally.
//   - (r,c) → (r+1,c) and (r+1,c) → (r,c) vertically (antiparallel pair).
//   - (r,cols-1) → t for every row.
//
// Complexity: O(rows·cols) vertices and edges.

package builder

import "github.com/katalvlaran/preflow/core"

// Mesh returns a Constructor for the rows×cols mesh network.
func Mesh(rows, cols int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		// 1) Validate
		if rows < MinMeshDim || cols < MinMeshDim {
			return builderErrorf(MethodMesh, "rows=%d, cols=%d < min=%d: %w", rows, cols, MinMeshDim, ErrTooFewVertices)
		}
		if err := setTerminals(net, cfg, MethodMesh); err != nil {
			return err
		}

		// 2) Vertices
		ids, err := addVertices(net, cfg.idFn, rows*cols, MethodMesh)
		if err != nil {
			return err
		}
		at := func(r, c int) string { return ids[r*cols+c] }

		// 3) Edges, row by row
		for r := 0; r < rows; r++ {
			if err = addEdge(net, cfg, cfg.sourceID, at(r, 0), MethodMesh); err != nil {
				return err
			}
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = addEdge(net, cfg, at(r, c), at(r, c+1), MethodMesh); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(net, cfg, at(r, c), at(r+1, c), MethodMesh); err != nil {
						return err
					}
					if err = addEdge(net, cfg, at(r+1, c), at(r, c), MethodMesh); err != nil {
						return err
					}
				}
			}
			if err = addEdge(net, cfg, at(r, cols-1), cfg.sinkID, MethodMesh); err != nil {
				return err
			}
		}
		return nil
	}
}
