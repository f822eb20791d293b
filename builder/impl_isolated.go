// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// impl_isolated.go - Isolated(n): vertices idFn(0..n-1) and no edges.

package builder

import "github.com/katalvlaran/centra/core"

// Isolated returns a Constructor that adds n vertices without edges (n ≥ 0),
// the fully disconnected graph.
// Complexity: O(n).
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodIsolated, n, MinIsolatedNodes); err != nil {
			return err
		}

		return addIndexedVertices(g, MethodIsolated, n, cfg.idFn)
	}
}
