// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// impl_path.go - Path(n): vertices idFn(0..n-1), edges (i-1)→i for i=1..n-1.

package builder

import "github.com/katalvlaran/centra/core"

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		if err := addIndexedVertices(g, MethodPath, n, cfg.idFn); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, MethodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
