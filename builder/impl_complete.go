// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// impl_complete.go - Complete(n): every pair i<j joined by i→j.
// On a directed graph this yields a transitive tournament.

package builder

import "github.com/katalvlaran/centra/core"

// Complete returns a Constructor that builds K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		if err := addIndexedVertices(g, MethodComplete, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, MethodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
