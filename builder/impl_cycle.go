// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// impl_cycle.go - Cycle(n): vertices idFn(0..n-1), edges i→(i+1) mod n.

package builder

import "github.com/katalvlaran/centra/core"

// Cycle returns a Constructor that builds the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		if err := addIndexedVertices(g, MethodCycle, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(g, MethodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
