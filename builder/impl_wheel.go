// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// impl_wheel.go - Wheel(n): ring C_{n-1} over idFn(0..n-2) plus hub
// cfg.centerID with spokes hub→rim in ascending index. A hub ID that equals
// a rim ID is rejected with ErrConstructFailed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/centra/core"
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if cfg.idFn(i) == cfg.centerID {
				return fmt.Errorf("%s: hub %q collides with rim vertex %d: %w", MethodWheel, cfg.centerID, i, ErrConstructFailed)
			}
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		if err := g.AddVertex(cfg.centerID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodWheel, cfg.centerID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := connect(g, MethodWheel, cfg.centerID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
