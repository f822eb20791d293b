// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// impl_star.go - Star(n): hub cfg.centerID plus leaves idFn(1..n-1),
// spokes hub→leaf in ascending leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/centra/core"
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves (n ≥ 2).
// Leaves are numbered from 1 so that DefaultIDFn never collides with a
// numeric hub ID chosen via WithCenterID("0").
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := g.AddVertex(cfg.centerID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, cfg.centerID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, leaf, err)
			}
			if err := connect(g, MethodStar, cfg.centerID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
