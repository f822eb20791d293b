// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// helpers.go - small helpers shared by the constructor implementations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/centra/core"
)

// addIndexedVertices inserts idFn(0..n-1) into g in ascending index order.
func addIndexedVertices(g *core.Graph, method string, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// connect adds u→v and wraps any core error with method context.
func connect(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}

	return nil
}

// checkMin returns ErrTooFewVertices when n < minimum.
func checkMin(method string, n, minimum int) error {
	if n < minimum {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minimum, ErrTooFewVertices)
	}

	return nil
}
