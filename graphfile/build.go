// SPDX-License-Identifier: MIT

package graphfile

import (
	"fmt"

	"github.com/katalvlaran/centra/core"
)

// Build validates doc and materializes it as a strict core.Graph that allows
// self-loops and parallel edges. Nodes are added in document order, then
// edges in document order.
func Build(doc Document) (*core.Graph, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	g := core.NewGraph(
		core.WithDirected(doc.Directed),
		core.WithLoops(),
		core.WithMultiEdges(),
		core.WithStrictVertices(),
	)
	for _, id := range doc.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("graphfile: node %q: %w", id, err)
		}
	}
	for i, e := range doc.Edges {
		if _, err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("graphfile: edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a Document. Nodes are sorted; edges keep their
// insertion order.
func FromGraph(name string, g *core.Graph) Document {
	doc := Document{Name: name}
	if g == nil {
		return doc
	}
	doc.Directed = g.Directed()
	doc.Nodes = g.Vertices()
	edges := g.Edges()
	doc.Edges = make([]EdgeSpec, 0, len(edges))
	for _, e := range edges {
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To})
	}

	return doc
}
