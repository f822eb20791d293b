package dfs

import (
	"sort"

	"github.com/katalvlaran/centra/core"
)

// Components returns the connected components of g, ignoring edge direction
// (weak connectivity for directed graphs). Each component is sorted by ID and
// components are ordered by their smallest ID. An empty graph yields nil.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		comps [][]string
		cur   []string
	)
	res, err := DFS(g, "",
		WithFullTraversal(),
		WithSymmetric(),
		WithOnVisit(func(id string) error {
			cur = append(cur, id)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	// Each root opens a new tree; split the pre-order stream at roots.
	roots := make(map[string]bool, len(res.Roots))
	for _, r := range res.Roots {
		roots[r] = true
	}
	var comp []string
	for _, id := range cur {
		if roots[id] && comp != nil {
			comps = append(comps, comp)
			comp = nil
		}
		comp = append(comp, id)
	}
	if comp != nil {
		comps = append(comps, comp)
	}

	for _, c := range comps {
		sort.Strings(c)
	}

	return comps, nil
}
