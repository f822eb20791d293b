package centrality

import (
	"fmt"

	"github.com/katalvlaran/centra/core"
)

// Degree returns the degree components of every vertex in g.
//
// Directed graphs report In (edges ending at the vertex), Out (edges starting
// at it) and Total = In + Out. Undirected graphs count every edge once for
// each endpoint (a self-loop twice for its only endpoint) and copy Total into
// In and Out. Parallel edges count additively. Isolated vertices score zero.
func Degree(g *core.Graph) (map[string]DegreeScore, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.Vertices()
	out := make(map[string]DegreeScore, len(ids))
	for _, id := range ids {
		in, o, total, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("%w: degree of %q: %v", ErrTraversal, id, err)
		}
		out[id] = DegreeScore{In: in, Out: o, Total: total}
	}

	return out, nil
}

// Totals projects degree scores onto their Total component so they can be
// ranked and scaled like the other metrics.
func Totals(deg map[string]DegreeScore) Scores {
	out := make(Scores, len(deg))
	for id, d := range deg {
		out[id] = float64(d.Total)
	}

	return out
}
