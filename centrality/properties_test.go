package centrality_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centra/centrality"
)

func TestDegreeSums_MatchEdgeCount(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 50; round++ {
		directed := round%2 == 1
		g := randomGraph(rng, 1+rng.Intn(15), rng.Float64()*0.5, directed)
		deg, err := centrality.Degree(g)
		require.NoError(t, err)

		var in, out, total int
		for _, d := range deg {
			in += d.In
			out += d.Out
			total += d.Total
		}
		m := g.EdgeCount()
		require.Equal(t, 2*m, total, "round %d directed=%v", round, directed)
		if directed {
			require.Equal(t, m, in, "round %d", round)
			require.Equal(t, m, out, "round %d", round)
		}
	}
}

func TestCloseness_ZeroOnlyWithoutNeighbors(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for round := 0; round < 50; round++ {
		directed := round%2 == 1
		g := randomGraph(rng, 1+rng.Intn(15), rng.Float64()*0.3, directed)
		for _, opts := range [][]centrality.Option{nil, {centrality.WithNormalized()}} {
			cls, err := centrality.Closeness(g, opts...)
			require.NoError(t, err)
			for _, id := range g.Vertices() {
				nbrs, err := g.AdjacentIDs(id)
				require.NoError(t, err)
				require.Equal(t, len(nbrs) == 0, cls[id] == 0, "round %d directed=%v vertex %s", round, directed, id)
			}
		}
	}
}
