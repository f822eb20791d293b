package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centra/builder"
	"github.com/katalvlaran/centra/centrality"
	"github.com/katalvlaran/centra/core"
)

const eps = 1e-9

// pathABCD builds the undirected path A–B–C–D.
func pathABCD(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithLetterIDs()}, builder.Path(4))
	require.NoError(t, err)
	return g
}

func TestNilGraph(t *testing.T) {
	_, err := centrality.Degree(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Closeness(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Betweenness(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Compute(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
}

func TestEmptyGraph(t *testing.T) {
	g := core.NewGraph()
	rep, err := centrality.Compute(g)
	require.NoError(t, err)
	assert.Zero(t, rep.Components)
	assert.NotNil(t, rep.Degree)
	assert.Empty(t, rep.Degree)
	assert.NotNil(t, rep.Closeness)
	assert.Empty(t, rep.Closeness)
	assert.NotNil(t, rep.Betweenness)
	assert.Empty(t, rep.Betweenness)
}

func TestPathABCD_WorkedExample(t *testing.T) {
	g := pathABCD(t)

	deg, err := centrality.Degree(g)
	require.NoError(t, err)
	for id, want := range map[string]int{"A": 1, "B": 2, "C": 2, "D": 1} {
		assert.Equal(t, want, deg[id].Total, "degree %s", id)
	}

	btw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	for id, want := range map[string]float64{"A": 0, "B": 2, "C": 2, "D": 0} {
		assert.InDelta(t, want, btw[id], eps, "betweenness %s", id)
	}

	cls, err := centrality.Closeness(g)
	require.NoError(t, err)
	for id, want := range map[string]float64{"A": 0.5, "B": 0.75, "C": 0.75, "D": 0.5} {
		assert.InDelta(t, want, cls[id], eps, "closeness %s", id)
	}
}

func TestPathGraph_InteriorDominatesEndpoints(t *testing.T) {
	for n := 3; n <= 9; n++ {
		g, err := builder.BuildGraph(nil, nil, builder.Path(n))
		require.NoError(t, err)
		btw, err := centrality.Betweenness(g)
		require.NoError(t, err)

		first, last := builder.DefaultIDFn(0), builder.DefaultIDFn(n-1)
		assert.Equal(t, 0.0, btw[first])
		assert.Equal(t, 0.0, btw[last])
		for i := 1; i < n-1; i++ {
			id := builder.DefaultIDFn(i)
			assert.Greater(t, btw[id], btw[first], "n=%d interior %s", n, id)
			// Interior vertex i separates i vertices on one side from n-1-i on the other.
			assert.InDelta(t, float64(i*(n-1-i)), btw[id], eps, "n=%d vertex %s", n, id)
		}
	}
}

func TestStarGraph(t *testing.T) {
	for k := 1; k <= 8; k++ {
		g, err := builder.BuildGraph(nil, nil, builder.Star(k+1))
		require.NoError(t, err)
		rep, err := centrality.Compute(g)
		require.NoError(t, err)

		assert.Equal(t, k, rep.Degree[builder.CenterVertexID].Total)
		assert.InDelta(t, float64(k*(k-1)/2), rep.Betweenness[builder.CenterVertexID], eps, "C(K,2) for K=%d", k)
		for i := 1; i <= k; i++ {
			leaf := builder.DefaultIDFn(i)
			assert.Equal(t, 1, rep.Degree[leaf].Total)
			assert.Equal(t, 0.0, rep.Betweenness[leaf])
			assert.LessOrEqual(t, rep.Betweenness[leaf], rep.Betweenness[builder.CenterVertexID])
		}
		top := centrality.Rank(rep.Betweenness)[0]
		if k >= 2 {
			assert.Equal(t, builder.CenterVertexID, top.ID)
		}
	}
}

func TestFullyDisconnected(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Isolated(6))
	require.NoError(t, err)
	rep, err := centrality.Compute(g, centrality.WithNormalized())
	require.NoError(t, err)
	assert.Equal(t, 6, rep.Components)
	for _, id := range g.Vertices() {
		assert.Equal(t, centrality.DegreeScore{}, rep.Degree[id])
		assert.Equal(t, 0.0, rep.Closeness[id])
		assert.Equal(t, 0.0, rep.Betweenness[id])
	}
}

func TestCycle_SplitsPathCounts(t *testing.T) {
	// In C4 each vertex lies on one of the two shortest paths between the
	// opposite pair that excludes it.
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	btw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	for id, v := range btw {
		assert.InDelta(t, 0.5, v, eps, id)
	}
}

func TestComplete_NoBrokers(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	rep, err := centrality.Compute(g)
	require.NoError(t, err)
	for _, id := range g.Vertices() {
		assert.Equal(t, 4, rep.Degree[id].Total)
		assert.InDelta(t, 1.0, rep.Closeness[id], eps)
		assert.InDelta(t, 0.0, rep.Betweenness[id], eps)
	}
}

func TestDirectedPath(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	deg, err := centrality.Degree(g)
	require.NoError(t, err)
	assert.Equal(t, centrality.DegreeScore{In: 0, Out: 1, Total: 1}, deg["A"])
	assert.Equal(t, centrality.DegreeScore{In: 1, Out: 1, Total: 2}, deg["B"])
	assert.Equal(t, centrality.DegreeScore{In: 1, Out: 0, Total: 1}, deg["C"])

	btw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, btw["B"], eps, "directed totals are not halved")
	assert.InDelta(t, 0.0, btw["A"], eps)

	norm, err := centrality.Betweenness(g, centrality.WithNormalized())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, norm["B"], eps, "1 / ((3-1)(3-2))")

	sym, err := centrality.Closeness(g)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, sym["A"], eps)
	assert.InDelta(t, 1.0, sym["B"], eps)
	assert.InDelta(t, 2.0/3.0, sym["C"], eps, "symmetric by default")

	dir, err := centrality.Closeness(g, centrality.WithDirectedPaths())
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, dir["A"], eps)
	assert.InDelta(t, 1.0, dir["B"], eps)
	assert.Equal(t, 0.0, dir["C"], "sink reaches nothing")
}

func TestDirectedPathsIgnoredOnUndirectedGraph(t *testing.T) {
	g := pathABCD(t)
	a, err := centrality.Closeness(g)
	require.NoError(t, err)
	b, err := centrality.Closeness(g, centrality.WithDirectedPaths())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNormalized(t *testing.T) {
	g := pathABCD(t)
	btw, err := centrality.Betweenness(g, centrality.WithNormalized())
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, btw["B"], eps, "2 / (3·2/2)")

	// A–B plus isolated C: A reaches 1 of 2 others at distance 1.
	g2 := core.NewGraph()
	_, _ = g2.AddEdge("A", "B")
	_ = g2.AddVertex("C")
	cls, err := centrality.Closeness(g2, centrality.WithNormalized())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cls["A"], eps)
	assert.Equal(t, 0.0, cls["C"])

	small := core.NewGraph()
	_, _ = small.AddEdge("A", "B")
	tiny, err := centrality.Betweenness(small, centrality.WithNormalized())
	require.NoError(t, err)
	assert.Equal(t, centrality.Scores{"A": 0, "B": 0}, tiny)
}

func TestSelfLoopsAndParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("B", "B")

	deg, err := centrality.Degree(g)
	require.NoError(t, err)
	assert.Equal(t, 5, deg["B"].Total, "2 parallel + 1 + loop counted twice")

	btw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, btw["B"], eps, "parallel edges do not multiply paths")

	cls, err := centrality.Closeness(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cls["B"], eps, "a vertex is not its own neighbor")
}

func TestIdempotent(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(7))
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithPrefixIDs("p")}, builder.Path(3)))
	first, err := centrality.Compute(g, centrality.WithNormalized())
	require.NoError(t, err)
	second, err := centrality.Compute(g, centrality.WithNormalized())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTotals(t *testing.T) {
	g := pathABCD(t)
	deg, err := centrality.Degree(g)
	require.NoError(t, err)
	assert.Equal(t, centrality.Scores{"A": 1, "B": 2, "C": 2, "D": 1}, centrality.Totals(deg))
}
