package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centra/builder"
	"github.com/katalvlaran/centra/core"
)

func TestConstructors_Shape(t *testing.T) {
	cases := []struct {
		name     string
		cons     builder.Constructor
		vertices int
		edges    int
	}{
		{"path", builder.Path(5), 5, 4},
		{"star", builder.Star(6), 6, 5},
		{"cycle", builder.Cycle(5), 5, 5},
		{"complete", builder.Complete(5), 5, 10},
		{"wheel", builder.Wheel(6), 6, 10},
		{"isolated", builder.Isolated(4), 4, 0},
		{"isolated-empty", builder.Isolated(0), 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, directed := range []bool{false, true} {
				g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(directed)}, nil, tc.cons)
				require.NoError(t, err)
				assert.Equal(t, tc.vertices, g.VertexCount(), "vertices (directed=%v)", directed)
				assert.Equal(t, tc.edges, g.EdgeCount(), "edges (directed=%v)", directed)
			}
		})
	}
}

func TestConstructors_TooFew(t *testing.T) {
	for _, cons := range []builder.Constructor{
		builder.Path(1), builder.Star(1), builder.Cycle(2),
		builder.Complete(0), builder.Wheel(3), builder.Isolated(-1),
	} {
		_, err := builder.BuildGraph(nil, nil, cons)
		require.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

func TestStar_HubAndDirection(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithCenterID("hub"), builder.WithPrefixIDs("leaf")},
		builder.Star(4),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"hub", "leaf1", "leaf2", "leaf3"}, g.Vertices())

	in, out, _, err := g.Degree("hub")
	require.NoError(t, err)
	assert.Equal(t, 0, in)
	assert.Equal(t, 3, out)
	assert.True(t, g.HasEdge("hub", "leaf2"))
	assert.False(t, g.HasEdge("leaf2", "hub"))
}

func TestWheel_HubCollidesWithRim(t *testing.T) {
	_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithCenterID("0")}, builder.Wheel(5))
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithCenterID("2")}, builder.Wheel(4))
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	// "3" is past the rim of W_4 (rim ids 0..2), so it is a valid hub.
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithCenterID("3")}, builder.Wheel(4))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	// Star numbers its leaves from 1, so a hub named "0" is fine there.
	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithCenterID("0")}, builder.Star(5))
	require.NoError(t, err)
}

func TestPath_LetterIDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithLetterIDs()}, builder.Path(4))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		assert.True(t, g.HasEdge(e[0], e[1]), "%s–%s", e[0], e[1])
	}
}

func TestApply_ComposesComponents(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithPrefixIDs("a")}, builder.Cycle(3))
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithPrefixIDs("b")}, builder.Path(2)))
	assert.Equal(t, []string{"a0", "a1", "a2", "b0", "b1"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestByName(t *testing.T) {
	for _, name := range builder.Topologies() {
		cons, err := builder.ByName(name, 5)
		require.NoError(t, err, name)
		_, err = builder.BuildGraph(nil, nil, cons)
		require.NoError(t, err, name)
	}
	_, err := builder.ByName("moebius", 5)
	require.True(t, errors.Is(err, builder.ErrUnknownTopology))
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "A", builder.LetterIDFn(0))
	assert.Equal(t, "Z", builder.LetterIDFn(25))
	assert.Equal(t, "AA", builder.LetterIDFn(26))
	assert.Equal(t, "AZ", builder.LetterIDFn(51))
	assert.Equal(t, "v7", builder.PrefixIDFn("v")(7))
	assert.Panics(t, func() { builder.LetterIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithCenterID("") })
}
