package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/centra/builder"
	"github.com/katalvlaran/centra/centrality"
	"github.com/katalvlaran/centra/graphfile"
	"github.com/katalvlaran/centra/internal/config"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCompute_Table(t *testing.T) {
	out, _, err := run(t, "compute", "testdata/path.toml")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "# path (undirected, nodes=4, edges=3, components=1)", lines[0])
	assert.Equal(t, []string{"NODE", "DEGREE", "CLOSENESS", "BETWEENNESS"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"B", "2", "0.7500", "2.0000"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"C", "2", "0.7500", "2.0000"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"A", "1", "0.5000", "0.0000"}, strings.Fields(lines[4]))
	assert.True(t, strings.HasPrefix(lines[6], "gini(betweenness) = "))
}

func TestCompute_JSONTopMetric(t *testing.T) {
	out, _, err := run(t, "compute", "testdata/path.toml", "--format", "json", "--metric", "betweenness", "--top", "2")
	require.NoError(t, err)

	var rep centrality.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Nil(t, rep.Degree)
	assert.Nil(t, rep.Closeness)
	assert.Equal(t, centrality.Scores{"B": 2, "C": 2}, rep.Betweenness)
	assert.Equal(t, 1, rep.Components)
}

func TestCompute_Normalized(t *testing.T) {
	out, _, err := run(t, "compute", "testdata/path.toml", "-f", "json", "--normalized", "--workers", "0")
	require.NoError(t, err)

	var rep centrality.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.InDelta(t, 2.0/3.0, rep.Betweenness["B"], 1e-9)
	assert.InDelta(t, 0.5, rep.Closeness["A"], 1e-9)
}

func TestCompute_DirectedTable(t *testing.T) {
	out, _, err := run(t, "compute", "testdata/star.yaml", "--directed-paths")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "# star (directed, nodes=4, edges=4, components=1)", lines[0])
	assert.Equal(t, []string{"NODE", "IN", "OUT", "DEGREE", "CLOSENESS", "BETWEENNESS"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"hub", "1", "3", "4", "1.0000", "2.0000"}, strings.Fields(lines[2]))
}

func TestCompute_Errors(t *testing.T) {
	_, _, err := run(t, "compute", "testdata/missing.toml")
	require.Error(t, err)

	_, _, err = run(t, "compute", "testdata/broken.json")
	require.ErrorIs(t, err, graphfile.ErrUnknownNode)

	_, _, err = run(t, "compute", "testdata/path.toml", "--metric", "pagerank")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "compute")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate", "testdata/path.toml")
	require.NoError(t, err)
	assert.Equal(t, "✓ testdata/path.toml: 4 nodes, 3 edges\n", out)

	_, errOut, err := run(t, "validate", "testdata/broken.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 error(s)")
	assert.Equal(t, 2, strings.Count(errOut, "✗"))
	assert.Contains(t, errOut, `"Q"`)
}

func TestSample(t *testing.T) {
	out, _, err := run(t, "sample", "star", "-n", "4", "--format", "yaml")
	require.NoError(t, err)

	doc, err := graphfile.Decode([]byte(out), graphfile.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "star-4", doc.Name)
	assert.Equal(t, []string{"1", "2", "3", builder.CenterVertexID}, doc.Nodes)
	assert.Len(t, doc.Edges, 3)

	out, _, err = run(t, "sample", "path", "-n", "3", "--letters", "--directed", "--name", "p")
	require.NoError(t, err)
	doc, err = graphfile.Decode([]byte(out), graphfile.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, graphfile.Document{
		Name:     "p",
		Directed: true,
		Nodes:    []string{"A", "B", "C"},
		Edges:    []graphfile.EdgeSpec{{From: "A", To: "B"}, {From: "B", To: "C"}},
	}, doc)

	_, _, err = run(t, "sample", "moebius")
	require.ErrorIs(t, err, builder.ErrUnknownTopology)
}

func TestWatchLoop_Debounces(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, events, errs, "./g.toml", 50*time.Millisecond, func() { calls.Add(1) }, zap.NewNop())
	}()

	for i := 0; i < 3; i++ {
		events <- fsnotify.Event{Name: "g.toml", Op: fsnotify.Write}
	}
	events <- fsnotify.Event{Name: "other.toml", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "g.toml", Op: fsnotify.Chmod}
	errs <- assert.AnError

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	events <- fsnotify.Event{Name: "g.toml", Op: fsnotify.Create}
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watchLoop did not stop on cancel")
	}
}

func TestWatchLoop_StopsOnClosedEvents(t *testing.T) {
	events := make(chan fsnotify.Event)
	close(events)
	err := watchLoop(context.Background(), events, nil, "g.toml", time.Millisecond, func() {}, zap.NewNop())
	require.NoError(t, err)
}
