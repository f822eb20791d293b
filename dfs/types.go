package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending to Result.Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before recursing.
	FilterNeighbor func(id string) bool

	// FullTraversal runs DFS from every unvisited vertex (forest traversal).
	FullTraversal bool

	// Symmetric follows incoming edges too on directed graphs.
	Symmetric bool
}

// DefaultOptions returns Options with a background context, no hooks, no
// depth limit and single-source traversal along edge direction.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbor IDs for which fn returns false; skips are
// counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal restarts DFS from each unvisited vertex, covering
// disconnected components. startID is ignored.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// WithSymmetric treats every edge as traversable in both directions.
// It has no effect on undirected graphs.
func WithSymmetric() Option {
	return func(o *Options) { o.Symmetric = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its tree depth from its root.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// Roots do not appear.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool

	// Roots lists the start vertex of each DFS tree in discovery order.
	Roots []string

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
