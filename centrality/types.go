package centrality

import (
	"context"
	"errors"
)

// Sentinel errors for centrality computations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrTraversal is returned when a neighbor lookup fails mid-computation.
	ErrTraversal = errors.New("centrality: traversal failed")
)

// DegreeScore holds the degree components of one vertex.
// For undirected graphs In and Out equal Total by convention.
type DegreeScore struct {
	In    int `json:"in" yaml:"in" toml:"in"`
	Out   int `json:"out" yaml:"out" toml:"out"`
	Total int `json:"total" yaml:"total" toml:"total"`
}

// Scores maps a vertex ID to a centrality value.
type Scores map[string]float64

// Score is one entry of a Ranked list.
type Score struct {
	ID    string  `json:"id" yaml:"id" toml:"id"`
	Value float64 `json:"value" yaml:"value" toml:"value"`
}

// Option tunes Closeness, Betweenness and Compute.
type Option func(*options)

type options struct {
	ctx           context.Context
	normalized    bool
	directedPaths bool
	workers       int
}

// WithNormalized rescales scores so graphs of different sizes compare:
//
//   - Betweenness is divided by the number of vertex pairs that exclude the
//     vertex: (n-1)(n-2) for directed graphs, (n-1)(n-2)/2 for undirected ones.
//   - Closeness is multiplied by reachable/(n-1), penalizing vertices that
//     only reach a small component.
func WithNormalized() Option {
	return func(o *options) { o.normalized = true }
}

// WithDirectedPaths makes Closeness follow edge direction on directed graphs.
// By default closeness treats every edge as traversable both ways.
// Betweenness always follows edge direction on directed graphs.
func WithDirectedPaths() Option {
	return func(o *options) { o.directedPaths = true }
}

// WithContext makes Closeness and Betweenness stop early, returning the
// context error, once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithWorkers spreads the per-source searches over n goroutines; n <= 0
// uses GOMAXPROCS. Results are identical for a given n, but may differ from
// the single-worker result in the last bits of floating-point precision.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func resolve(opts []Option) options {
	o := options{ctx: context.Background(), workers: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
