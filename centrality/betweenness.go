package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/centra/core"
)

// Betweenness computes betweenness centrality for every vertex of g using
// Brandes' algorithm for unweighted graphs.
//
// Directed graphs are traversed along edge direction. On undirected graphs
// every unordered pair is discovered from both endpoints, so the accumulated
// totals are halved. Self-loops and parallel edges never create extra
// shortest paths. WithNormalized divides by the number of pairs not involving
// the vertex; graphs with fewer than three vertices then score all zeros.
func Betweenness(g *core.Graph, opts ...Option) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)

	ix, err := indexGraph(g)
	if err != nil {
		return nil, err
	}
	n := len(ix.ids)
	workers := workerCount(o.workers, n)
	partial := make([][]float64, workers)
	err = forEachChunk(o.ctx, n, workers, func(ctx context.Context, chunk, lo, hi int) error {
		acc := make([]float64, n)
		st := newBrandesState(n)
		for s := lo; s < hi; s++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			st.bfs(ix.adj, s)
			st.accumulate(s, acc)
		}
		partial[chunk] = acc

		return nil
	})
	if err != nil {
		return nil, err
	}

	cb := make([]float64, n)
	for _, acc := range partial {
		for v, x := range acc {
			cb[v] += x
		}
	}

	if !ix.directed {
		for v := range cb {
			cb[v] /= 2
		}
	}
	if o.normalized {
		scale := 0.0
		if n >= 3 {
			scale = 1 / float64((n-1)*(n-2))
			if !ix.directed {
				scale *= 2
			}
		}
		for v := range cb {
			cb[v] *= scale
		}
	}

	out := make(Scores, n)
	for v, id := range ix.ids {
		out[id] = cb[v]
	}

	return out, nil
}

// indexedGraph is a dense snapshot of g: vertex IDs in sorted order and the
// out-neighborhoods (core.NeighborIDs) as index lists.
type indexedGraph struct {
	ids      []string
	adj      [][]int
	directed bool
}

func indexGraph(g *core.Graph) (*indexedGraph, error) {
	ids := g.Vertices()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	adj := make([][]int, len(ids))
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: neighbors of %q: %v", ErrTraversal, id, err)
		}
		row := make([]int, 0, len(nbrs))
		for _, nbr := range nbrs {
			j, ok := pos[nbr]
			if !ok {
				return nil, fmt.Errorf("%w: %q lists unknown neighbor %q", ErrTraversal, id, nbr)
			}
			row = append(row, j)
		}
		adj[i] = row
	}

	return &indexedGraph{ids: ids, adj: adj, directed: g.Directed()}, nil
}

// brandesState holds the per-source working storage of Brandes' algorithm.
// Buffers are reset, not reallocated, between sources.
type brandesState struct {
	sigma []float64 // number of shortest paths from the source
	dist  []int     // -1 until discovered
	pred  [][]int   // predecessors on shortest paths
	delta []float64 // dependency of the source on each vertex
	stack []int     // vertices in non-decreasing distance
	queue []int
}

func newBrandesState(n int) *brandesState {
	return &brandesState{
		sigma: make([]float64, n),
		dist:  make([]int, n),
		pred:  make([][]int, n),
		delta: make([]float64, n),
		stack: make([]int, 0, n),
		queue: make([]int, 0, n),
	}
}

// bfs runs the forward phase from s: distances, path counts, predecessors
// and the visitation stack.
func (st *brandesState) bfs(adj [][]int, s int) {
	for v := range st.dist {
		st.dist[v] = -1
		st.sigma[v] = 0
		st.delta[v] = 0
		st.pred[v] = st.pred[v][:0]
	}
	st.stack = st.stack[:0]
	st.queue = append(st.queue[:0], s)
	st.sigma[s] = 1
	st.dist[s] = 0

	for head := 0; head < len(st.queue); head++ {
		v := st.queue[head]
		st.stack = append(st.stack, v)
		for _, w := range adj[v] {
			if st.dist[w] < 0 {
				st.dist[w] = st.dist[v] + 1
				st.queue = append(st.queue, w)
			}
			if st.dist[w] == st.dist[v]+1 {
				st.sigma[w] += st.sigma[v]
				st.pred[w] = append(st.pred[w], v)
			}
		}
	}
}

// accumulate runs the backward phase, popping the stack deepest-first and
// adding each vertex's dependency into cb.
func (st *brandesState) accumulate(s int, cb []float64) {
	for i := len(st.stack) - 1; i >= 0; i-- {
		w := st.stack[i]
		for _, v := range st.pred[w] {
			st.delta[v] += (st.sigma[v] / st.sigma[w]) * (1 + st.delta[w])
		}
		if w != s {
			cb[w] += st.delta[w]
		}
	}
}
