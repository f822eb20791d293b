package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/centra/bfs"
	"github.com/katalvlaran/centra/core"
)

// Closeness returns reachable/Σdistance for every vertex of g.
//
// For each source s a BFS yields shortest-path distances to every reachable
// vertex. With reachable the number of vertices reached (s excluded) and
// totalDist the sum of their distances, the score is reachable/totalDist, or
// 0 when nothing is reachable. This rewards vertices that reach more of a
// disconnected graph, not only those close to a small neighborhood.
//
// Edge direction is ignored unless WithDirectedPaths is given. WithNormalized
// multiplies each score by reachable/(n-1). Sources are searched
// concurrently with WithWorkers; every score is independent of the others.
func Closeness(g *core.Graph, opts ...Option) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)

	symmetric := !(o.directedPaths && g.Directed())

	ids := g.Vertices()
	n := len(ids)
	vals := make([]float64, n)
	err := forEachChunk(o.ctx, n, workerCount(o.workers, n), func(ctx context.Context, _, lo, hi int) error {
		walk := []bfs.Option{bfs.WithContext(ctx)}
		if symmetric {
			walk = append(walk, bfs.WithSymmetric())
		}
		for i := lo; i < hi; i++ {
			res, err := bfs.BFS(g, ids[i], walk...)
			if err != nil {
				return fmt.Errorf("%w: closeness from %q: %w", ErrTraversal, ids[i], err)
			}
			reachable, totalDist := res.Reached()
			if reachable == 0 {
				continue
			}
			score := float64(reachable) / float64(totalDist)
			if o.normalized {
				score *= float64(reachable) / float64(n-1)
			}
			vals[i] = score
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make(Scores, n)
	for i, id := range ids {
		out[id] = vals[i]
	}

	return out, nil
}
