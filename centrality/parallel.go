package centrality

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// workerCount resolves the WithWorkers setting against n sources.
func workerCount(requested, n int) int {
	w := requested
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}

	return w
}

// forEachChunk splits the sources [0,n) into contiguous chunks, one per
// worker, and runs fn for each chunk concurrently. The partition depends only
// on n and workers, so per-chunk results merged in chunk order are
// reproducible. The first error cancels ctx for the remaining chunks.
func forEachChunk(ctx context.Context, n, workers int, fn func(ctx context.Context, chunk, lo, hi int) error) error {
	if n == 0 {
		return nil
	}
	if workers <= 1 {
		return fn(ctx, 0, 0, n)
	}

	g, gctx := errgroup.WithContext(ctx)
	size := (n + workers - 1) / workers
	for c := 0; c*size < n; c++ {
		lo, hi := c*size, min((c+1)*size, n)
		chunk := c
		g.Go(func() error { return fn(gctx, chunk, lo, hi) })
	}

	return g.Wait()
}
