// Package centrality computes degree, closeness and betweenness centrality
// over a core.Graph.
//
// What
//
//   - Degree: in/out/total incident-edge counts per vertex.
//   - Closeness: reachable / Σdistance from an unweighted BFS per vertex, so
//     disconnected graphs are handled gracefully (isolated vertices score 0).
//   - Betweenness: Brandes' algorithm with float64 path counting; undirected
//     totals are halved because every unordered pair is seen from both ends.
//   - Compute bundles all three into a Report; Rank, ScaleToMax and Gini turn
//     scores into the ordering and scaling a chart or gauge needs.
//
// Every function is a pure pass over its input: no hidden state, no caching,
// nothing retained between calls. Results are recomputed from scratch on each
// call and are safe to hand to another goroutine. Vertices and neighbors are
// iterated in sorted order, so repeated calls with the same options return
// bit-identical values.
//
// WithWorkers spreads the per-source searches over goroutines and
// WithContext bounds a long computation.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Degree:      O(V + E)
//   - Closeness:   O(V·(V + E))
//   - Betweenness: O(V·E) time, O(V + E) memory per source
//
// The engine targets pedagogical graphs (tens of vertices). Nothing is
// optimized for large or weighted graphs.
//
// Usage
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("A", "B")
//	_, _ = g.AddEdge("B", "C")
//
//	deg, _ := centrality.Degree(g)
//	cls, _ := centrality.Closeness(g)
//	btw, _ := centrality.Betweenness(g, centrality.WithNormalized())
//	for _, s := range centrality.Rank(btw).Top(3) {
//		fmt.Println(s.ID, s.Value)
//	}
//
// Errors
//
//   - ErrGraphNil   if the graph pointer is nil.
//   - ErrTraversal  if a neighbor lookup fails (the graph was mutated during
//     the computation).
//   - ctx.Err()     once the WithContext context is done.
package centrality
