// Package dfs implements depth-first search and connected components over
// core.Graph.
//
// DFS(g, startID, opts...) walks one tree, or the whole forest with
// WithFullTraversal. WithSymmetric ignores edge direction, which is how
// Components finds the weakly connected pieces of a directed graph.
//
// Options:
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithOnVisit(fn)         pre-order hook; an error aborts traversal.
//   - WithOnExit(fn)          post-order hook; an error aborts traversal.
//   - WithMaxDepth(limit)     stop recursing below limit (>= 0).
//   - WithFilterNeighbor(fn)  skip neighbors for which fn returns false.
//   - WithFullTraversal()     restart from every unvisited vertex.
//   - WithSymmetric()         follow edges in both directions.
//
// Complexity: O(V + E) time, O(V) memory. Vertices and neighbors are visited
// in sorted ID order, so results are deterministic.
package dfs
