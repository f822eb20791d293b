// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Result carries Order (visit sequence), Depth (distance) and Parent (BFS tree).
//   - Hooks at three stages (OnEnqueue, OnDequeue, OnVisit) let a caller step
//     through the traversal, e.g. to animate the frontier one level at a time.
//   - WithSymmetric ignores edge direction; the closeness engine relies on it.
//
// Determinism
//
//	core.NeighborIDs and core.AdjacentIDs return sorted IDs, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "A", bfs.WithSymmetric(), bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//		// context errors or a wrapped OnVisit error
//	}
//	reached, totalDist := res.Reached()
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ErrNeighbors            if a neighbor lookup fails.
package bfs
