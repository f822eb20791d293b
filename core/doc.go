// Package core provides the small, thread-safe in-memory Graph consumed by
// the centrality engine.
//
// The Graph G = (V,E) is deliberately minimal:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops); they count toward degree but a vertex is never
//     its own neighbor
//   - Parallel edges (WithMultiEdges); they count additively toward degree but
//     collapse to a single neighbor in NeighborIDs/AdjacentIDs
//   - Strict endpoints (WithStrictVertices); AddEdge refuses to auto-create
//     vertices and reports ErrVertexNotFound instead
//   - Sequential edge identifiers ("e1", "e2", …) in insertion order
//
// Adjacency is stored as nested maps keyed by vertex and edge ID:
//
//	adjacency[from][to][edgeID] = struct{}{}
//	reverse[to][from][edgeID]   = struct{}{}   // directed edges only
//
// Undirected edges are mirrored in adjacency, so NeighborIDs and AdjacentIDs
// coincide for undirected graphs.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1), idempotent
//	HasVertex(id string) bool                  // O(1)
//	RemoveVertex(id string) error              // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) (string, error)   // O(1) amortized
//	RemoveEdge(edgeID string) error            // O(1)
//	HasEdge(from, to string) bool              // O(1)
//
//	// Query
//	Vertices() []string                        // sorted
//	Edges() []*Edge                            // insertion order
//	NeighborIDs(id string) ([]string, error)   // outgoing (directed) / incident (undirected)
//	AdjacentIDs(id string) ([]string, error)   // incoming ∪ outgoing
//	Degree(id string) (in, out, total int, err error)
//
// Determinism: every slice-returning query is sorted, so algorithms built on
// top of core iterate in a reproducible order.
//
// Concurrency: muVert guards the vertex catalog, muEdgeAdj guards edges and
// adjacency. Locks are always taken in that order.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
