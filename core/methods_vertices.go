// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and per-vertex queries: AddVertex/HasVertex/RemoveVertex,
//       Vertices/VertexCount/VertexMetadata and Degree.
// Determinism:
//   - Vertices() returns IDs sorted lex asc.
// Concurrency:
//   - Locks are taken muVert → muEdgeAdj, never the other way around.

package core

import "sort"

// AddVertex inserts a vertex with the given id. Re-adding an existing id is a no-op.
//
// Errors: ErrEmptyVertexID.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	return nil
}

// HasVertex reports whether a vertex with the given id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every edge incident to it.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Collect incident edge IDs first; removeAdjacency mutates the maps we range over.
	// Undirected edges are mirrored in adjacency[id]; directed in-edges live in reverse[id].
	incident := make(map[string]struct{})
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			incident[eid] = struct{}{}
		}
	}
	for _, bucket := range g.reverse[id] {
		for eid := range bucket {
			incident[eid] = struct{}{}
		}
	}
	for eid := range incident {
		if e, ok := g.edges[eid]; ok {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.adjacency, id)
	delete(g.reverse, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VertexMetadata returns the live metadata map of a vertex.
// The map is shared with the graph; callers own any synchronization they need.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) VertexMetadata(id string) (map[string]interface{}, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v.Metadata, nil
}

// Degree returns the degree components of the given vertex.
//
// Policy:
//   - Directed graph: in counts edges with To == id, out counts edges with
//     From == id, total = in + out. A self-loop adds 1 to both in and out.
//   - Undirected graph: every incident edge adds 1 to total (a self-loop adds 2,
//     one per endpoint). in and out are set equal to total.
//   - Parallel edges count additively.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(v)).
func (g *Graph) Degree(id string) (in, out, total int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if g.directed {
		for _, bucket := range g.adjacency[id] {
			out += len(bucket)
		}
		for _, bucket := range g.reverse[id] {
			in += len(bucket)
		}

		return in, out, in + out, nil
	}

	for to, bucket := range g.adjacency[id] {
		if to == id {
			total += 2 * len(bucket)
			continue
		}
		total += len(bucket)
	}

	return total, total, total, nil
}
