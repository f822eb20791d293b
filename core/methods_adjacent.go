// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacentIDs) and adjacency helpers.
// Determinism:
//   - Both queries return unique IDs sorted lex asc.
// Concurrency:
//   - Queries hold muVert then muEdgeAdj read locks.
//   - Helpers run only under the muEdgeAdj write lock held by mutators.

package core

import "sort"

// NeighborIDs returns the vertices reachable from id over a single edge.
//
// Policy:
//   - Directed graph: targets of outgoing edges.
//   - Undirected graph: the other endpoint of every incident edge.
//   - Self-loops are skipped; parallel edges collapse to one ID.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return collectIDs(id, g.adjacency[id]), nil
}

// AdjacentIDs returns the union of incoming and outgoing neighbors of id,
// i.e. the neighborhood in the symmetric closure of the graph. For undirected
// graphs it equals NeighborIDs.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) AdjacentIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if !g.directed {
		return collectIDs(id, g.adjacency[id]), nil
	}

	return collectIDs(id, g.adjacency[id], g.reverse[id]), nil
}

// collectIDs merges the keys of the given adjacency rows into a sorted,
// duplicate-free slice, skipping self.
func collectIDs(self string, rows ...map[string]map[string]struct{}) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, row := range rows {
		for nbr, bucket := range row {
			if nbr == self || len(bucket) == 0 {
				continue
			}
			if _, dup := seen[nbr]; dup {
				continue
			}
			seen[nbr] = struct{}{}
			out = append(out, nbr)
		}
	}
	sort.Strings(out)

	return out
}

// addAdjacency links e into adjacency (and its mirror or reverse index).
// Caller must hold muEdgeAdj write lock.
func addAdjacency(g *Graph, e *Edge) {
	link(g.adjacency, e.From, e.To, e.ID)
	if g.directed {
		link(g.reverse, e.To, e.From, e.ID)
		return
	}
	if !e.IsLoop() {
		link(g.adjacency, e.To, e.From, e.ID)
	}
}

// removeAdjacency unlinks e and prunes empty buckets.
// Caller must hold muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	unlink(g.adjacency, e.From, e.To, e.ID)
	if g.directed {
		unlink(g.reverse, e.To, e.From, e.ID)
		return
	}
	if !e.IsLoop() {
		unlink(g.adjacency, e.To, e.From, e.ID)
	}
}

func link(m map[string]map[string]map[string]struct{}, a, b, eid string) {
	row, ok := m[a]
	if !ok {
		row = make(map[string]map[string]struct{})
		m[a] = row
	}
	bucket, ok := row[b]
	if !ok {
		bucket = make(map[string]struct{})
		row[b] = bucket
	}
	bucket[eid] = struct{}{}
}

func unlink(m map[string]map[string]map[string]struct{}, a, b, eid string) {
	row, ok := m[a]
	if !ok {
		return
	}
	delete(row[b], eid)
	if len(row[b]) == 0 {
		delete(row, b)
	}
	if len(row) == 0 {
		delete(m, a)
	}
}
