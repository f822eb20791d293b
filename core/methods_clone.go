// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Clone and Clear.

package core

// Clone returns a deep copy of vertices, edges and adjacency with the same
// flags. Edge IDs and the ID counter are preserved, so edges added to the
// clone never collide with the original's IDs. Vertex metadata maps are
// copied one level deep.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := NewGraph()
	c.directed = g.directed
	c.allowLoops = g.allowLoops
	c.allowMulti = g.allowMulti
	c.strict = g.strict
	c.nextEdgeID = g.nextEdgeID

	for id, v := range g.vertices {
		md := make(map[string]interface{}, len(v.Metadata))
		for k, val := range v.Metadata {
			md[k] = val
		}
		c.vertices[id] = &Vertex{ID: id, Metadata: md}
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
		addAdjacency(c, &cp)
	}

	return c
}

// Clear removes all vertices and edges but keeps the configuration flags.
// The edge ID counter is reset.
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
	g.reverse = make(map[string]map[string]map[string]struct{})
	g.nextEdgeID = 0
}
