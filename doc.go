// Package centra scores the vertices of a graph by how central they are.
//
// Three measures are computed for every vertex:
//
//   - Degree: number of incident edges (in, out and total on directed graphs).
//   - Closeness: reachable/Σdistance over shortest paths, so a vertex that
//     reaches much of the graph quickly scores high even when the graph is
//     disconnected.
//   - Betweenness: how often a vertex lies on shortest paths between other
//     pairs (Brandes' algorithm), halved on undirected graphs.
//
// Layout:
//
//	core/        - thread-safe Graph, Vertex and Edge primitives
//	bfs/         - breadth-first traversal with hooks; closeness distances
//	dfs/         - depth-first traversal and connected components
//	centrality/  - Degree, Closeness, Betweenness, Compute and ranking helpers
//	builder/     - path, star, cycle, complete, wheel and isolated topologies
//	graphfile/   - TOML/YAML/JSON graph documents and report encoding
//	cmd/centra/  - command line: compute, validate, sample, watch
//
// Quick example, the path A─B─C─D:
//
//	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithLetterIDs()}, builder.Path(4))
//	rep, _ := centrality.Compute(g)
//	// rep.Betweenness: A=0 B=2 C=2 D=0
//	// rep.Closeness:   A=0.5 B=0.75 C=0.75 D=0.5
package centra
