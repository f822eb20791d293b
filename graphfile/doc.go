// SPDX-License-Identifier: MIT

// Package graphfile reads and writes graph documents: a named node list plus
// an edge list, stored as TOML, YAML or JSON.
//
// A Document is validated as a whole before it becomes a core.Graph, so every
// problem in a hand-edited file is reported at once:
//
//	doc, err := graphfile.Load("office.toml")
//	if err != nil { ... }
//	g, err := graphfile.Build(doc) // Validate + strict core.Graph
//
// The same codecs render centrality reports (EncodeReport) and turn generated
// topologies back into documents (FromGraph, Encode).
package graphfile
