// SPDX-License-Identifier: MIT

package graphfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for document handling.
var (
	// ErrUnknownFormat is returned for a format name or file extension that
	// has no codec.
	ErrUnknownFormat = errors.New("graphfile: unknown format")

	// ErrDecode wraps codec failures while reading a document.
	ErrDecode = errors.New("graphfile: decode failed")

	// ErrEncode wraps codec failures while writing a document or report.
	ErrEncode = errors.New("graphfile: encode failed")

	// ErrEmptyNodeID reports a node or edge endpoint with an empty ID.
	ErrEmptyNodeID = errors.New("graphfile: empty node id")

	// ErrDuplicateNode reports a node listed more than once.
	ErrDuplicateNode = errors.New("graphfile: duplicate node")

	// ErrUnknownNode reports an edge endpoint that is not in the node list.
	ErrUnknownNode = errors.New("graphfile: edge references unknown node")
)

// Format names a serialization.
type Format string

// Supported formats. The value doubles as the file extension.
const (
	// FormatTOML is TOML v1.0 via go-toml.
	FormatTOML Format = "toml"
	// FormatYAML is YAML 1.2 via yaml.v3; the "yml" extension maps here too.
	FormatYAML Format = "yaml"
	// FormatJSON is indented JSON.
	FormatJSON Format = "json"
)

// Formats lists every supported Format.
func Formats() []Format {
	return []Format{FormatTOML, FormatYAML, FormatJSON}
}

// ParseFormat resolves a case-insensitive format name; "yml" is accepted.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// EdgeSpec is one edge of a Document. For undirected documents the order of
// From and To is irrelevant.
type EdgeSpec struct {
	From string `toml:"from" yaml:"from" json:"from"`
	To   string `toml:"to" yaml:"to" json:"to"`
}

// Document is the on-disk shape of a graph.
//
//	name = "office"
//	directed = false
//	nodes = ["alice", "bob", "carol"]
//
//	[[edges]]
//	from = "alice"
//	to = "bob"
type Document struct {
	Name     string     `toml:"name" yaml:"name" json:"name"`
	Directed bool       `toml:"directed" yaml:"directed" json:"directed"`
	Nodes    []string   `toml:"nodes" yaml:"nodes" json:"nodes"`
	Edges    []EdgeSpec `toml:"edges" yaml:"edges" json:"edges"`
}
