// SPDX-License-Identifier: MIT

package graphfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/centra/centrality"
)

// Decode parses data in format f. Unknown keys are rejected so typos in a
// hand-written file do not silently drop edges. An empty input yields an
// empty Document. Node ids may be written as strings or integers in every
// format; integers are stored in their decimal form.
func Decode(data []byte, f Format) (Document, error) {
	var raw rawDocument
	var err error
	switch f {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&raw)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&raw)
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return Document{}, nil
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		dec.UseNumber()
		err = dec.Decode(&raw)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("%w (%s): %v", ErrDecode, f, err)
	}
	doc, err := raw.document()
	if err != nil {
		return Document{}, fmt.Errorf("%w (%s): %v", ErrDecode, f, err)
	}

	return doc, nil
}

// rawDocument mirrors Document with untyped ids so every codec can accept
// both string and integer node ids.
type rawDocument struct {
	Name     string    `toml:"name" yaml:"name" json:"name"`
	Directed bool      `toml:"directed" yaml:"directed" json:"directed"`
	Nodes    []any     `toml:"nodes" yaml:"nodes" json:"nodes"`
	Edges    []rawEdge `toml:"edges" yaml:"edges" json:"edges"`
}

type rawEdge struct {
	From any `toml:"from" yaml:"from" json:"from"`
	To   any `toml:"to" yaml:"to" json:"to"`
}

func (r rawDocument) document() (Document, error) {
	doc := Document{Name: r.Name, Directed: r.Directed}
	if r.Nodes != nil {
		doc.Nodes = make([]string, len(r.Nodes))
		for i, v := range r.Nodes {
			id, err := nodeID(v)
			if err != nil {
				return Document{}, fmt.Errorf("nodes[%d]: %w", i, err)
			}
			doc.Nodes[i] = id
		}
	}
	if r.Edges != nil {
		doc.Edges = make([]EdgeSpec, len(r.Edges))
		for i, e := range r.Edges {
			from, err := nodeID(e.From)
			if err != nil {
				return Document{}, fmt.Errorf("edges[%d].from: %w", i, err)
			}
			to, err := nodeID(e.To)
			if err != nil {
				return Document{}, fmt.Errorf("edges[%d].to: %w", i, err)
			}
			doc.Edges[i] = EdgeSpec{From: from, To: to}
		}
	}

	return doc, nil
}

// nodeID normalizes a decoded id. A missing value becomes "" and is left for
// Validate to report.
func nodeID(v any) (string, error) {
	switch id := v.(type) {
	case nil:
		return "", nil
	case string:
		return id, nil
	case int:
		return strconv.Itoa(id), nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	case uint64:
		return strconv.FormatUint(id, 10), nil
	case json.Number:
		n, err := strconv.ParseInt(id.String(), 10, 64)
		if err != nil {
			return "", fmt.Errorf("id %s is not an integer", id)
		}
		return strconv.FormatInt(n, 10), nil
	}

	return "", fmt.Errorf("id %v (%T) must be a string or an integer", v, v)
}

// Load reads path and decodes it according to its extension.
func Load(path string) (Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("graphfile: read %s: %w", path, err)
	}
	doc, err := Decode(data, f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Encode serializes doc in format f.
func Encode(doc Document, f Format) ([]byte, error) {
	return marshal(doc, f)
}

// EncodeReport serializes a centrality report in format f.
func EncodeReport(rep *centrality.Report, f Format) ([]byte, error) {
	if rep == nil {
		return nil, fmt.Errorf("%w: nil report", ErrEncode)
	}

	return marshal(rep, f)
}

func marshal(v interface{}, f Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch f {
	case FormatTOML:
		out, err = toml.Marshal(v)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
		out = buf.Bytes()
	case FormatJSON:
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrEncode, f, err)
	}

	return out, nil
}
