package centrality

import (
	"fmt"

	"github.com/katalvlaran/centra/core"
	"github.com/katalvlaran/centra/dfs"
)

// Report bundles the three metrics of one graph snapshot. A nil map marks a
// metric that was left out and is omitted when encoded.
type Report struct {
	Directed    bool                   `json:"directed" yaml:"directed" toml:"directed"`
	Components  int                    `json:"components" yaml:"components" toml:"components"`
	Degree      map[string]DegreeScore `json:"degree,omitempty" yaml:"degree,omitempty" toml:"degree,omitempty"`
	Closeness   Scores                 `json:"closeness,omitempty" yaml:"closeness,omitempty" toml:"closeness,omitempty"`
	Betweenness Scores                 `json:"betweenness,omitempty" yaml:"betweenness,omitempty" toml:"betweenness,omitempty"`
}

// Compute runs Degree, Closeness and Betweenness over g and counts its
// connected components, ignoring edge direction.
// Options are forwarded to Closeness and Betweenness.
func Compute(g *core.Graph, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	deg, err := Degree(g)
	if err != nil {
		return nil, err
	}
	cls, err := Closeness(g, opts...)
	if err != nil {
		return nil, err
	}
	btw, err := Betweenness(g, opts...)
	if err != nil {
		return nil, err
	}
	comps, err := dfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("%w: components: %v", ErrTraversal, err)
	}

	return &Report{
		Directed:    g.Directed(),
		Components:  len(comps),
		Degree:      deg,
		Closeness:   cls,
		Betweenness: btw,
	}, nil
}
