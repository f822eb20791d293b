// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// api.go - the BuildGraph orchestrator and the Constructor contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/centra/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first, return sentinel
// errors (never panic) and emit vertices and edges in a documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with graph options gopts, resolves the
// builder configuration from bopts and applies all constructors in order.
// The first constructor error is wrapped as "BuildGraph: %w" and returned;
// no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to add an isolated
// cluster next to a previously built topology.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// ByName resolves a topology name (as typed on a command line) to its
// constructor for n vertices.
//
// Errors: ErrUnknownTopology.
func ByName(name string, n int) (Constructor, error) {
	switch name {
	case MethodPath:
		return Path(n), nil
	case MethodStar:
		return Star(n), nil
	case MethodCycle:
		return Cycle(n), nil
	case MethodComplete:
		return Complete(n), nil
	case MethodWheel:
		return Wheel(n), nil
	case MethodIsolated:
		return Isolated(n), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
}

// Topologies lists the names accepted by ByName.
func Topologies() []string {
	return []string{MethodPath, MethodStar, MethodCycle, MethodComplete, MethodWheel, MethodIsolated}
}
