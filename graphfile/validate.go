// SPDX-License-Identifier: MIT

package graphfile

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks doc for structural problems and returns all of them as a
// *multierror.Error, or nil. Each collected error wraps one of
// ErrEmptyNodeID, ErrDuplicateNode or ErrUnknownNode, so callers can test the
// aggregate with errors.Is.
//
// Self-loops and repeated edges are legal: they count towards degree.
func Validate(doc Document) error {
	var result *multierror.Error

	known := make(map[string]struct{}, len(doc.Nodes))
	for i, id := range doc.Nodes {
		if id == "" {
			result = multierror.Append(result, fmt.Errorf("nodes[%d]: %w", i, ErrEmptyNodeID))
			continue
		}
		if _, dup := known[id]; dup {
			result = multierror.Append(result, fmt.Errorf("nodes[%d]: %w: %q", i, ErrDuplicateNode, id))
			continue
		}
		known[id] = struct{}{}
	}

	for i, e := range doc.Edges {
		for _, end := range [2]struct{ side, id string }{{"from", e.From}, {"to", e.To}} {
			switch _, ok := known[end.id]; {
			case end.id == "":
				result = multierror.Append(result, fmt.Errorf("edges[%d].%s: %w", i, end.side, ErrEmptyNodeID))
			case !ok:
				result = multierror.Append(result, fmt.Errorf("edges[%d].%s: %w: %q", i, end.side, ErrUnknownNode, end.id))
			}
		}
	}

	return result.ErrorOrNil()
}

// Problems flattens a Validate error into its individual problems.
// A nil error yields nil; any other non-multierror error yields itself.
func Problems(err error) []error {
	if err == nil {
		return nil
	}
	if me, ok := err.(*multierror.Error); ok {
		return me.Errors
	}

	return []error{err}
}
