// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a construction failure not caused by a
// parameter, e.g. a nil constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates ByName received a name it does not know.
var ErrUnknownTopology = errors.New("builder: unknown topology")
