// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// constants.go - topology names, the default hub ID and per-topology minimums.

package builder

// Topology names; also used to prefix errors with the constructor name.
const (
	MethodPath     = "path"
	MethodStar     = "star"
	MethodCycle    = "cycle"
	MethodComplete = "complete"
	MethodWheel    = "wheel"
	MethodIsolated = "isolated"
)

// CenterVertexID is the default hub identifier for Star and Wheel.
const CenterVertexID = "Center"

// Minimum vertex counts.
const (
	// MinPathNodes: a path needs at least one edge.
	MinPathNodes = 2
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinCycleNodes: fewer than 3 vertices cannot form a simple ring.
	MinCycleNodes = 3
	// MinCompleteNodes: K_1 is a single vertex and still valid.
	MinCompleteNodes = 1
	// MinWheelNodes: a ring of at least 3 plus the hub.
	MinWheelNodes = 4
	// MinIsolatedNodes: an empty graph is valid.
	MinIsolatedNodes = 0
)
