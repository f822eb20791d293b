// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn     = DefaultIDFn ("0","1","2",...)
//   • centerID = CenterVertexID

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	centerID string
}

// newBuilderConfig applies options in order (last wins) on top of the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		centerID: CenterVertexID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
