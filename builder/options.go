// SPDX-License-Identifier: MIT
// Package: centra/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.

package builder

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator idx -> string. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithLetterIDs names vertices A, B, …, Z, AA, AB, …
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}

// WithPrefixIDs names vertices prefix+index, e.g. "v0", "v1", …
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithCenterID overrides the hub ID used by Star and Wheel. Panics on "".
func WithCenterID(id string) BuilderOption {
	if id == "" {
		panic("builder: WithCenterID(\"\")")
	}
	return func(c *builderConfig) { c.centerID = id }
}
