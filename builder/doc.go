// Package builder assembles the small, well-known topologies used as sample
// data for centrality lessons and as fixtures in tests.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): create a core.Graph and apply
//     constructors in order.
//   - Constructors: Path, Star, Cycle, Complete, Wheel, Isolated.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), LetterIDFn
//     ("A",…,"Z","AA",…), PrefixIDFn(prefix) ("v0","v1",…).
//   - Options: WithIDScheme, WithLetterIDs, WithPrefixIDs, WithCenterID.
//
// Guarantees:
//
//   - Determinism: same constructors, options and order ⇒ identical graphs,
//     including edge IDs.
//   - Directed graphs get exactly one orientation per edge (lower index to
//     higher index, hub to rim), so in/out degrees stay meaningful.
//   - Constructors return sentinel errors and never panic; option
//     constructors panic on meaningless input (nil ID scheme, empty hub ID).
//
// Example:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithLetterIDs()},
//		builder.Path(4))
//	// g is A–B–C–D
package builder
