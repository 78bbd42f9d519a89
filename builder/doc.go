// Package builder provides deterministic, functional-options graph fixtures
// for tests, benchmarks and demos of the path algorithms.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new core.Graph + constructors in order.
//     – Apply(g, bopts, cons...):          constructors on an existing graph.
//   - Topologies (Constructor):
//     – Complete(n), Cycle(n), Path(n), Grid(rows, cols), RandomSparse(n, p).
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn ("0","1",…), SymbolIDFn ("A","B",…),
//     ExcelColumnIDFn ("A",…,"Z","AA",…), SymbolNumberIDFn(prefix).
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, IntUniformWeightFn.
//   - Extra cost metrics:
//     – WithAttrFn(key, fn) draws a named attribute per edge, read by
//     algorithms through their WithWeightKey option.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graph, down to
//     edge IDs and therefore neighbor order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (errors.Is) and never panic.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeight(1, 9)},
//		builder.RandomSparse(12, 0.3),
//	)
package builder
