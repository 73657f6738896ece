// SPDX-License-Identifier: MIT

// Package builder generates synthetic pedestrian street networks on
// core.Graph for tests, benchmarks, examples and offline demos.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new graph, resolved options, constructors in order.
//     – Constructor: a deterministic graph mutation.
//   - Constructors:
//     – Grid(rows, cols):         rectangular block grid, row-major ids.
//     – Street(n):                one straight street of n nodes.
//     – Footpaths(rows, cols, p): random diagonal footways across grid blocks.
//   - Options:
//     – WithSeed / WithRand:      RNG for stochastic policies and Footpaths.
//     – WithOrigin / WithSpacing: geographic placement.
//     – WithIDBase:               first node id.
//     – WithClassFn / WithLitFn:  street classification and lighting policies.
//   - Policies:
//     – ConstantClass, ArterialEvery, RandomClass.
//     – ConstantLit, LitWithProbability.
//
// Guarantees:
//
//   - Node coordinates come from great-circle offsets of the origin and edge
//     lengths are haversine distances, matching what osmnet derives from
//     real map data.
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewNodes, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed).
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{
//	        builder.WithSeed(7),
//	        builder.WithClassFn(builder.ArterialEvery(4, core.ClassPrimary, core.ClassResidential)),
//	        builder.WithLitFn(builder.LitWithProbability(0.6)),
//	    },
//	    builder.Grid(10, 10),
//	    builder.Footpaths(10, 10, 0.2),
//	)
package builder
