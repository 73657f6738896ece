// SPDX-License-Identifier: MIT

// Package dijkstra is the route engine: a single-pair Dijkstra shortest-path
// search over a core.Graph with a selectable edge weight.
//
// Overview:
//
//   - ShortestPath returns the minimum-weight path from one node to another
//     as the ordered node and edge sequence plus its total weight.
//   - The weight is chosen per call: ByLength() for the geometrically
//     shortest route, ByCost(annotation) for the quiet/safe/flat route, or
//     any pure WeightFunc.
//   - Weights are evaluated once per edge before the search starts, so a
//     negative or NaN weight fails fast with ErrNegativeWeight and never
//     corrupts a partial search.
//
// Determinism:
//
//   - The heap is ordered by (distance, node id).
//   - Incidences are relaxed in edge insertion order, and only on strict
//     improvement, so among parallel edges the lightest (first inserted on a
//     tie) is used.
//   - Equal-weight alternatives therefore resolve to the same path on every
//     run over the same graph.
//
// Options:
//
//	WithWeight(fn)        – select the weight function (default ByLength()).
//	WithMaxDistance(max)  – do not settle nodes farther than max; a farther
//	                        destination is reported as ErrNoPath.
//
// Errors (sentinel):
//
//	ErrNilGraph        – g is nil.
//	core.ErrUnknownNode – origin or destination absent (wrapped).
//	ErrNoPath          – destination unreachable.
//	ErrNegativeWeight  – some edge weighs < 0 or NaN.
//
// Complexity:
//
//	Time  O(E + (V + E) log V) with lazy decrease-key; the search stops as
//	soon as the destination is settled.
//	Space O(V + E).
//
// Thread safety:
//
//	ShortestPath only reads the graph and keeps all state on its own stack,
//	so concurrent calls on one shared graph are safe.
package dijkstra
