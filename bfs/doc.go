// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links and visit order, plus weakly connected components.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Result holds Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the tree); PathTo rebuilds a hop path.
//   - Components partitions a graph into weakly connected components;
//     Largest returns the biggest one as a keep-set for core.InducedSubgraph.
//
// Why
//
//   - Street extracts cut at a bounding box leave islands: driveways and
//     courtyards whose only link crossed the boundary. Routing from such an
//     island never reaches anything, so map loading keeps only Largest.
//
// Determinism
//
//	BFS expands one frontier at a time. core.Graph.Neighbors returns
//	incidences in edge insertion order and discoveries keep that order, so
//	the visit sequence is reproducible.
//	Components sweeps start nodes in ascending id order.
//
// Directions
//
//	Directed (one-way) edges are followed From→To only unless
//	WithIgnoreDirection is set; Components always ignores direction.
//
// Complexity (V = nodes, E = edges)
//
//   - BFS:        O(V + E) time, O(V) memory (O(V + E) with IgnoreDirection).
//   - Components: O(V log V + E).
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per visited node.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 means no limit.
//   - WithFilterEdge(fn):     skip incidences for which fn returns false.
//   - WithOnVisit(fn):        hook during visit; returning an error aborts.
//   - WithIgnoreDirection():  walk one-way edges both ways.
//
// Errors
//
//   - ErrNilGraph       if the graph pointer is nil.
//   - ErrUnknownStart   if the start node does not exist.
//   - ErrInvalidOption  for negative MaxDepth, or MaxDepth with Components.
//   - ErrNotReached     from Result.PathTo outside the search.
//   - ctx.Err() on cancellation; wrapped OnVisit and core.Neighbors errors.
package bfs
