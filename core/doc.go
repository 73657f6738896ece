// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory street network used by the
// router: intersections (nodes) with coordinates and optional elevation, and
// street segments (edges) with length, road classification and lighting tags.
//
// The Graph G = (V,E) is a multigraph:
//
//   - Parallel edges between the same pair of nodes are always allowed, since
//     several physical ways can join two intersections.
//   - Self-loops are allowed (collapsed geometry, roundabout stubs).
//   - Edges are undirected by default (pedestrians walk both ways); use
//     WithDirected(true) or the per-edge WithEdgeDirected override for
//     one-way footpaths.
//
// Identity:
//
//	NodeID  – opaque int64 (an OSM node id in practice), stable within a Graph.
//	EdgeID  – dense int assigned in insertion order ("e0", "e1", … in logs).
//
// Determinism:
//
//   - Nodes() returns ids ascending.
//   - Edges() and Neighbors() return edges in insertion order.
//   - NearestNode() breaks distance ties by the lowest node id.
//
// Concurrency:
//
//	muNode guards the node catalog and the nearest-node index; muEdge guards
//	the edge catalog and adjacency. Lock order is always muNode -> muEdge.
//	A populated Graph is meant to be shared read-only between requests; the
//	only mutation expected after population is SetElevation.
//
// Costs are deliberately NOT stored on edges. A routing request derives its
// own cost table from the immutable base attributes (see package cost), so
// concurrent requests with different preferences never see each other's
// values.
//
// Errors:
//
//	ErrDuplicateNode    – AddNode with an id already present.
//	ErrUnknownNode      – an operation referenced a node that does not exist.
//	ErrUnknownEdge      – an operation referenced an edge that does not exist.
//	ErrInvalidAttribute – out-of-range coordinate, negative/NaN length or elevation.
//	ErrEmptyGraph       – NearestNode on a graph without nodes.
package core
