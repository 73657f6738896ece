// SPDX-License-Identifier: MIT

// Package cost turns street attributes and per-request preferences into a
// scalar traversal cost.
//
// For an edge of length L the cost is
//
//	cost = L × noise × grade
//
// where
//
//	noise = weight(class)                    (Config.NoiseWeights, else Config.DefaultWeight)
//	      × ParkMultiplier   if class ∈ Config.GreenClasses
//	      × NightPenalty     if NightMode and the edge is unlit (or unknown, see PenalizeUnknownLit)
//	grade = 1 + g × SlopeCoefficient   if AvoidHills, both elevations known, L > 0
//	                                   and g = |Δelevation| / L > SlopeThreshold
//	      = 1                          otherwise
//
// A zero-length edge always costs 0. Missing elevation never fails; the
// grade factor simply stays 1.
//
// Costs are never written back into the graph. Model.Annotate returns an
// Annotation owned by the caller, indexed by core.EdgeID, so that every
// routing request derives fresh values from the immutable base attributes.
//
// Example:
//
//	m, _ := cost.NewModel(cost.DefaultConfig())
//	ann, _ := m.Annotate(g, cost.Preferences{NightMode: true})
//	path, _ := dijkstra.ShortestPath(g, from, to, dijkstra.WithWeight(dijkstra.ByCost(ann)))
package cost
