// SPDX-License-Identifier: MIT
//
// File: nearest.go
// Role: Nearest-node lookup over the latitude-ordered index.
// Determinism:
//   - Ties on distance resolve to the lowest NodeID.

package core

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// NearestNode returns the node minimising great-circle (haversine) distance
// to (lat, lon).
//
// Implementation:
//   - Stage 1: Validate the query coordinate.
//   - Stage 2: Walk the latitude index upwards and downwards from the query
//     latitude. The meridional arc |Δlat| is a lower bound of the distance to
//     any node on that latitude, so each walk stops once the bound exceeds the
//     best distance found.
//   - Stage 3: Equal distances keep the lowest node id.
//
// Errors:
//   - ErrEmptyGraph: no nodes.
//   - ErrInvalidAttribute: query coordinate out of range.
//
// Complexity:
//   - Time O(log V + k) where k is the number of nodes inside the latitude
//     band that cannot be pruned; O(V) worst case.
func (g *Graph) NearestNode(lat, lon float64) (NodeID, error) {
	if err := validateCoordinate(lat, lon); err != nil {
		return 0, fmt.Errorf("NearestNode: %w", err)
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()

	if len(g.nodes) == 0 {
		return 0, ErrEmptyGraph
	}

	q := orb.Point{lon, lat}
	bestID, bestDist := NodeID(0), math.Inf(1)
	visit := func(k latKey) bool {
		bound := geo.DistanceHaversine(orb.Point{lon, k.lat}, q)
		if bound > bestDist {
			return false
		}
		d := geo.DistanceHaversine(orb.Point{k.lon, k.lat}, q)
		if d < bestDist || (d == bestDist && k.id < bestID) {
			bestID, bestDist = k.id, d
		}

		return true
	}

	pivot := latKey{lat: lat, id: math.MinInt64}
	g.index.Ascend(pivot, visit)
	g.index.Descend(pivot, visit)

	return bestID, nil
}
