// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns ids sorted ascending.
//
// Concurrency:
//   - Node catalog and latitude index protected by muNode.
//   - Adjacency bootstrap under muEdge (lock order muNode -> muEdge).

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddNode inserts a node with the given coordinates.
//
// Implementation:
//   - Stage 1: Validate coordinates (finite, lat ∈ [-90,90], lon ∈ [-180,180]).
//   - Stage 2: Under muNode write lock, reject duplicates, register the node and index it by latitude.
//   - Stage 3: Under muEdge write lock, bootstrap an empty adjacency bucket.
//
// Errors:
//   - ErrInvalidAttribute: coordinate out of range or NaN.
//   - ErrDuplicateNode: id already present.
//
// Complexity:
//   - Time O(log V), Space O(1) amortized.
func (g *Graph) AddNode(id NodeID, lat, lon float64) error {
	if err := validateCoordinate(lat, lon); err != nil {
		return fmt.Errorf("AddNode(%d): %w", id, err)
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("AddNode(%d): %w", id, ErrDuplicateNode)
	}
	g.nodes[id] = &Node{ID: id, Lat: lat, Lon: lon}
	g.index.Set(latKey{lat: lat, id: id, lon: lon})

	g.muEdge.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
	g.muEdge.Unlock()

	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id NodeID) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given id.
//
// Errors:
//   - ErrUnknownNode: id absent.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}

	return *n, nil
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.muNode.RLock()
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.muNode.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// SetElevation records the elevation of a node in metres, overwriting any
// previous value. Calling it twice with the same value is a no-op.
//
// Errors:
//   - ErrUnknownNode: id absent.
//   - ErrInvalidAttribute: NaN or infinite elevation.
func (g *Graph) SetElevation(id NodeID, meters float64) error {
	if math.IsNaN(meters) || math.IsInf(meters, 0) {
		return fmt.Errorf("SetElevation(%d, %v): %w", id, meters, ErrInvalidAttribute)
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("SetElevation(%d): %w", id, ErrUnknownNode)
	}
	n.elevation = meters
	n.hasElevation = true

	return nil
}

// SetElevations applies a batch of elevations atomically: every id and value
// is validated first, then all are written under one lock, so readers see
// either none or all of the batch.
//
// Errors:
//   - ErrUnknownNode: some id absent (nothing written).
//   - ErrInvalidAttribute: some value NaN or infinite (nothing written).
func (g *Graph) SetElevations(meters map[NodeID]float64) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	for id, m := range meters {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return fmt.Errorf("SetElevations(%d, %v): %w", id, m, ErrInvalidAttribute)
		}
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("SetElevations(%d): %w", id, ErrUnknownNode)
		}
	}
	for id, m := range meters {
		n := g.nodes[id]
		n.elevation = m
		n.hasElevation = true
	}

	return nil
}

// ElevationCoverage returns how many nodes carry an elevation value.
func (g *Graph) ElevationCoverage() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	var n int
	for _, node := range g.nodes {
		if node.hasElevation {
			n++
		}
	}

	return n
}

// Elevations returns a snapshot of every known node elevation, taken under
// one read lock: a concurrent SetElevations batch is in it whole or not at all.
func (g *Graph) Elevations() map[NodeID]float64 {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make(map[NodeID]float64)
	for id, node := range g.nodes {
		if node.hasElevation {
			out[id] = node.elevation
		}
	}

	return out
}

func validateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("coordinate (%v, %v): %w", lat, lon, ErrInvalidAttribute)
	}

	return nil
}
