// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges/EdgeCount/Neighbors.
// Determinism:
//   - EdgeIDs are assigned 0,1,2,… in insertion order.
//   - Edges() and Neighbors() preserve insertion order.
// Concurrency:
//   - Mutations under muEdge write lock, reads under muEdge read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts a street segment between two existing nodes and returns its id.
//
// Implementation:
//   - Stage 1: Validate length (finite, ≥ 0).
//   - Stage 2: Under muNode read lock, check both endpoints exist.
//   - Stage 3: Under muEdge write lock, append the edge and link adjacency;
//     undirected edges are mirrored on the target node (self-loops once).
//
// Behavior highlights:
//   - Parallel edges are always accepted (multigraph).
//   - Nodes are never created implicitly.
//
// Errors:
//   - ErrInvalidAttribute: negative, NaN or infinite length.
//   - ErrUnknownNode: either endpoint absent.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, length float64, class Classification, lit Lit, opts ...EdgeOption) (EdgeID, error) {
	if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
		return 0, fmt.Errorf("AddEdge(%d→%d, length=%v): %w", from, to, length, ErrInvalidAttribute)
	}
	if class == "" {
		class = ClassUnknown
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[from]; !ok {
		return 0, fmt.Errorf("AddEdge(%d→%d): source %d: %w", from, to, from, ErrUnknownNode)
	}
	if _, ok := g.nodes[to]; !ok {
		return 0, fmt.Errorf("AddEdge(%d→%d): target %d: %w", from, to, to, ErrUnknownNode)
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	e := Edge{
		ID:       EdgeID(len(g.edges)),
		From:     from,
		To:       to,
		Length:   length,
		Class:    class,
		Lit:      lit,
		Directed: g.directed,
	}
	for _, opt := range opts {
		opt(&e)
	}
	// Options must not rewrite identity or endpoints.
	e.ID, e.From, e.To = EdgeID(len(g.edges)), from, to

	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], Incidence{Edge: e, To: to})
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Incidence{Edge: e, To: from})
	}

	return e.ID, nil
}

// Edge returns a copy of the edge with the given id.
//
// Errors:
//   - ErrUnknownEdge: id out of range.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, fmt.Errorf("edge %s: %w", id, ErrUnknownEdge)
	}

	return g.edges[id], nil
}

// Edges returns every edge in insertion order (index == EdgeID).
// The slice is a snapshot; callers may keep it.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// Neighbors returns the incidences leaving id: outgoing directed edges and
// every undirected edge touching id, in edge insertion order. Parallel edges
// appear once each; an undirected self-loop appears once.
//
// Errors:
//   - ErrUnknownNode: id absent.
//
// Complexity:
//   - Time O(deg(id)).
func (g *Graph) Neighbors(id NodeID) ([]Incidence, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrUnknownNode)
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	adj := g.adjacency[id]
	out := make([]Incidence, len(adj))
	copy(out, adj)

	return out, nil
}
