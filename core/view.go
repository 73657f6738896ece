// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves node ids and the relative insertion order of kept edges.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph holding only the nodes in keep and the
// edges whose endpoints are both kept. Node coordinates and elevations are
// copied; edges are re-numbered densely in their original order so that the
// result keeps the EdgeID == position invariant. The input graph is not mutated.
//
// Complexity: O(V log V + E).
func InducedSubgraph(g *Graph, keep map[NodeID]bool) *Graph {
	out := NewGraph(WithDirected(g.Directed()))

	g.muNode.RLock()
	for id, n := range g.nodes {
		if !keep[id] {
			continue
		}
		cp := *n
		out.nodes[id] = &cp
		out.index.Set(latKey{lat: cp.Lat, id: id, lon: cp.Lon})
		out.adjacency[id] = nil
	}
	g.muNode.RUnlock()

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	for _, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		e.ID = EdgeID(len(out.edges))
		out.edges = append(out.edges, e)
		out.adjacency[e.From] = append(out.adjacency[e.From], Incidence{Edge: e, To: e.To})
		if !e.Directed && e.From != e.To {
			out.adjacency[e.To] = append(out.adjacency[e.To], Incidence{Edge: e, To: e.From})
		}
	}

	return out
}
