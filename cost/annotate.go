// SPDX-License-Identifier: MIT

package cost

import (
	"errors"
	"math"

	"github.com/katalvlaran/serenipy/core"
)

// ErrNilGraph indicates Annotate was called without a graph.
var ErrNilGraph = errors.New("cost: graph is nil")

// Annotation is the cost table of one routing request: the cost of every
// edge of a graph under one set of preferences, indexed by core.EdgeID.
//
// An Annotation is private to the request that built it and is never written
// back to the graph, so requests sharing a cached graph cannot corrupt each
// other.
type Annotation struct {
	prefs Preferences
	costs []float64
}

// Annotate computes a fresh cost for every edge of g under p.
//
// Implementation:
//   - Stage 1: Snapshot the edge catalog (insertion order).
//   - Stage 2: When hills are avoided, snapshot node elevations in one read,
//     so a concurrent enrichment is seen entirely or not at all.
//   - Stage 3: Evaluate Model.Cost per edge into a new table.
//
// Determinism:
//   - Identical graph and preferences give bit-identical tables; nothing is accumulated.
//
// Complexity:
//   - Time O(E + V), Space O(E + V).
func (m *Model) Annotate(g *core.Graph, p Preferences) (*Annotation, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	edges := g.Edges()
	a := &Annotation{prefs: p, costs: make([]float64, len(edges))}

	var heights map[core.NodeID]float64
	if p.AvoidHills {
		heights = g.Elevations()
	}
	at := func(id core.NodeID) Elevation {
		h, ok := heights[id]
		return Elevation{Meters: h, Known: ok}
	}

	for _, e := range edges {
		var from, to Elevation
		if p.AvoidHills {
			from, to = at(e.From), at(e.To)
		}
		a.costs[e.ID] = m.Cost(e, from, to, p)
	}

	return a, nil
}

// Cost returns the cost of edge id. Edges added to the graph after the
// annotation was built are reported as +Inf (not traversable under it).
func (a *Annotation) Cost(id core.EdgeID) float64 {
	if id < 0 || int(id) >= len(a.costs) {
		return math.Inf(1)
	}

	return a.costs[id]
}

// Len returns the number of annotated edges.
func (a *Annotation) Len() int { return len(a.costs) }

// Preferences returns the preferences the annotation was built with.
func (a *Annotation) Preferences() Preferences { return a.prefs }

// Costs returns a copy of the full table.
func (a *Annotation) Costs() []float64 {
	out := make([]float64, len(a.costs))
	copy(out, a.costs)

	return out
}
