// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/serenipy/core"
)

// BFS explores g from start level by level.
//
// Implementation:
//   - Stage 1: Validate the graph, the options and the start node.
//   - Stage 2: Expand one frontier at a time; within a frontier nodes keep
//     their discovery order and incidences are scanned in edge insertion
//     order, so Order is deterministic.
//   - Stage 3: Stop at MaxDepth, on cancellation or on an OnVisit error.
//
// On error the partial Result built so far is returned alongside it.
//
// Complexity: O(V + E) time, O(V) memory (O(V + E) with IgnoreDirection).
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStart, start)
	}

	s := newSearch(g, o)

	return s.run(start)
}

// search carries the state shared by every sweep over one graph.
type search struct {
	g       *core.Graph
	o       Options
	back    map[core.NodeID][]core.Incidence // reversed one-way edges
	reached map[core.NodeID]bool
}

func newSearch(g *core.Graph, o Options) *search {
	s := &search{g: g, o: o, reached: make(map[core.NodeID]bool, g.NodeCount())}
	if o.IgnoreDirection {
		s.back = make(map[core.NodeID][]core.Incidence)
		for _, e := range g.Edges() {
			if e.Directed && e.From != e.To {
				s.back[e.To] = append(s.back[e.To], core.Incidence{Edge: e, To: e.From})
			}
		}
	}

	return s
}

// run performs one sweep from start, skipping nodes reached by earlier sweeps.
func (s *search) run(start core.NodeID) (*Result, error) {
	res := &Result{
		Start:  start,
		Depth:  map[core.NodeID]int{start: 0},
		Parent: make(map[core.NodeID]core.NodeID),
	}
	s.reached[start] = true

	frontier := []core.NodeID{start}
	for depth := 0; len(frontier) > 0; depth++ {
		var next []core.NodeID
		for _, u := range frontier {
			if err := s.o.Ctx.Err(); err != nil {
				return res, err
			}
			res.Order = append(res.Order, u)
			if s.o.OnVisit != nil {
				if err := s.o.OnVisit(u, depth); err != nil {
					return res, fmt.Errorf("bfs: visit %d: %w", u, err)
				}
			}
			if s.o.MaxDepth > 0 && depth == s.o.MaxDepth {
				continue
			}

			incs, err := s.g.Neighbors(u)
			if err != nil {
				return res, fmt.Errorf("bfs: neighbors of %d: %w", u, err)
			}
			incs = append(incs, s.back[u]...)
			for _, inc := range incs {
				if s.reached[inc.To] || (s.o.Filter != nil && !s.o.Filter(u, inc)) {
					continue
				}
				s.reached[inc.To] = true
				res.Depth[inc.To] = depth + 1
				res.Parent[inc.To] = u
				next = append(next, inc.To)
			}
		}
		frontier = next
	}

	return res, nil
}
