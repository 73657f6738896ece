// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/serenipy/core"
)

// Components partitions g into weakly connected components: one-way edges
// join their endpoints like two-way ones. Each component lists its node ids
// ascending; components are ordered by size descending, ties by smallest id.
//
// WithContext and WithFilterEdge apply to every sweep; WithMaxDepth is
// rejected since it would split components.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph, opts ...Option) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: max depth splits components", ErrInvalidOption)
	}
	o.IgnoreDirection = true

	s := newSearch(g, o)
	var comps [][]core.NodeID
	for _, id := range g.Nodes() {
		if s.reached[id] {
			continue
		}
		res, err := s.run(id)
		if err != nil {
			return nil, err
		}
		comps = append(comps, sortedCopy(res.Order))
	}

	// Seeds ascend, so a stable sort breaks size ties by smallest id.
	sort.SliceStable(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })

	return comps, nil
}

// Largest returns the node set of the largest weakly connected component,
// empty for an empty graph.
func Largest(g *core.Graph) (map[core.NodeID]bool, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, err
	}
	keep := make(map[core.NodeID]bool)
	if len(comps) > 0 {
		for _, id := range comps[0] {
			keep[id] = true
		}
	}

	return keep, nil
}
