// SPDX-License-Identifier: MIT
//
// File: static.go
// Role: routing.MapProvider serving footprints from one pre-loaded graph.

package osmnet

import (
	"context"

	"github.com/katalvlaran/serenipy/bfs"
	"github.com/katalvlaran/serenipy/core"
	"github.com/katalvlaran/serenipy/routing"
)

// Static cuts footprints out of a fixed network, typically one read with
// LoadFile. The source graph is only read.
type Static struct {
	graph *core.Graph
}

// NewStatic wraps g.
func NewStatic(g *core.Graph) *Static {
	return &Static{graph: g}
}

// FetchNetwork implements routing.MapProvider: the nodes inside fp, the edges
// between them, pruned to the largest connected component. A footprint that
// misses the network yields an empty graph.
func (s *Static) FetchNetwork(ctx context.Context, fp routing.Footprint) (*core.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.graph == nil {
		return core.NewGraph(), nil
	}

	inside := make(map[core.NodeID]bool)
	for _, id := range s.graph.Nodes() {
		n, err := s.graph.Node(id)
		if err != nil {
			return nil, err
		}
		if fp.Contains(n.Point()) {
			inside[id] = true
		}
	}
	cut := core.InducedSubgraph(s.graph, inside)

	keep, err := bfs.Largest(cut)
	if err != nil {
		return nil, err
	}

	return core.InducedSubgraph(cut, keep), nil
}
