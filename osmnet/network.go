// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: OSM XML decoding and street graph construction.

package osmnet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"github.com/katalvlaran/serenipy/bfs"
	"github.com/katalvlaran/serenipy/core"
)

// ErrDecode indicates malformed OSM input.
var ErrDecode = errors.New("osmnet: cannot decode osm data")

// Stats summarises one Decode run.
type Stats struct {
	Ways       int // walkable ways seen
	Skipped    int // ways dropped by the walk filter
	Segments   int // edges created before component pruning
	Nodes      int // nodes in the returned graph
	Edges      int // edges in the returned graph
	Components int // connected components before pruning
}

// Decode reads OSM XML from r and returns the largest connected walkable
// network it contains.
//
// Implementation:
//   - Stage 1: Scan every node and way; node order in the stream is irrelevant.
//   - Stage 2: Build the graph from walkable ways (see build).
//   - Stage 3: Keep the largest weakly connected component.
//
// Errors:
//   - ErrDecode: the scanner failed; ctx errors surface wrapped the same way.
func Decode(ctx context.Context, r io.Reader) (*core.Graph, Stats, error) {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	nodes := make(map[osm.NodeID]orb.Point)
	var ways []*osm.Way
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes[o.ID] = orb.Point{o.Lon, o.Lat}
		case *osm.Way:
			ways = append(ways, o)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	g, stats, err := build(nodes, ways)
	if err != nil {
		return nil, Stats{}, err
	}

	return largest(g, stats)
}

// LoadFile decodes the .osm file at path.
func LoadFile(ctx context.Context, path string) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("osmnet: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(ctx, f)
}

// build adds one undirected edge per consecutive node pair of every walkable
// way, in stream order. Pairs referencing a node without coordinates and
// zero-length repeats of the same node are skipped.
func build(nodes map[osm.NodeID]orb.Point, ways []*osm.Way) (*core.Graph, Stats, error) {
	g := core.NewGraph()
	var stats Stats

	ensure := func(id osm.NodeID) error {
		nid := core.NodeID(id)
		if g.HasNode(nid) {
			return nil
		}
		p := nodes[id]
		return g.AddNode(nid, p.Lat(), p.Lon())
	}

	for _, w := range ways {
		if !Walkable(w.Tags) {
			stats.Skipped++
			continue
		}
		stats.Ways++
		class := core.ParseClassification(w.Tags.Find("highway"))
		lit := core.ParseLit(w.Tags.Find("lit"))

		for i := 1; i < len(w.Nodes); i++ {
			a, b := w.Nodes[i-1].ID, w.Nodes[i].ID
			pa, okA := nodes[a]
			pb, okB := nodes[b]
			if !okA || !okB || a == b {
				continue
			}
			if err := ensure(a); err != nil {
				return nil, Stats{}, fmt.Errorf("osmnet: way %d: %w", w.ID, err)
			}
			if err := ensure(b); err != nil {
				return nil, Stats{}, fmt.Errorf("osmnet: way %d: %w", w.ID, err)
			}
			length := geo.DistanceHaversine(pa, pb)
			if _, err := g.AddEdge(core.NodeID(a), core.NodeID(b), length, class, lit, core.WithEdgeDirected(false)); err != nil {
				return nil, Stats{}, fmt.Errorf("osmnet: way %d: %w", w.ID, err)
			}
			stats.Segments++
		}
	}

	return g, stats, nil
}

// largest prunes g to its largest weakly connected component.
func largest(g *core.Graph, stats Stats) (*core.Graph, Stats, error) {
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, Stats{}, err
	}
	stats.Components = len(comps)
	if len(comps) > 1 {
		keep := make(map[core.NodeID]bool, len(comps[0]))
		for _, id := range comps[0] {
			keep[id] = true
		}
		g = core.InducedSubgraph(g, keep)
	}
	stats.Nodes = g.NodeCount()
	stats.Edges = g.EdgeCount()

	return g, stats, nil
}
