// SPDX-License-Identifier: MIT
// Package: serenipy/builder
//
// helpers.go - shared placement and emission helpers for constructors.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/katalvlaran/serenipy/core"
)

// Bearings in degrees for geo.PointAtBearingAndDistance.
const (
	bearingNorth = 0.0
	bearingEast  = 90.0
)

// place returns the point r blocks north and c blocks east of the origin.
func place(cfg builderConfig, r, c int) orb.Point {
	p := cfg.origin
	if r != 0 {
		p = geo.PointAtBearingAndDistance(p, bearingNorth, float64(r)*cfg.spacing)
	}
	if c != 0 {
		p = geo.PointAtBearingAndDistance(p, bearingEast, float64(c)*cfg.spacing)
	}

	return p
}

// cellID numbers cells row-major from cfg.idBase.
func cellID(cfg builderConfig, r, c, cols int) core.NodeID {
	return cfg.idBase + core.NodeID(r*cols+c)
}

// addCell inserts the node for cell (r,c).
func addCell(g *core.Graph, cfg builderConfig, method string, r, c, cols int) error {
	id := cellID(cfg, r, c, cols)
	p := place(cfg, r, c)
	if err := g.AddNode(id, p.Lat(), p.Lon()); err != nil {
		return constructErr(method, fmt.Sprintf("AddNode(%d)", id), err)
	}

	return nil
}

// addSegment connects u and v with a haversine-length edge classified and
// lit by the configured policies.
func addSegment(g *core.Graph, cfg builderConfig, method string, u, v core.NodeID, s Segment, class core.Classification) error {
	nu, err := g.Node(u)
	if err != nil {
		return constructErr(method, fmt.Sprintf("Node(%d)", u), err)
	}
	nv, err := g.Node(v)
	if err != nil {
		return constructErr(method, fmt.Sprintf("Node(%d)", v), err)
	}
	length := geo.DistanceHaversine(nu.Point(), nv.Point())
	if _, err = g.AddEdge(u, v, length, class, cfg.litFn(s, cfg.rng)); err != nil {
		return constructErr(method, fmt.Sprintf("AddEdge(%d→%d)", u, v), err)
	}

	return nil
}
