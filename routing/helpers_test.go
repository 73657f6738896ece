// SPDX-License-Identifier: MIT

package routing_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/serenipy/core"
	"github.com/katalvlaran/serenipy/cost"
	"github.com/katalvlaran/serenipy/routing"
)

// Nodes of the detour network.
const (
	S core.NodeID = 1
	A core.NodeID = 2
	B core.NodeID = 3
	T core.NodeID = 4
)

// Coordinates (lon, lat) of the detour network; S and T ~150 m apart.
var (
	ptS = orb.Point{11.0000, 48.0000}
	ptA = orb.Point{11.0010, 48.0005}
	ptB = orb.Point{11.0010, 47.9990}
	ptT = orb.Point{11.0020, 48.0000}
)

// detour builds a short lit primary route S—A—T (2×100 m) and a long unlit
// residential detour S—B—T (2×300 m). Under the default cost model:
//
//	primary      100 × 8           =  800 per edge → 1600
//	residential  300 × 1.2         =  360 per edge →  720 by day
//	             300 × 1.2 × 5     = 1800 per edge → 3600 at night
func detour(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id, p := range map[core.NodeID]orb.Point{S: ptS, A: ptA, B: ptB, T: ptT} {
		require.NoError(t, g.AddNode(id, p.Lat(), p.Lon()))
	}
	for _, e := range []struct {
		u, v   core.NodeID
		length float64
		class  core.Classification
		lit    core.Lit
	}{
		{S, A, 100, core.ClassPrimary, core.LitYes},
		{A, T, 100, core.ClassPrimary, core.LitYes},
		{S, B, 300, core.ClassResidential, core.LitNo},
		{B, T, 300, core.ClassResidential, core.LitNo},
	} {
		_, err := g.AddEdge(e.u, e.v, e.length, e.class, e.lit)
		require.NoError(t, err)
	}

	return g
}

func newService(t testing.TB, opts ...routing.Option) *routing.Service {
	t.Helper()
	m, err := cost.NewModel(cost.DefaultConfig())
	require.NoError(t, err)
	s, err := routing.NewService(m, opts...)
	require.NoError(t, err)

	return s
}

func pt(p orb.Point) *orb.Point { return &p }

// fakeMaps serves a fresh detour graph per fetch and counts calls.
type fakeMaps struct {
	calls atomic.Int32
	err   error
	build func(testing.TB) *core.Graph
	t     testing.TB
}

func (f *fakeMaps) FetchNetwork(context.Context, routing.Footprint) (*core.Graph, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if f.build != nil {
		return f.build(f.t), nil
	}

	return detour(f.t), nil
}

// elevationTable answers from a per-point table and records batch sizes.
type elevationTable struct {
	mu      sync.Mutex
	heights map[orb.Point]float64
	batches []int
	err     error
}

func (e *elevationTable) Elevations(_ context.Context, points []orb.Point) ([]float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.batches = append(e.batches, len(points))
	if e.err != nil {
		return nil, e.err
	}
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = e.heights[p]
	}

	return out, nil
}

func (e *elevationTable) calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.batches)
}

var errUpstream = errors.New("upstream down")
