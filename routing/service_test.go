// SPDX-License-Identifier: MIT

package routing_test

import (
	"context"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/serenipy/core"
	"github.com/katalvlaran/serenipy/cost"
	"github.com/katalvlaran/serenipy/dijkstra"
	"github.com/katalvlaran/serenipy/routing"
)

const eps = 1e-9

func TestNewService_Validation(t *testing.T) {
	_, err := routing.NewService(nil)
	require.ErrorIs(t, err, routing.ErrInvalidConfig)

	m, err := cost.NewModel(cost.DefaultConfig())
	require.NoError(t, err)

	cfg := routing.DefaultConfig()
	cfg.ElevationBatchSize = 0
	_, err = routing.NewService(m, routing.WithConfig(cfg))
	require.ErrorIs(t, err, routing.ErrInvalidConfig)

	cfg = routing.DefaultConfig()
	cfg.MaxTripMeters = -1
	_, err = routing.NewService(m, routing.WithConfig(cfg))
	require.ErrorIs(t, err, routing.ErrInvalidConfig)

	s, err := routing.NewService(m, routing.WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, routing.DefaultConfig(), s.Config())
	assert.Same(t, m, s.Model())
}

// ------------------------------------------------------------------------
// ComputeRoutes
// ------------------------------------------------------------------------

func TestComputeRoutes_DayPrefersQuietDetour(t *testing.T) {
	g := detour(t)
	s := newService(t)

	res, err := s.ComputeRoutes(g, ptS, ptT, cost.Preferences{})
	require.NoError(t, err)

	assert.Equal(t, S, res.StartNode)
	assert.Equal(t, T, res.EndNode)

	assert.Equal(t, []core.NodeID{S, A, T}, res.Fast.Path.Nodes)
	assert.Equal(t, 200.0, res.Fast.LengthMeters)
	assert.InDelta(t, 1600, res.Fast.Cost, eps)
	assert.Equal(t, []orb.Point{ptS, ptA, ptT}, res.Fast.Coordinates)

	assert.Equal(t, []core.NodeID{S, B, T}, res.Optimized.Path.Nodes)
	assert.Equal(t, 600.0, res.Optimized.LengthMeters)
	assert.InDelta(t, 720, res.Optimized.Cost, eps)
	assert.Equal(t, []orb.Point{ptS, ptB, ptT}, res.Optimized.Coordinates)

	assert.LessOrEqual(t, res.Fast.LengthMeters, res.Optimized.LengthMeters)
	assert.LessOrEqual(t, res.Optimized.Cost, res.Fast.Cost)
	assert.Empty(t, res.Warnings)
}

func TestComputeRoutes_NightAvoidsUnlitDetour(t *testing.T) {
	g := detour(t)
	s := newService(t)

	res, err := s.ComputeRoutes(g, ptS, ptT, cost.Preferences{NightMode: true})
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{S, A, T}, res.Optimized.Path.Nodes)
	assert.InDelta(t, 1600, res.Optimized.Cost, eps)
	// Same walk; Path.Weight differs since fast is weighted by length.
	assert.Equal(t, res.Fast.Path.Nodes, res.Optimized.Path.Nodes)
	assert.Equal(t, res.Fast.Path.Edges, res.Optimized.Path.Edges)
	assert.Equal(t, res.Fast.LengthMeters, res.Optimized.LengthMeters)
	assert.InDelta(t, 200, res.Fast.Path.Weight, eps)
	assert.InDelta(t, 1600, res.Optimized.Path.Weight, eps)
	assert.True(t, res.Preferences.NightMode)
}

// Corners of the park square.
const (
	sqSW core.NodeID = 1
	sqNW core.NodeID = 2
	sqNE core.NodeID = 3
	sqSE core.NodeID = 4
)

// parkSquare is a 100 m block walked NW → SE: unlit footways along the top
// and right, lit primary roads along the left and bottom.
//
//	footway  100 × 0.5 × 0.4        =  20 per edge →   40 by day
//	         100 × 0.5 × 0.4 × p    →  2 × 20p at night
//	primary  100 × 8                = 800 per edge → 1600 always
//
// The walks cost the same at p = 40.
func parkSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id, ll := range map[core.NodeID][2]float64{
		sqSW: {48.0000, 11.0000},
		sqNW: {48.0009, 11.0000},
		sqNE: {48.0009, 11.0013},
		sqSE: {48.0000, 11.0013},
	} {
		require.NoError(t, g.AddNode(id, ll[0], ll[1]))
	}
	for _, e := range []struct {
		u, v  core.NodeID
		class core.Classification
		lit   core.Lit
	}{
		{sqNW, sqNE, core.ClassFootway, core.LitNo},
		{sqNE, sqSE, core.ClassFootway, core.LitNo},
		{sqNW, sqSW, core.ClassPrimary, core.LitYes},
		{sqSW, sqSE, core.ClassPrimary, core.LitYes},
	} {
		_, err := g.AddEdge(e.u, e.v, 100, e.class, e.lit)
		require.NoError(t, err)
	}

	return g
}

func TestComputeRoutes_ParkSquareNightCrossover(t *testing.T) {
	g := parkSquare(t)
	nw, se := orb.Point{11.0000, 48.0009}, orb.Point{11.0013, 48.0000}
	footways := []core.NodeID{sqNW, sqNE, sqSE}
	primaries := []core.NodeID{sqNW, sqSW, sqSE}

	cases := []struct {
		name    string
		penalty float64
		night   bool
		want    []core.NodeID
		cost    float64
	}{
		{"day", cost.DefaultNightPenalty, false, footways, 40},
		{"night default penalty", cost.DefaultNightPenalty, true, footways, 200},
		// Equal totals: the lower corner id is settled first and keeps SE.
		{"night tie", 40, true, primaries, 1600},
		{"night past crossover", 41, true, primaries, 1600},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := cost.DefaultConfig()
			cfg.NightPenalty = tc.penalty
			m, err := cost.NewModel(cfg)
			require.NoError(t, err)
			s, err := routing.NewService(m)
			require.NoError(t, err)

			res, err := s.ComputeRoutes(g, nw, se, cost.Preferences{NightMode: tc.night})
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Optimized.Path.Nodes)
			assert.InDelta(t, tc.cost, res.Optimized.Cost, 1e-6)
			assert.InDelta(t, 200, res.Optimized.LengthMeters, 1e-9)
		})
	}

	// Past the crossover the footway walk is strictly dearer.
	cfg := cost.DefaultConfig()
	cfg.NightPenalty = 41
	m, err := cost.NewModel(cfg)
	require.NoError(t, err)
	ann, err := m.Annotate(g, cost.Preferences{NightMode: true})
	require.NoError(t, err)
	assert.InDelta(t, 2*20*41, ann.Cost(0)+ann.Cost(1), 1e-6)
	assert.InDelta(t, 1600, ann.Cost(2)+ann.Cost(3), 1e-6)
}

func TestComputeRoutes_AvoidHillsAvoidsSteepDetour(t *testing.T) {
	g := detour(t)
	// B sits 60 m above S and T: grade 0.2 on both residential edges,
	// factor 1 + 0.2×10 = 3 → 2 × 360 × 3 = 2160 > 1600.
	require.NoError(t, g.SetElevations(map[core.NodeID]float64{S: 0, A: 0, B: 60, T: 0}))
	s := newService(t)

	flat, err := s.ComputeRoutes(g, ptS, ptT, cost.Preferences{})
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{S, B, T}, flat.Optimized.Path.Nodes, "slope ignored without avoid_hills")

	hilly, err := s.ComputeRoutes(g, ptS, ptT, cost.Preferences{AvoidHills: true})
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{S, A, T}, hilly.Optimized.Path.Nodes)
	assert.InDelta(t, 1600, hilly.Optimized.Cost, eps)
}

func TestComputeRoutes_SnapsToNearestNode(t *testing.T) {
	g := detour(t)
	s := newService(t)

	nearS := orb.Point{ptS.Lon() - 0.0001, ptS.Lat() + 0.0001}
	nearT := orb.Point{ptT.Lon() + 0.0002, ptT.Lat()}
	res, err := s.ComputeRoutes(g, nearS, nearT, cost.Preferences{})
	require.NoError(t, err)
	assert.Equal(t, S, res.StartNode)
	assert.Equal(t, T, res.EndNode)
	assert.Equal(t, nearS, res.Start, "requested point is kept")
}

func TestComputeRoutes_SameNode(t *testing.T) {
	s := newService(t)

	res, err := s.ComputeRoutes(detour(t), ptA, ptA, cost.Preferences{})
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{A}, res.Fast.Path.Nodes)
	assert.Equal(t, []core.NodeID{A}, res.Optimized.Path.Nodes)
	assert.Zero(t, res.Fast.LengthMeters)
	assert.Zero(t, res.Optimized.Cost)
}

func TestComputeRoutes_Errors(t *testing.T) {
	s := newService(t)

	_, err := s.ComputeRoutes(nil, ptS, ptT, cost.Preferences{})
	require.ErrorIs(t, err, routing.ErrInvalidRequest)

	_, err = s.ComputeRoutes(detour(t), orb.Point{200, 0}, ptT, cost.Preferences{})
	require.ErrorIs(t, err, routing.ErrInvalidRequest)

	_, err = s.ComputeRoutes(core.NewGraph(), ptS, ptT, cost.Preferences{})
	require.ErrorIs(t, err, core.ErrEmptyGraph)

	// Two islands: S alone, T alone.
	g := core.NewGraph()
	require.NoError(t, g.AddNode(S, ptS.Lat(), ptS.Lon()))
	require.NoError(t, g.AddNode(T, ptT.Lat(), ptT.Lon()))
	res, err := s.ComputeRoutes(g, ptS, ptT, cost.Preferences{})
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.Nil(t, res, "no partial result")
}

func TestComputeRoutes_ConcurrentMatchesSequential(t *testing.T) {
	g := detour(t)
	require.NoError(t, g.SetElevations(map[core.NodeID]float64{S: 0, A: 0, B: 60, T: 0}))
	s := newService(t)

	prefs := []cost.Preferences{
		{},
		{NightMode: true},
		{AvoidHills: true},
		{NightMode: true, AvoidHills: true},
	}
	want := make([]*routing.Result, len(prefs))
	for i, p := range prefs {
		res, err := s.ComputeRoutes(g, ptS, ptT, p)
		require.NoError(t, err)
		want[i] = res
	}

	const rounds = 25
	got := make([]*routing.Result, rounds*len(prefs))
	errs := make([]error, len(got))
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = s.ComputeRoutes(g, ptS, ptT, prefs[i%len(prefs)])
		}(i)
	}
	wg.Wait()

	for i := range got {
		require.NoError(t, errs[i])
		assert.Equal(t, want[i%len(prefs)], got[i])
	}
}

// ------------------------------------------------------------------------
// Plan
// ------------------------------------------------------------------------

func TestPlan_CachesAreaGraph(t *testing.T) {
	maps := &fakeMaps{t: t}
	s := newService(t, routing.WithMapProvider(maps))
	req := routing.Request{Start: pt(ptS), End: pt(ptT)}

	first, err := s.Plan(context.Background(), req)
	require.NoError(t, err)
	second, err := s.Plan(context.Background(), req)
	require.NoError(t, err)

	assert.EqualValues(t, 1, maps.calls.Load(), "second identical request served from cache")
	assert.Equal(t, first.Optimized.Path, second.Optimized.Path)
	assert.Equal(t, first.Footprint, second.Footprint)
	assert.True(t, first.Footprint.Contains(ptS))
	assert.True(t, first.Footprint.Contains(ptT))

	// Night request over the cached area must not be polluted by the day one,
	// and vice versa.
	night, err := s.Plan(context.Background(), routing.Request{Start: pt(ptS), End: pt(ptT), Preferences: cost.Preferences{NightMode: true}})
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{S, A, T}, night.Optimized.Path.Nodes)
	day, err := s.Plan(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, day)
	assert.EqualValues(t, 1, maps.calls.Load())
}

func TestPlan_GeocodesAddresses(t *testing.T) {
	geocoder := routing.GeocoderFunc(func(_ context.Context, address string) (orb.Point, error) {
		switch address {
		case "Marienplatz":
			return ptS, nil
		case "Odeonsplatz":
			return ptT, nil
		}
		return orb.Point{}, errUpstream
	})
	s := newService(t, routing.WithMapProvider(&fakeMaps{t: t}), routing.WithGeocoder(geocoder))

	res, err := s.Plan(context.Background(), routing.Request{StartAddress: "Marienplatz", EndAddress: "Odeonsplatz"})
	require.NoError(t, err)
	assert.Equal(t, ptS, res.Start)
	assert.Equal(t, ptT, res.End)

	// Coordinates win over addresses.
	res, err = s.Plan(context.Background(), routing.Request{Start: pt(ptT), StartAddress: "Marienplatz", EndAddress: "Marienplatz"})
	require.NoError(t, err)
	assert.Equal(t, T, res.StartNode)

	_, err = s.Plan(context.Background(), routing.Request{StartAddress: "Nowhere", End: pt(ptT)})
	require.ErrorIs(t, err, routing.ErrGeocodeFailure)
	require.ErrorIs(t, err, errUpstream, "cause is kept")
}

func TestPlan_RequestErrors(t *testing.T) {
	maps := &fakeMaps{t: t}
	s := newService(t, routing.WithMapProvider(maps))
	ctx := context.Background()

	_, err := s.Plan(ctx, routing.Request{End: pt(ptT)})
	require.ErrorIs(t, err, routing.ErrInvalidRequest)

	_, err = s.Plan(ctx, routing.Request{Start: pt(orb.Point{0, 95}), End: pt(ptT)})
	require.ErrorIs(t, err, routing.ErrInvalidRequest)

	_, err = s.Plan(ctx, routing.Request{StartAddress: "x", End: pt(ptT)})
	require.ErrorIs(t, err, routing.ErrGeocodeFailure, "no geocoder configured")

	// ~7.4 km apart: over the 5 km walking limit.
	_, err = s.Plan(ctx, routing.Request{Start: pt(orb.Point{11.0, 48.0}), End: pt(orb.Point{11.1, 48.0})})
	require.ErrorIs(t, err, routing.ErrTripTooLong)

	assert.Zero(t, maps.calls.Load(), "no map data fetched for rejected requests")
}

func TestPlan_MapDataUnavailable(t *testing.T) {
	ctx := context.Background()
	req := routing.Request{Start: pt(ptS), End: pt(ptT)}

	failing := &fakeMaps{t: t, err: errUpstream}
	_, err := newService(t, routing.WithMapProvider(failing)).Plan(ctx, req)
	require.ErrorIs(t, err, routing.ErrMapDataUnavailable)
	require.ErrorIs(t, err, errUpstream)

	empty := &fakeMaps{t: t, build: func(testing.TB) *core.Graph { return core.NewGraph() }}
	s := newService(t, routing.WithMapProvider(empty))
	_, err = s.Plan(ctx, req)
	require.ErrorIs(t, err, routing.ErrMapDataUnavailable)
	_, err = s.Plan(ctx, req)
	require.ErrorIs(t, err, routing.ErrMapDataUnavailable)
	assert.EqualValues(t, 2, empty.calls.Load(), "failures are not cached")

	_, err = newService(t).Plan(ctx, req)
	require.ErrorIs(t, err, routing.ErrMapDataUnavailable, "no map provider configured")
}

func TestPlan_ElevationEnrichment(t *testing.T) {
	heights := &elevationTable{heights: map[orb.Point]float64{ptS: 0, ptA: 0, ptB: 60, ptT: 0}}
	cfg := routing.DefaultConfig()
	cfg.ElevationBatchSize = 3
	s := newService(t,
		routing.WithConfig(cfg),
		routing.WithMapProvider(&fakeMaps{t: t}),
		routing.WithElevationProvider(heights),
	)
	ctx := context.Background()

	flat, err := s.Plan(ctx, routing.Request{Start: pt(ptS), End: pt(ptT)})
	require.NoError(t, err)
	assert.Zero(t, heights.calls(), "elevation fetched only when hills are avoided")
	assert.Equal(t, []core.NodeID{S, B, T}, flat.Optimized.Path.Nodes)

	hilly, err := s.Plan(ctx, routing.Request{Start: pt(ptS), End: pt(ptT), Preferences: cost.Preferences{AvoidHills: true}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, heights.batches, "4 nodes in batches of 3")
	assert.Equal(t, []core.NodeID{S, A, T}, hilly.Optimized.Path.Nodes)
	assert.Empty(t, hilly.Warnings)

	_, err = s.Plan(ctx, routing.Request{Start: pt(ptS), End: pt(ptT), Preferences: cost.Preferences{AvoidHills: true}})
	require.NoError(t, err)
	assert.Equal(t, 2, heights.calls(), "cached area is enriched once")
}

func TestPlan_ElevationFailureDegrades(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	heights := &elevationTable{err: errUpstream}
	s := newService(t,
		routing.WithLogger(zap.New(obs)),
		routing.WithMapProvider(&fakeMaps{t: t}),
		routing.WithElevationProvider(heights),
	)
	req := routing.Request{Start: pt(ptS), End: pt(ptT), Preferences: cost.Preferences{AvoidHills: true}}

	res, err := s.Plan(context.Background(), req)
	require.NoError(t, err, "elevation failure is not fatal")
	assert.Equal(t, []string{routing.WarningElevationUnavailable}, res.Warnings)
	assert.Equal(t, []core.NodeID{S, B, T}, res.Optimized.Path.Nodes, "slope inert")
	assert.Equal(t, 1, logs.FilterMessage("elevation unavailable, slope ignored").Len())

	// A later request retries enrichment.
	heights.mu.Lock()
	heights.err = nil
	heights.heights = map[orb.Point]float64{ptB: 60}
	heights.mu.Unlock()
	res, err = s.Plan(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, []core.NodeID{S, A, T}, res.Optimized.Path.Nodes)
}

func TestPlan_ElevationFailureIgnoresStoredHeights(t *testing.T) {
	// The cached area already carries heights written by an earlier
	// enrichment, yet this request's own lookup fails.
	stored := &fakeMaps{t: t, build: func(tb testing.TB) *core.Graph {
		g := detour(tb)
		require.NoError(tb, g.SetElevations(map[core.NodeID]float64{S: 0, A: 0, B: 60, T: 0}))
		return g
	}}
	s := newService(t,
		routing.WithMapProvider(stored),
		routing.WithElevationProvider(&elevationTable{err: errUpstream}),
	)

	res, err := s.Plan(context.Background(), routing.Request{Start: pt(ptS), End: pt(ptT), Preferences: cost.Preferences{AvoidHills: true}})
	require.NoError(t, err)
	assert.Equal(t, []string{routing.WarningElevationUnavailable}, res.Warnings)
	assert.Equal(t, []core.NodeID{S, B, T}, res.Optimized.Path.Nodes, "warning and slope agree")
	assert.InDelta(t, 720, res.Optimized.Cost, eps)
	assert.True(t, res.Preferences.AvoidHills)
}

func TestPlan_ElevationCountMismatch(t *testing.T) {
	short := routing.ElevationProviderFunc(func(_ context.Context, points []orb.Point) ([]float64, error) {
		return make([]float64, len(points)-1), nil
	})
	s := newService(t, routing.WithMapProvider(&fakeMaps{t: t}), routing.WithElevationProvider(short))

	res, err := s.Plan(context.Background(), routing.Request{Start: pt(ptS), End: pt(ptT), Preferences: cost.Preferences{AvoidHills: true}})
	require.NoError(t, err)
	assert.Equal(t, []string{routing.WarningElevationUnavailable}, res.Warnings)
}

func TestPlan_NoElevationProvider(t *testing.T) {
	s := newService(t, routing.WithMapProvider(&fakeMaps{t: t}))

	res, err := s.Plan(context.Background(), routing.Request{Start: pt(ptS), End: pt(ptT), Preferences: cost.Preferences{AvoidHills: true}})
	require.NoError(t, err)
	assert.Equal(t, []string{routing.WarningElevationUnavailable}, res.Warnings)

	flat, err := s.Plan(context.Background(), routing.Request{Start: pt(ptS), End: pt(ptT)})
	require.NoError(t, err)
	assert.Equal(t, flat.Optimized.Path, res.Optimized.Path)
	assert.Equal(t, flat.Optimized.Cost, res.Optimized.Cost)
	assert.True(t, res.Preferences.AvoidHills)
}

func TestPlan_NoPath(t *testing.T) {
	islands := &fakeMaps{t: t, build: func(tb testing.TB) *core.Graph {
		g := core.NewGraph()
		require.NoError(tb, g.AddNode(S, ptS.Lat(), ptS.Lon()))
		require.NoError(tb, g.AddNode(T, ptT.Lat(), ptT.Lon()))
		return g
	}}
	s := newService(t, routing.WithMapProvider(islands))

	res, err := s.Plan(context.Background(), routing.Request{Start: pt(ptS), End: pt(ptT)})
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.Nil(t, res)
}
