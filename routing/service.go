// SPDX-License-Identifier: MIT
//
// File: service.go
// Role: Service construction, ComputeRoutes façade and Plan orchestration.

package routing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/zap"

	"github.com/katalvlaran/serenipy/core"
	"github.com/katalvlaran/serenipy/cost"
	"github.com/katalvlaran/serenipy/dijkstra"
)

// Service computes fast and optimized walking routes.
type Service struct {
	model     *cost.Model
	cfg       Config
	logger    *zap.Logger
	maps      MapProvider
	elevation ElevationProvider
	geocoder  Geocoder
	areas     *lru.Cache[Footprint, *area]
}

// NewService builds a Service around a cost model.
//
// Errors:
//   - ErrInvalidConfig: nil model or a Config field out of range.
func NewService(model *cost.Model, opts ...Option) (*Service, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: cost model is nil", ErrInvalidConfig)
	}

	s := &Service{
		model:  model,
		cfg:    DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	areas, err := lru.New[Footprint, *area](s.cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	s.areas = areas

	return s, nil
}

// Config returns the service configuration.
func (s *Service) Config() Config { return s.cfg }

// Model returns the cost model.
func (s *Service) Model() *cost.Model { return s.model }

// ComputeRoutes snaps start and end to the graph and computes both routes.
//
// Implementation:
//   - Stage 1: Nearest node to each end point (ties → lowest id).
//   - Stage 2: Annotate every edge with a fresh cost under prefs.
//   - Stage 3: Route engine by length → Fast; by cost → Optimized.
//   - Stage 4: Attach coordinates, total length and total cost to both.
//
// The graph is only read; concurrent calls with different preferences on a
// shared graph are independent.
//
// Errors:
//   - ErrInvalidRequest: nil graph or out-of-range coordinates.
//   - core.ErrEmptyGraph: the graph has no nodes.
//   - dijkstra.ErrNoPath: the snapped nodes are not connected. No partial
//     result is returned.
func (s *Service) ComputeRoutes(g *core.Graph, start, end orb.Point, prefs cost.Preferences) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidRequest)
	}
	if err := validatePoint(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := validatePoint(end); err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	startNode, err := g.NearestNode(start.Lat(), start.Lon())
	if err != nil {
		return nil, fmt.Errorf("snap start: %w", err)
	}
	endNode, err := g.NearestNode(end.Lat(), end.Lon())
	if err != nil {
		return nil, fmt.Errorf("snap end: %w", err)
	}

	ann, err := s.model.Annotate(g, prefs)
	if err != nil {
		return nil, err
	}

	fastPath, err := dijkstra.ShortestPath(g, startNode, endNode, dijkstra.WithWeight(dijkstra.ByLength()))
	if err != nil {
		return nil, fmt.Errorf("fast route: %w", err)
	}
	optPath, err := dijkstra.ShortestPath(g, startNode, endNode, dijkstra.WithWeight(dijkstra.ByCost(ann)))
	if err != nil {
		return nil, fmt.Errorf("optimized route: %w", err)
	}

	fast, err := buildRoute(g, fastPath, ann)
	if err != nil {
		return nil, err
	}
	optimized, err := buildRoute(g, optPath, ann)
	if err != nil {
		return nil, err
	}

	return &Result{
		Fast:        fast,
		Optimized:   optimized,
		Start:       start,
		End:         end,
		StartNode:   startNode,
		EndNode:     endNode,
		Preferences: prefs,
	}, nil
}

// Plan runs a full request.
//
// Implementation:
//   - Stage 1: Resolve both end points, geocoding addresses when needed.
//   - Stage 2: Reject trips longer than MaxTripMeters.
//   - Stage 3: Quantise the footprint and take the area graph from the cache
//     or the map provider.
//   - Stage 4: With AvoidHills, enrich the area with elevation once. Failure
//     is logged and reported in Result.Warnings; the request is then costed
//     without slope, whatever elevations the cached area holds.
//   - Stage 5: ComputeRoutes.
//
// ctx is honoured at collaborator calls only; the route engine itself is
// not cancellable. No step is retried.
func (s *Service) Plan(ctx context.Context, req Request) (res *Result, err error) {
	started := time.Now()
	defer func() {
		planDuration.Observe(time.Since(started).Seconds())
		planRequests.WithLabelValues(outcomeOf(err)).Inc()
	}()

	start, err := s.resolve(ctx, req.Start, req.StartAddress, "start")
	if err != nil {
		return nil, err
	}
	end, err := s.resolve(ctx, req.End, req.EndAddress, "end")
	if err != nil {
		return nil, err
	}

	trip := geo.DistanceHaversine(start, end)
	if trip > s.cfg.MaxTripMeters {
		return nil, fmt.Errorf("%w: %.0f m exceeds %.0f m", ErrTripTooLong, trip, s.cfg.MaxTripMeters)
	}

	fp := NewFootprint(start, end, s.cfg.BufferMeters, s.cfg.RadiusStepMeters)
	a, err := s.loadArea(ctx, fp)
	if err != nil {
		return nil, err
	}

	var warnings []string
	costPrefs := req.Preferences
	if req.Preferences.AvoidHills {
		if eerr := s.enrich(ctx, a); eerr != nil {
			elevationFailures.Inc()
			s.logger.Warn("elevation unavailable, slope ignored",
				zap.Stringer("area", fp),
				zap.Error(eerr),
			)
			warnings = append(warnings, WarningElevationUnavailable)
			// Elevations another request may write meanwhile stay unused.
			costPrefs.AvoidHills = false
		}
	}

	res, err = s.ComputeRoutes(a.graph, start, end, costPrefs)
	if err != nil {
		return nil, err
	}
	res.Preferences = req.Preferences
	res.Footprint = fp
	res.Warnings = warnings

	s.logger.Info("route planned",
		zap.Stringer("area", fp),
		zap.Float64("trip_m", trip),
		zap.Bool("night_mode", req.Preferences.NightMode),
		zap.Bool("avoid_hills", req.Preferences.AvoidHills),
		zap.Float64("fast_m", res.Fast.LengthMeters),
		zap.Float64("optimized_m", res.Optimized.LengthMeters),
		zap.Duration("took", time.Since(started)),
	)

	return res, nil
}

// resolve returns p when set, otherwise geocodes address.
func (s *Service) resolve(ctx context.Context, p *orb.Point, address, which string) (orb.Point, error) {
	if p != nil {
		if err := validatePoint(*p); err != nil {
			return orb.Point{}, fmt.Errorf("%s: %w", which, err)
		}
		return *p, nil
	}
	if address == "" {
		return orb.Point{}, fmt.Errorf("%w: %s needs coordinates or an address", ErrInvalidRequest, which)
	}
	if s.geocoder == nil {
		return orb.Point{}, fmt.Errorf("%w: %s %q: no geocoder configured", ErrGeocodeFailure, which, address)
	}

	pt, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: %s %q: %w", ErrGeocodeFailure, which, address, err)
	}
	if err = validatePoint(pt); err != nil {
		return orb.Point{}, fmt.Errorf("%w: %s %q: %w", ErrGeocodeFailure, which, address, err)
	}

	return pt, nil
}

// buildRoute resolves geometry and totals of p.
func buildRoute(g *core.Graph, p dijkstra.Path, ann *cost.Annotation) (Route, error) {
	coords := make([]orb.Point, len(p.Nodes))
	for i, id := range p.Nodes {
		n, err := g.Node(id)
		if err != nil {
			return Route{}, err
		}
		coords[i] = n.Point()
	}

	length, err := dijkstra.PathLength(g, p)
	if err != nil {
		return Route{}, err
	}
	var total float64
	for _, id := range p.Edges {
		total += ann.Cost(id)
	}

	return Route{Path: p, Coordinates: coords, LengthMeters: length, Cost: total}, nil
}

func validatePoint(p orb.Point) error {
	lon, lat := p.Lon(), p.Lat()
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: coordinate (lat=%v, lon=%v) out of range", ErrInvalidRequest, lat, lon)
	}

	return nil
}

// outcomeOf maps a Plan error to its metric label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrInvalidRequest):
		return outcomeInvalid
	case errors.Is(err, ErrGeocodeFailure):
		return outcomeGeocode
	case errors.Is(err, ErrTripTooLong):
		return outcomeTooLong
	case errors.Is(err, ErrMapDataUnavailable):
		return outcomeMapData
	case errors.Is(err, dijkstra.ErrNoPath):
		return outcomeNoPath
	default:
		return outcomeOtherFailed
	}
}
