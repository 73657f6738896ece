// SPDX-License-Identifier: MIT
//
// File: area.go
// Role: Area graph cache and per-area elevation enrichment.

package routing

import (
	"context"
	"fmt"
	"sync"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/katalvlaran/serenipy/core"
)

// area is one cached street network. mu serialises elevation enrichment;
// the graph itself guards concurrent reads.
type area struct {
	graph *core.Graph

	mu       sync.Mutex
	enriched bool
}

// loadArea returns the cached graph for fp or fetches it through the map
// provider. Concurrent misses on the same footprint may both fetch; the
// first one stored wins so every caller ends up sharing one entry.
func (s *Service) loadArea(ctx context.Context, fp Footprint) (*area, error) {
	if a, ok := s.areas.Get(fp); ok {
		areaCache.WithLabelValues("hit").Inc()
		return a, nil
	}
	areaCache.WithLabelValues("miss").Inc()

	if s.maps == nil {
		return nil, fmt.Errorf("%w: no map provider configured", ErrMapDataUnavailable)
	}
	g, err := s.maps.FetchNetwork(ctx, fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMapDataUnavailable, fp, err)
	}
	if g == nil || g.NodeCount() == 0 {
		return nil, fmt.Errorf("%w: %s: empty street network", ErrMapDataUnavailable, fp)
	}

	a := &area{graph: g}
	if prev, ok, _ := s.areas.PeekOrAdd(fp, a); ok {
		return prev, nil
	}
	s.logger.Debug("area cached",
		zap.Stringer("area", fp),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return a, nil
}

// enrich fetches elevation for every node of a once, in batches of
// ElevationBatchSize, and applies all values atomically. A failed attempt
// writes nothing and leaves the area eligible for a later retry.
func (s *Service) enrich(ctx context.Context, a *area) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.enriched {
		return nil
	}
	if s.elevation == nil {
		return fmt.Errorf("%w: no elevation provider configured", ErrElevationUnavailable)
	}

	ids := a.graph.Nodes()
	points := make([]orb.Point, len(ids))
	for i, id := range ids {
		n, err := a.graph.Node(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrElevationUnavailable, err)
		}
		points[i] = n.Point()
	}

	batch := s.cfg.ElevationBatchSize
	values := make(map[core.NodeID]float64, len(ids))
	for lo := 0; lo < len(ids); lo += batch {
		hi := min(lo+batch, len(ids))
		got, err := s.elevation.Elevations(ctx, points[lo:hi])
		if err != nil {
			return fmt.Errorf("%w: batch [%d,%d): %w", ErrElevationUnavailable, lo, hi, err)
		}
		if len(got) != hi-lo {
			return fmt.Errorf("%w: batch [%d,%d): got %d values", ErrElevationUnavailable, lo, hi, len(got))
		}
		for i, m := range got {
			values[ids[lo+i]] = m
		}
	}

	if err := a.graph.SetElevations(values); err != nil {
		return fmt.Errorf("%w: %w", ErrElevationUnavailable, err)
	}
	a.enriched = true
	s.logger.Debug("area enriched with elevation", zap.Int("nodes", len(values)))

	return nil
}
