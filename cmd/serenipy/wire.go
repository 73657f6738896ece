// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/serenipy/builder"
	"github.com/katalvlaran/serenipy/config"
	"github.com/katalvlaran/serenipy/core"
	"github.com/katalvlaran/serenipy/cost"
	"github.com/katalvlaran/serenipy/elevation"
	"github.com/katalvlaran/serenipy/geocode"
	"github.com/katalvlaran/serenipy/osmnet"
	"github.com/katalvlaran/serenipy/routing"
)

// Synthetic grid layout: every 4th street is an arterial, 70 % of streets
// are lit, 15 % of blocks have a park path across.
const (
	gridSeed          = 1
	gridArterialEvery = 4
	gridLitShare      = 0.7
	gridFootpathShare = 0.15
)

// buildService wires the configured collaborators into a routing.Service.
// grid > 0 replaces the map provider with a synthetic street grid.
func buildService(ctx context.Context, cfg config.Config, log *zap.Logger, grid int, gridOrigin string) (*routing.Service, error) {
	model, err := cost.NewModel(cfg.Cost)
	if err != nil {
		return nil, err
	}

	maps, err := mapProvider(ctx, cfg.Providers, log, grid, gridOrigin)
	if err != nil {
		return nil, err
	}
	opts := []routing.Option{
		routing.WithConfig(cfg.Routing),
		routing.WithLogger(log.Named("routing")),
		routing.WithMapProvider(maps),
	}

	if p := cfg.Providers; p.ElevationURL != "" {
		opts = append(opts, routing.WithElevationProvider(elevation.New(
			elevation.WithURL(p.ElevationURL),
			elevation.WithTimeout(p.ElevationTimeout),
			elevation.WithLogger(log.Named("elevation")),
		)))
	}
	if p := cfg.Providers; p.NominatimURL != "" {
		gopts := []geocode.Option{
			geocode.WithURL(p.NominatimURL),
			geocode.WithUserAgent(p.NominatimUserAgent),
			geocode.WithLogger(log.Named("geocode")),
		}
		if p.GeocodeCacheSize > 0 {
			gopts = append(gopts, geocode.WithCache(p.GeocodeCacheSize))
		}
		opts = append(opts, routing.WithGeocoder(geocode.New(gopts...)))
	}

	return routing.NewService(model, opts...)
}

func mapProvider(ctx context.Context, p config.ProvidersConfig, log *zap.Logger, grid int, gridOrigin string) (routing.MapProvider, error) {
	switch {
	case grid > 0:
		g, err := syntheticGrid(grid, gridOrigin)
		if err != nil {
			return nil, err
		}
		log.Info("serving synthetic street grid", zap.Int("size", grid), zap.Int("nodes", g.NodeCount()))
		return osmnet.NewStatic(g), nil

	case p.OSMFile != "":
		g, stats, err := osmnet.LoadFile(ctx, p.OSMFile)
		if err != nil {
			return nil, err
		}
		log.Info("street network loaded",
			zap.String("file", p.OSMFile),
			zap.Int("nodes", stats.Nodes),
			zap.Int("edges", stats.Edges),
			zap.Int("components_dropped", max(stats.Components-1, 0)),
		)
		return osmnet.NewStatic(g), nil

	default:
		return osmnet.NewOverpass(
			osmnet.WithEndpoint(p.OverpassURL),
			osmnet.WithLogger(log.Named("overpass")),
		), nil
	}
}

func syntheticGrid(n int, origin string) (*core.Graph, error) {
	o, err := parseLatLon(origin)
	if err != nil {
		return nil, fmt.Errorf("-grid-origin: %w", err)
	}
	if o.Lat() < -90 || o.Lat() > 90 || o.Lon() < -180 || o.Lon() > 180 {
		return nil, fmt.Errorf("-grid-origin: %v out of range", origin)
	}
	cons := []builder.Constructor{builder.Grid(n, n)}
	if n >= 2 {
		cons = append(cons, builder.Footpaths(n, n, gridFootpathShare))
	}

	return builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(gridSeed),
			builder.WithOrigin(o.Lat(), o.Lon()),
			builder.WithClassFn(builder.ArterialEvery(gridArterialEvery, core.ClassPrimary, core.ClassResidential)),
			builder.WithLitFn(builder.LitWithProbability(gridLitShare)),
		},
		cons...,
	)
}
