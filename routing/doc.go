// SPDX-License-Identifier: MIT

// Package routing is the entry point of the router. It turns two end points
// and a set of preferences into two routes over a street network:
//
//   - Fast: the geometrically shortest path (edge length).
//   - Optimized: the quiet/safe/flat path (edge cost from package cost).
//
// Two levels are offered:
//
//	Service.ComputeRoutes(g, start, end, prefs)
//	    Pure, CPU-only: snap both points to their nearest nodes, annotate a
//	    fresh request-scoped cost table and run the route engine twice.
//
//	Service.Plan(ctx, req)
//	    Full orchestration: geocode addresses, reject over-long trips, pick
//	    the area footprint, fetch (or reuse) the area graph, enrich it with
//	    elevation when hills are avoided, then ComputeRoutes.
//
// Collaborators (map data, elevation, geocoding) are interfaces; concrete
// adapters live in packages osmnet, elevation and geocode.
//
// Concurrency:
//
//	A Service is safe for concurrent use. Area graphs are cached by
//	footprint and shared read-only between requests; costs are never written
//	into them. Elevation enrichment of a cached area is serialised per area
//	and applied atomically.
//
// Errors (sentinel, compare with errors.Is):
//
//	ErrInvalidRequest       – malformed request or coordinates.
//	ErrGeocodeFailure       – an address could not be resolved.
//	ErrTripTooLong          – great-circle distance above MaxTripMeters.
//	ErrMapDataUnavailable   – the map-data provider failed.
//	ErrElevationUnavailable – elevation lookup failed (only ever a warning).
//	dijkstra.ErrNoPath      – the two points are not connected.
//	core.ErrEmptyGraph      – the area graph has no nodes.
package routing
