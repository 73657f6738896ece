// SPDX-License-Identifier: MIT

package routing

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/serenipy/core"
)

// MapProvider supplies the walkable street network covering a footprint.
// The returned graph is owned by the caller and cached; the provider must not
// keep mutating it.
type MapProvider interface {
	FetchNetwork(ctx context.Context, area Footprint) (*core.Graph, error)
}

// ElevationProvider resolves ground elevation in metres for a batch of
// (lon, lat) points. The result has one value per input point, in order.
type ElevationProvider interface {
	Elevations(ctx context.Context, points []orb.Point) ([]float64, error)
}

// Geocoder resolves a free-form address to a (lon, lat) point.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (orb.Point, error)
}

// MapProviderFunc adapts a function to MapProvider.
type MapProviderFunc func(ctx context.Context, area Footprint) (*core.Graph, error)

// FetchNetwork calls f.
func (f MapProviderFunc) FetchNetwork(ctx context.Context, area Footprint) (*core.Graph, error) {
	return f(ctx, area)
}

// ElevationProviderFunc adapts a function to ElevationProvider.
type ElevationProviderFunc func(ctx context.Context, points []orb.Point) ([]float64, error)

// Elevations calls f.
func (f ElevationProviderFunc) Elevations(ctx context.Context, points []orb.Point) ([]float64, error) {
	return f(ctx, points)
}

// GeocoderFunc adapts a function to Geocoder.
type GeocoderFunc func(ctx context.Context, address string) (orb.Point, error)

// Geocode calls f.
func (f GeocoderFunc) Geocode(ctx context.Context, address string) (orb.Point, error) {
	return f(ctx, address)
}
