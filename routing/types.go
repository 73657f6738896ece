// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Request/Result/Route shapes, service configuration and options.

package routing

import (
	"fmt"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/katalvlaran/serenipy/core"
	"github.com/katalvlaran/serenipy/cost"
	"github.com/katalvlaran/serenipy/dijkstra"
)

// WarningElevationUnavailable is attached to a Result planned with
// AvoidHills when elevation could not be fetched.
const WarningElevationUnavailable = "elevation unavailable"

// Default service configuration.
const (
	DefaultMaxTripMeters      = 5000.0
	DefaultBufferMeters       = 300.0
	DefaultRadiusStepMeters   = 50.0
	DefaultElevationBatchSize = 100
	DefaultCacheSize          = 32
)

// Request is one Plan call. Each end point is given either as coordinates
// or as an address to geocode; coordinates win when both are set.
type Request struct {
	Start        *orb.Point // (lon, lat)
	End          *orb.Point // (lon, lat)
	StartAddress string
	EndAddress   string
	Preferences  cost.Preferences
}

// Route is one computed path with its geometry and totals.
type Route struct {
	Path         dijkstra.Path
	Coordinates  []orb.Point // (lon, lat) per path node
	LengthMeters float64
	Cost         float64 // total under the request's cost annotation
}

// Result carries both routes of one request.
//
// Fast minimises length; Optimized minimises cost. Both always connect the
// same StartNode and EndNode.
type Result struct {
	Fast        Route
	Optimized   Route
	Start       orb.Point // requested start (after geocoding)
	End         orb.Point // requested end (after geocoding)
	StartNode   core.NodeID
	EndNode     core.NodeID
	Preferences cost.Preferences
	Footprint   Footprint // zero for ComputeRoutes
	Warnings    []string
}

// Config holds the tunables of Service.Plan.
type Config struct {
	// MaxTripMeters rejects trips with a longer great-circle distance.
	MaxTripMeters float64 `yaml:"max_trip_meters"`

	// BufferMeters is added to half the trip distance to size the area.
	BufferMeters float64 `yaml:"buffer_meters"`

	// RadiusStepMeters quantises the area radius for cache reuse; 0 disables.
	RadiusStepMeters float64 `yaml:"radius_step_meters"`

	// ElevationBatchSize is the number of points per elevation call.
	ElevationBatchSize int `yaml:"elevation_batch_size"`

	// CacheSize is the number of area graphs kept in memory.
	CacheSize int `yaml:"cache_size"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		MaxTripMeters:      DefaultMaxTripMeters,
		BufferMeters:       DefaultBufferMeters,
		RadiusStepMeters:   DefaultRadiusStepMeters,
		ElevationBatchSize: DefaultElevationBatchSize,
		CacheSize:          DefaultCacheSize,
	}
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	switch {
	case !(c.MaxTripMeters > 0):
		return fmt.Errorf("%w: max_trip_meters=%v must be > 0", ErrInvalidConfig, c.MaxTripMeters)
	case !(c.BufferMeters >= 0):
		return fmt.Errorf("%w: buffer_meters=%v must be ≥ 0", ErrInvalidConfig, c.BufferMeters)
	case !(c.RadiusStepMeters >= 0):
		return fmt.Errorf("%w: radius_step_meters=%v must be ≥ 0", ErrInvalidConfig, c.RadiusStepMeters)
	case c.ElevationBatchSize <= 0:
		return fmt.Errorf("%w: elevation_batch_size=%d must be > 0", ErrInvalidConfig, c.ElevationBatchSize)
	case c.CacheSize <= 0:
		return fmt.Errorf("%w: cache_size=%d must be > 0", ErrInvalidConfig, c.CacheSize)
	}

	return nil
}

// Option configures a Service.
type Option func(*Service)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

// WithLogger sets the structured logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMapProvider sets the street network source used by Plan.
func WithMapProvider(p MapProvider) Option {
	return func(s *Service) { s.maps = p }
}

// WithElevationProvider sets the elevation source used by Plan.
func WithElevationProvider(p ElevationProvider) Option {
	return func(s *Service) { s.elevation = p }
}

// WithGeocoder sets the address resolver used by Plan.
func WithGeocoder(g Geocoder) Option {
	return func(s *Service) { s.geocoder = g }
}
