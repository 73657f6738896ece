// SPDX-License-Identifier: MIT

package routing

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// footprintPrecision quantises footprint centres to ~11 m so nearby requests
// share a cache entry.
const footprintPrecision = 1e4

// Footprint is the circular area whose street network serves one trip. It is
// comparable and used as the area cache key.
type Footprint struct {
	Center       orb.Point // (lon, lat), quantised
	RadiusMeters float64   // rounded up to the radius step
}

// NewFootprint returns the quantised area covering start and end: centred on
// their midpoint with radius half their great-circle distance plus buffer.
// The radius is rounded up to a multiple of step (when step > 0) so the
// area always contains both points.
func NewFootprint(start, end orb.Point, buffer, step float64) Footprint {
	center := orb.Point{
		quantise((start.Lon() + end.Lon()) / 2),
		quantise((start.Lat() + end.Lat()) / 2),
	}
	// Quantising moves the centre; measure from the quantised centre so
	// both points stay inside.
	reach := math.Max(geo.DistanceHaversine(center, start), geo.DistanceHaversine(center, end))
	radius := math.Max(reach, geo.DistanceHaversine(start, end)/2) + buffer
	if step > 0 {
		radius = math.Ceil(radius/step) * step
	}

	return Footprint{Center: center, RadiusMeters: radius}
}

// Bound returns the bounding box of the footprint.
func (f Footprint) Bound() orb.Bound {
	return geo.NewBoundAroundPoint(f.Center, f.RadiusMeters)
}

// Contains reports whether p lies within the footprint.
func (f Footprint) Contains(p orb.Point) bool {
	return geo.DistanceHaversine(f.Center, p) <= f.RadiusMeters
}

// String renders the footprint for logs.
func (f Footprint) String() string {
	return fmt.Sprintf("(%.4f,%.4f)r%.0fm", f.Center.Lat(), f.Center.Lon(), f.RadiusMeters)
}

func quantise(deg float64) float64 {
	return math.Round(deg*footprintPrecision) / footprintPrecision
}
