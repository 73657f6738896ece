// SPDX-License-Identifier: MIT

package routing_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/serenipy/routing"
)

func TestNewFootprint(t *testing.T) {
	start := orb.Point{13.4050, 52.5200}
	end := orb.Point{13.4250, 52.5300}
	trip := geo.DistanceHaversine(start, end)

	fp := routing.NewFootprint(start, end, 300, 50)

	assert.True(t, fp.Contains(start))
	assert.True(t, fp.Contains(end))
	assert.GreaterOrEqual(t, fp.RadiusMeters, trip/2+300)
	assert.Less(t, fp.RadiusMeters, trip/2+300+50+1, "rounded up by less than one step (plus quantisation slack)")
	assert.Zero(t, math.Mod(fp.RadiusMeters, 50))
	assert.InDelta(t, 13.415, fp.Center.Lon(), 1e-9)
	assert.InDelta(t, 52.525, fp.Center.Lat(), 1e-9)

	b := fp.Bound()
	assert.True(t, b.Contains(start))
	assert.True(t, b.Contains(end))
	assert.NotEmpty(t, fp.String())
}

func TestNewFootprint_NearbyRequestsShareKey(t *testing.T) {
	start := orb.Point{13.40500, 52.52000}
	end := orb.Point{13.42500, 52.53000}
	jitter := orb.Point{13.40502, 52.51999}

	assert.Equal(t,
		routing.NewFootprint(start, end, 300, 50),
		routing.NewFootprint(jitter, end, 300, 50),
	)
}

func TestNewFootprint_NoStep(t *testing.T) {
	p := orb.Point{2.3522, 48.8566}
	fp := routing.NewFootprint(p, p, 300, 0)

	assert.Equal(t, p, fp.Center)
	assert.InDelta(t, 300, fp.RadiusMeters, 1e-6)
}
