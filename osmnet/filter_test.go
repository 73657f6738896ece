// SPDX-License-Identifier: MIT

package osmnet_test

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/serenipy/osmnet"
)

func TestWalkable(t *testing.T) {
	tag := func(kv ...string) osm.Tags {
		var tags osm.Tags
		for i := 0; i+1 < len(kv); i += 2 {
			tags = append(tags, osm.Tag{Key: kv[i], Value: kv[i+1]})
		}
		return tags
	}

	cases := []struct {
		name string
		tags osm.Tags
		want bool
	}{
		{"residential", tag("highway", "residential"), true},
		{"footway", tag("highway", "footway"), true},
		{"primary", tag("highway", "primary"), true},
		{"cycleway", tag("highway", "cycleway"), true},
		{"steps", tag("highway", "steps"), true},
		{"trunk", tag("highway", "trunk"), true},
		{"no highway", tag("building", "yes"), false},
		{"motorway", tag("highway", "motorway"), false},
		{"motorway link", tag("highway", "motorway_link"), false},
		{"trunk link", tag("highway", "trunk_link"), false},
		{"construction", tag("highway", "construction"), false},
		{"proposed", tag("highway", "proposed"), false},
		{"abandoned", tag("highway", "abandoned"), false},
		{"platform", tag("highway", "platform"), false},
		{"raceway", tag("highway", "raceway"), false},
		{"bus guideway", tag("highway", "bus_guideway"), false},
		{"area", tag("highway", "pedestrian", "area", "yes"), false},
		{"area no", tag("highway", "pedestrian", "area", "no"), true},
		{"foot no", tag("highway", "residential", "foot", "no"), false},
		{"access private", tag("highway", "service", "access", "private"), false},
		{"service private", tag("highway", "service", "service", "private"), false},
		{"service driveway", tag("highway", "service", "service", "driveway"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, osmnet.Walkable(tc.tags))
		})
	}
}
