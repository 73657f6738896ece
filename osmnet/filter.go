// SPDX-License-Identifier: MIT

package osmnet

import "github.com/paulmach/osm"

// excludedHighways are highway values a pedestrian cannot use.
var excludedHighways = map[string]bool{
	"abandoned":     true,
	"bus_guideway":  true,
	"construction":  true,
	"motorway":      true,
	"motorway_link": true,
	"no":            true,
	"planned":       true,
	"platform":      true,
	"proposed":      true,
	"raceway":       true,
	"razed":         true,
	"trunk_link":    true,
}

// Walkable reports whether a way with tags may be walked: it must carry a
// highway tag outside excludedHighways, must not be an area, and must not be
// closed to pedestrians by foot=no, access=private or service=private.
func Walkable(tags osm.Tags) bool {
	highway := tags.Find("highway")
	if highway == "" || excludedHighways[highway] {
		return false
	}
	switch {
	case tags.Find("area") == "yes":
		return false
	case tags.Find("foot") == "no":
		return false
	case tags.Find("access") == "private":
		return false
	case tags.Find("service") == "private":
		return false
	}

	return true
}
