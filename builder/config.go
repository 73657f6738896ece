// SPDX-License-Identifier: MIT
// Package: serenipy/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • origin  = (48.1374, 11.5755)   central Munich, lat/lon
//   • spacing = 100 m                block edge
//   • idBase  = 1                    first node id
//   • rng     = nil                  pure/deterministic unless seeded
//   • classFn = ConstantClass(residential)
//   • litFn   = ConstantLit(LitYes)

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/serenipy/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	origin  orb.Point   // lon/lat of node (0,0)
	spacing float64     // metres between neighbouring nodes
	idBase  core.NodeID // id of the first node
	rng     *rand.Rand  // nil means “no randomness”
	classFn ClassFn
	litFn   LitFn
}

const (
	defaultOriginLat = 48.1374
	defaultOriginLon = 11.5755
	defaultSpacing   = 100.0
	defaultIDBase    = core.NodeID(1)
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		origin:  orb.Point{defaultOriginLon, defaultOriginLat},
		spacing: defaultSpacing,
		idBase:  defaultIDBase,
		classFn: ConstantClass(core.ClassResidential),
		litFn:   ConstantLit(core.LitYes),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
