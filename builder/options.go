// SPDX-License-Identifier: MIT
// Package: serenipy/builder
//
// options.go - functional options for BuildGraph.
//
// Invalid values are programmer errors and panic at option construction
// time; nil functions are ignored.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/serenipy/core"
)

// BuilderOption mutates a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithSeed installs a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-provided RNG. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(cfg *builderConfig) { cfg.rng = r }
}

// WithOrigin places node (0,0) at lat/lon. Panics on out-of-range values.
func WithOrigin(lat, lon float64) BuilderOption {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		panic(fmt.Sprintf("builder: WithOrigin(%v, %v) out of range", lat, lon))
	}

	return func(cfg *builderConfig) { cfg.origin = orb.Point{lon, lat} }
}

// WithSpacing sets the distance between neighbouring nodes in metres.
// Panics unless meters is finite and > 0.
func WithSpacing(meters float64) BuilderOption {
	if !(meters > 0) || math.IsInf(meters, 1) {
		panic(fmt.Sprintf("builder: WithSpacing(%v) must be finite and > 0", meters))
	}

	return func(cfg *builderConfig) { cfg.spacing = meters }
}

// WithIDBase numbers nodes from base instead of 1. Useful when composing
// several constructors into one graph.
func WithIDBase(base core.NodeID) BuilderOption {
	return func(cfg *builderConfig) { cfg.idBase = base }
}

// WithClassFn sets the street classification policy.
func WithClassFn(fn ClassFn) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.classFn = fn
		}
	}
}

// WithLitFn sets the lighting policy.
func WithLitFn(fn LitFn) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.litFn = fn
		}
	}
}
