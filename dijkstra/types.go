// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Path result, weight selection, functional options and sentinel errors.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/serenipy/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoPath indicates that the destination is unreachable from the origin
	// (disconnected component, one-way dead end, impassable edges or MaxDistance).
	ErrNoPath = errors.New("dijkstra: no path between nodes")

	// ErrNegativeWeight indicates that the weight function produced a negative
	// or NaN value for some edge.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNilWeight indicates that WithWeight was given a nil function.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")
)

// Path is one shortest path.
//
// Nodes runs from origin to destination inclusive; Edges[i] is the edge taken
// from Nodes[i] to Nodes[i+1], so len(Edges) == len(Nodes)-1. Weight is the
// sum of the selected weights along Edges.
type Path struct {
	Nodes  []core.NodeID
	Edges  []core.EdgeID
	Weight float64
}

// Len returns the number of hops.
func (p Path) Len() int { return len(p.Edges) }

// WeightFunc maps an edge to its traversal weight. It must be pure for the
// duration of one ShortestPath call. +Inf marks the edge as impassable.
type WeightFunc func(e core.Edge) float64

// Coster supplies a precomputed weight per edge id. *cost.Annotation satisfies it.
type Coster interface {
	Cost(id core.EdgeID) float64
}

// ByLength weighs edges by their physical length in metres.
func ByLength() WeightFunc {
	return func(e core.Edge) float64 { return e.Length }
}

// ByCost weighs edges by a per-request cost table.
func ByCost(c Coster) WeightFunc {
	return func(e core.Edge) float64 { return c.Cost(e.ID) }
}

// Options configures ShortestPath.
//
// Weight      – edge weight function. Default ByLength().
// MaxDistance – exploration cap on the accumulated weight; nodes farther than
//
//	this are never settled. Default +Inf (no cap).
type Options struct {
	Weight      WeightFunc
	MaxDistance float64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithWeight selects the edge weight function.
// Passing nil panics with ErrNilWeight.
func WithWeight(fn WeightFunc) Option {
	if fn == nil {
		panic(ErrNilWeight.Error())
	}

	return func(o *Options) {
		o.Weight = fn
	}
}

// WithMaxDistance sets a maximum accumulated weight. A destination farther
// than max is reported as ErrNoPath.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if math.IsNaN(max) || max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: ByLength weights, no distance cap.
func DefaultOptions() Options {
	return Options{
		Weight:      ByLength(),
		MaxDistance: math.Inf(1),
	}
}
