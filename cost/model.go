// SPDX-License-Identifier: MIT

package cost

import (
	"math"

	"github.com/katalvlaran/serenipy/core"
)

// Preferences are the per-request routing toggles. They drive the cost model
// only and never change graph topology.
type Preferences struct {
	NightMode  bool `json:"night_mode"`
	AvoidHills bool `json:"avoid_hills"`
}

// Elevation is an optional elevation sample in metres.
type Elevation struct {
	Meters float64
	Known  bool
}

// KnownElevation wraps a measured value.
func KnownElevation(m float64) Elevation { return Elevation{Meters: m, Known: true} }

// Model evaluates edge costs under one validated Config. It is immutable
// and safe for concurrent use.
type Model struct {
	cfg     Config
	weights map[core.Classification]float64
	green   map[core.Classification]bool
}

// NewModel validates cfg and precomputes the lookup tables. Table keys are
// normalised with core.ParseClassification so "Footway" and "footway" match.
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Model{
		cfg:     cfg,
		weights: make(map[core.Classification]float64, len(cfg.NoiseWeights)),
		green:   make(map[core.Classification]bool, len(cfg.GreenClasses)),
	}
	for k, w := range cfg.NoiseWeights {
		m.weights[core.ParseClassification(k)] = w
	}
	for _, k := range cfg.GreenClasses {
		m.green[core.ParseClassification(k)] = true
	}
	m.cfg = cfg.clone()

	return m, nil
}

// Config returns a copy of the configuration the model was built with.
func (m *Model) Config() Config { return m.cfg.clone() }

// NoiseFactor returns the noise multiplier of class including the green
// discount, before any night or slope adjustment.
func (m *Model) NoiseFactor(class core.Classification) float64 {
	w, ok := m.weights[class]
	if !ok {
		w = m.cfg.DefaultWeight
	}
	if m.green[class] {
		w *= m.cfg.ParkMultiplier
	}

	return w
}

// GradePenalty returns the slope factor for an edge of the given length
// between two elevation samples. It is 1 unless both samples are known,
// length > 0 and the grade exceeds the threshold.
func (m *Model) GradePenalty(length float64, from, to Elevation) float64 {
	if !from.Known || !to.Known || !(length > 0) {
		return 1.0
	}
	grade := math.Abs(to.Meters-from.Meters) / length
	if grade <= m.cfg.SlopeThreshold {
		return 1.0
	}

	return 1.0 + grade*m.cfg.SlopeCoefficient
}

// Cost computes the traversal cost of e.
//
// Implementation:
//   - Stage 1: noise factor from the weight table, default weight as fallback.
//   - Stage 2: green discount for soft classifications.
//   - Stage 3: night penalty for unlit edges (and unknown ones when configured).
//   - Stage 4: grade penalty when hills are avoided and both elevations are known.
//   - Stage 5: length × factor × grade.
//
// Returns 0 for zero-length edges. The result is always ≥ 0.
func (m *Model) Cost(e core.Edge, from, to Elevation, p Preferences) float64 {
	if e.Length == 0 {
		return 0
	}

	factor := m.NoiseFactor(e.Class)
	if p.NightMode && m.dark(e.Lit) {
		factor *= m.cfg.NightPenalty
	}

	grade := 1.0
	if p.AvoidHills {
		grade = m.GradePenalty(e.Length, from, to)
	}

	return e.Length * factor * grade
}

// dark reports whether the night penalty applies to a lit state.
func (m *Model) dark(l core.Lit) bool {
	switch l {
	case core.LitNo:
		return true
	case core.LitUnknown:
		return m.cfg.PenalizeUnknownLit
	default:
		return false
	}
}
