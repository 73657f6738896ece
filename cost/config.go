// SPDX-License-Identifier: MIT

package cost

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/serenipy/core"
)

// ErrInvalidConfig indicates a cost configuration value outside its domain.
var ErrInvalidConfig = errors.New("cost: invalid configuration")

// Default configuration values.
const (
	DefaultWeight           = 2.0
	DefaultParkMultiplier   = 0.4
	DefaultNightPenalty     = 5.0
	DefaultSlopeThreshold   = 0.05
	DefaultSlopeCoefficient = 10.0
)

// Config holds the tunables of the cost model. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// NoiseWeights maps a road classification to its noise multiplier.
	// Higher means more penalised.
	NoiseWeights map[string]float64 `yaml:"noise_weights"`

	// DefaultWeight applies to classifications missing from NoiseWeights.
	DefaultWeight float64 `yaml:"default_weight"`

	// GreenClasses are soft/pedestrian classifications that get ParkMultiplier.
	GreenClasses []string `yaml:"green_classes"`

	// ParkMultiplier discounts green classes; must lie in (0,1).
	ParkMultiplier float64 `yaml:"park_multiplier"`

	// NightPenalty multiplies unlit edges in night mode; must be ≥ 1.
	NightPenalty float64 `yaml:"night_penalty"`

	// PenalizeUnknownLit treats edges without a lit tag as unlit in night mode.
	PenalizeUnknownLit bool `yaml:"penalize_unknown_lit"`

	// SlopeThreshold is the grade above which the slope penalty applies.
	SlopeThreshold float64 `yaml:"slope_threshold"`

	// SlopeCoefficient scales the grade into the penalty factor.
	SlopeCoefficient float64 `yaml:"slope_coefficient"`
}

// DefaultConfig returns the stock tuning. Each call returns fresh maps and slices.
func DefaultConfig() Config {
	return Config{
		NoiseWeights: map[string]float64{
			string(core.ClassMotorway):     10.0,
			string(core.ClassTrunk):        9.0,
			string(core.ClassPrimary):      8.0,
			string(core.ClassSecondary):    6.0,
			string(core.ClassTertiary):     4.0,
			string(core.ClassResidential):  1.2,
			string(core.ClassLivingStreet): 1.0,
			string(core.ClassService):      1.5,
			string(core.ClassFootway):      0.5,
			string(core.ClassCycleway):     0.5,
			string(core.ClassPedestrian):   0.3,
			string(core.ClassTrack):        0.8,
			string(core.ClassPath):         0.4,
			string(core.ClassSteps):        3.0, // quiet, but physically annoying
		},
		DefaultWeight: DefaultWeight,
		GreenClasses: []string{
			string(core.ClassFootway),
			string(core.ClassPath),
			string(core.ClassCycleway),
			string(core.ClassPedestrian),
		},
		ParkMultiplier:     DefaultParkMultiplier,
		NightPenalty:       DefaultNightPenalty,
		PenalizeUnknownLit: true,
		SlopeThreshold:     DefaultSlopeThreshold,
		SlopeCoefficient:   DefaultSlopeCoefficient,
	}
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	for class, w := range c.NoiseWeights {
		if !finiteNonNegative(w) {
			return fmt.Errorf("%w: noise_weights[%s]=%v must be finite and ≥ 0", ErrInvalidConfig, class, w)
		}
	}
	if !finiteNonNegative(c.DefaultWeight) {
		return fmt.Errorf("%w: default_weight=%v must be finite and ≥ 0", ErrInvalidConfig, c.DefaultWeight)
	}
	if !(c.ParkMultiplier > 0 && c.ParkMultiplier < 1) {
		return fmt.Errorf("%w: park_multiplier=%v must be in (0,1)", ErrInvalidConfig, c.ParkMultiplier)
	}
	if math.IsInf(c.NightPenalty, 0) || !(c.NightPenalty >= 1) {
		return fmt.Errorf("%w: night_penalty=%v must be finite and ≥ 1", ErrInvalidConfig, c.NightPenalty)
	}
	if !finiteNonNegative(c.SlopeThreshold) {
		return fmt.Errorf("%w: slope_threshold=%v must be finite and ≥ 0", ErrInvalidConfig, c.SlopeThreshold)
	}
	if !finiteNonNegative(c.SlopeCoefficient) {
		return fmt.Errorf("%w: slope_coefficient=%v must be finite and ≥ 0", ErrInvalidConfig, c.SlopeCoefficient)
	}

	return nil
}

// ParseConfig decodes YAML over DefaultConfig. Weights listed in the document
// are merged into the default table; green_classes replaces the default list.
// Unknown keys are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode cost config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadConfig reads a YAML cost configuration file. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to open cost config: %w", err)
	}

	return ParseConfig(bytes.NewReader(data))
}

// clone returns a deep copy so the caller's map and slice are never shared.
func (c Config) clone() Config {
	out := c
	out.NoiseWeights = make(map[string]float64, len(c.NoiseWeights))
	for k, w := range c.NoiseWeights {
		out.NoiseWeights[k] = w
	}
	out.GreenClasses = append([]string(nil), c.GreenClasses...)

	return out
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
