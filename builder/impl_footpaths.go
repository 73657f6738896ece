// SPDX-License-Identifier: MIT
// Package: serenipy/builder
//
// impl_footpaths.go - implementation of Footpaths(rows, cols, p) constructor.
//
// Model:
//   • Overlays a Grid(rows, cols) built with the same options: each block
//     (r,c)-(r+1,c+1) independently gets a diagonal footway with probability p,
//     like a path cutting across a park.
//   • Footpaths are always core.ClassFootway; lighting follows cfg.litFn with
//     Segment{Line: r, Index: c}.
//
// Contract:
//   • rows ≥ 2 and cols ≥ 2 (else ErrTooFewNodes).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource).
//   • The grid nodes must already exist (else ErrConstructFailed).
//
// Determinism:
//   • Blocks are tried row-major; one Bernoulli draw per block.

package builder

import (
	"fmt"

	"github.com/katalvlaran/serenipy/core"
)

const (
	methodFootpaths  = "Footpaths"
	minFootpathsGrid = 2
	probMin          = 0.0
	probMax          = 1.0
)

// Footpaths returns a Constructor that adds random diagonal footways across
// the blocks of an existing grid.
func Footpaths(rows, cols int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minFootpathsGrid || cols < minFootpathsGrid {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodFootpaths, rows, cols, minFootpathsGrid, ErrTooFewNodes)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodFootpaths, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodFootpaths, ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				s := Segment{Line: r, Index: c}
				u, v := cellID(cfg, r, c, cols), cellID(cfg, r+1, c+1, cols)
				if err := addSegment(g, cfg, methodFootpaths, u, v, s, core.ClassFootway); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
