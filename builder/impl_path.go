// SPDX-License-Identifier: MIT
// Package: serenipy/builder
//
// impl_path.go - implementation of Street(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • n nodes running east from the origin, ids cfg.idBase..cfg.idBase+n-1.
//   • n-1 segments with Segment{Line: 0, Index: i, Horizontal: true}.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/serenipy/core"
)

const (
	methodStreet   = "Street"
	minStreetNodes = 2
	streetRow      = 0
)

// Street returns a Constructor that builds a single straight street.
func Street(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStreetNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStreet, n, minStreetNodes, ErrTooFewNodes)
		}

		// A street is a one-row grid without vertical segments.
		for c := 0; c < n; c++ {
			if err := addCell(g, cfg, methodStreet, streetRow, c, n); err != nil {
				return err
			}
		}
		for c := 0; c+1 < n; c++ {
			s := Segment{Line: streetRow, Index: c, Horizontal: true}
			u, v := cellID(cfg, streetRow, c, n), cellID(cfg, streetRow, c+1, n)
			if err := addSegment(g, cfg, methodStreet, u, v, s, cfg.classFn(s, cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
