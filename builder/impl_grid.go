// SPDX-License-Identifier: MIT
// Package: serenipy/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Model:
//   • rows×cols street grid; cell (r,c) sits r blocks north and c blocks east
//     of the origin, blocks cfg.spacing metres apart.
//   • Node ids are row-major from cfg.idBase: id = base + r*cols + c.
//   • Each cell connects to its east and north neighbour. Horizontal segments
//     carry Segment{Line: r, Index: c}, vertical ones Segment{Line: c, Index: r}.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   • Edge lengths are haversine distances between node coordinates.
//   • Directedness follows the graph default.
//
// Complexity: O(rows*cols) nodes and edges.
//
// Determinism:
//   • Nodes in row-major order; for each cell emit East then North.

package builder

import (
	"fmt"

	"github.com/katalvlaran/serenipy/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addCell(g, cfg, methodGrid, r, c, cols); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cellID(cfg, r, c, cols)
				if c+1 < cols {
					s := Segment{Line: r, Index: c, Horizontal: true}
					if err := addSegment(g, cfg, methodGrid, u, cellID(cfg, r, c+1, cols), s, cfg.classFn(s, cfg.rng)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					s := Segment{Line: c, Index: r}
					if err := addSegment(g, cfg, methodGrid, u, cellID(cfg, r+1, c, cols), s, cfg.classFn(s, cfg.rng)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
