// SPDX-License-Identifier: MIT
// Package: serenipy/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors attach context with %w, never by redefining messages.
//   - Runtime code never panics; validation panics are confined to WithX options.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is below the
// minimum accepted by the constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that core rejected a node or edge, or that a
// nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// constructErr wraps a core failure so both ErrConstructFailed and the core
// sentinel stay visible to errors.Is.
func constructErr(method, op string, err error) error {
	return fmt.Errorf("%s: %s: %w: %w", method, op, ErrConstructFailed, err)
}
