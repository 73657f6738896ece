// SPDX-License-Identifier: MIT
// Package: serenipy/builder
//
// street_fn.go - classification and lighting policies for generated streets.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/serenipy/core"
)

// Segment locates a generated edge. Line is the row index of a horizontal
// street or the column index of a vertical one; Index is the position of the
// segment along that line.
type Segment struct {
	Line       int
	Index      int
	Horizontal bool
}

// ClassFn picks the classification of a generated segment. It must be
// deterministic for a given rng state.
type ClassFn func(s Segment, rng *rand.Rand) core.Classification

// LitFn picks the lighting state of a generated segment.
type LitFn func(s Segment, rng *rand.Rand) core.Lit

// ConstantClass classifies every segment as c.
func ConstantClass(c core.Classification) ClassFn {
	return func(Segment, *rand.Rand) core.Classification { return c }
}

// ArterialEvery classifies every k-th line (0, k, 2k, ...) as arterial and
// everything else as local. Panics if k < 1.
func ArterialEvery(k int, arterial, local core.Classification) ClassFn {
	if k < 1 {
		panic(fmt.Sprintf("builder: ArterialEvery(k=%d) requires k ≥ 1", k))
	}

	return func(s Segment, _ *rand.Rand) core.Classification {
		if s.Line%k == 0 {
			return arterial
		}
		return local
	}
}

// RandomClass draws uniformly from classes. Without an RNG it returns the
// first class. Panics if classes is empty.
func RandomClass(classes ...core.Classification) ClassFn {
	if len(classes) == 0 {
		panic("builder: RandomClass needs at least one class")
	}
	pool := append([]core.Classification(nil), classes...)

	return func(_ Segment, rng *rand.Rand) core.Classification {
		if rng == nil {
			return pool[0]
		}
		return pool[rng.Intn(len(pool))]
	}
}

// ConstantLit marks every segment as l.
func ConstantLit(l core.Lit) LitFn {
	return func(Segment, *rand.Rand) core.Lit { return l }
}

// LitWithProbability lights each segment independently with probability p.
// Without an RNG the lighting state is reported as unknown.
// Panics if p is outside [0,1].
func LitWithProbability(p float64) LitFn {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("builder: LitWithProbability(p=%v) not in [0,1]", p))
	}

	return func(_ Segment, rng *rand.Rand) core.Lit {
		if rng == nil {
			return core.LitUnknown
		}
		if rng.Float64() < p {
			return core.LitYes
		}
		return core.LitNo
	}
}
