// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigrade provides the discrete and exact-rational coordinate
// types shared by every stage of a two-parameter persistence computation:
// the bigrade (x, y) of a simplex, the strictly increasing grade vectors
// that translate discrete indices into real values, and the reverse-
// lexicographic order used to sort bigraded columns.
package bigrade

import (
	"fmt"
	"math/big"
)

// Grade is a discrete bigrade: a pair of indices into a GradeSet's x and
// y vectors. The zero value (0, 0) is a valid bigrade.
type Grade struct {
	X, Y int
}

// LessEqual reports whether g is componentwise less than or equal to h,
// the product (dominance) order used throughout the bifiltration.
func (g Grade) LessEqual(h Grade) bool {
	return g.X <= h.X && g.Y <= h.Y
}

// Comparable reports whether g and h are ordered by the product order,
// i.e. one is LessEqual the other. Two bigrades that are each other's
// join candidates but neither LessEqual the other are "incomparable".
func (g Grade) Comparable(h Grade) bool {
	return g.LessEqual(h) || h.LessEqual(g)
}

// Join returns the componentwise maximum of g and h, the least upper
// bound of {g, h} in the product order.
func Join(g, h Grade) Grade {
	x, y := g.X, g.Y
	if h.X > x {
		x = h.X
	}
	if h.Y > y {
		y = h.Y
	}
	return Grade{X: x, Y: y}
}

// Less implements the reverse-lexicographic order on bigrades used to
// sort bigraded matrix columns: (y1,x1) < (y2,x2) iff y1<y2, or y1==y2
// and x1<x2.
func Less(a, b Grade) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func (g Grade) String() string {
	return fmt.Sprintf("(%d,%d)", g.X, g.Y)
}

// GradeSet holds the strictly increasing, exact-rational x- and
// y-grade vectors that give discrete bigrades their real-valued
// meaning. Per §9 of the design notes, all coordinates that feed
// exact comparisons (arrangement construction, anchor intersection)
// are derived from these big.Rat values rather than from float64, so
// that crossing order is never decided by floating-point epsilon
// tie-breaks; float64 is reserved for the final rescale step exposed
// to callers.
type GradeSet struct {
	x, y []*big.Rat
}

// NewGradeSet validates that x and y are each strictly increasing and
// returns a GradeSet over them. The slices are copied; the caller may
// reuse or mutate its own slices afterward.
func NewGradeSet(x, y []*big.Rat) (*GradeSet, error) {
	if err := checkStrictlyIncreasing(x); err != nil {
		return nil, fmt.Errorf("x grades: %w", err)
	}
	if err := checkStrictlyIncreasing(y); err != nil {
		return nil, fmt.Errorf("y grades: %w", err)
	}
	gs := &GradeSet{x: make([]*big.Rat, len(x)), y: make([]*big.Rat, len(y))}
	copy(gs.x, x)
	copy(gs.y, y)
	return gs, nil
}

func checkStrictlyIncreasing(v []*big.Rat) error {
	for i := 1; i < len(v); i++ {
		if v[i-1].Cmp(v[i]) >= 0 {
			return fmt.Errorf("value at index %d (%s) is not strictly greater than value at index %d (%s)", i, v[i], i-1, v[i-1])
		}
	}
	return nil
}

// NumX returns the number of x-grades.
func (gs *GradeSet) NumX() int { return len(gs.x) }

// NumY returns the number of y-grades.
func (gs *GradeSet) NumY() int { return len(gs.y) }

// X returns the exact value of the i'th x-grade.
func (gs *GradeSet) X(i int) *big.Rat { return gs.x[i] }

// Y returns the exact value of the i'th y-grade.
func (gs *GradeSet) Y(i int) *big.Rat { return gs.y[i] }

// XFloat64 returns the i'th x-grade as a float64, for display and
// query rescaling only — never for combinatorial comparisons.
func (gs *GradeSet) XFloat64(i int) float64 {
	f, _ := gs.x[i].Float64()
	return f
}

// YFloat64 returns the i'th y-grade as a float64, for display and
// query rescaling only — never for combinatorial comparisons.
func (gs *GradeSet) YFloat64(i int) float64 {
	f, _ := gs.y[i].Float64()
	return f
}

// InRange reports whether g's indices are within the bounds of gs.
func (gs *GradeSet) InRange(g Grade) bool {
	return g.X >= 0 && g.X < len(gs.x) && g.Y >= 0 && g.Y < len(gs.y)
}
