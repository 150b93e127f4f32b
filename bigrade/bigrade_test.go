// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigrade

import (
	"math/big"
	"testing"
)

func rats(vs ...int64) []*big.Rat {
	out := make([]*big.Rat, len(vs))
	for i, v := range vs {
		out[i] = big.NewRat(v, 1)
	}
	return out
}

func TestGradeLessEqualAndComparable(t *testing.T) {
	t.Parallel()
	cases := []struct {
		g, h       Grade
		leq, cmp   bool
	}{
		{Grade{0, 0}, Grade{1, 1}, true, true},
		{Grade{1, 0}, Grade{0, 1}, false, false},
		{Grade{2, 2}, Grade{2, 2}, true, true},
		{Grade{3, 0}, Grade{3, 5}, true, true},
	}
	for _, c := range cases {
		if got := c.g.LessEqual(c.h); got != c.leq {
			t.Errorf("%v.LessEqual(%v) = %v, want %v", c.g, c.h, got, c.leq)
		}
		if got := c.g.Comparable(c.h); got != c.cmp {
			t.Errorf("%v.Comparable(%v) = %v, want %v", c.g, c.h, got, c.cmp)
		}
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()
	if got, want := Join(Grade{0, 1}, Grade{1, 0}), (Grade{1, 1}); got != want {
		t.Errorf("Join = %v, want %v", got, want)
	}
}

func TestLessReverseLex(t *testing.T) {
	t.Parallel()
	if !Less(Grade{X: 5, Y: 0}, Grade{X: 0, Y: 1}) {
		t.Error("expected lower y to sort first regardless of x")
	}
	if !Less(Grade{X: 0, Y: 1}, Grade{X: 1, Y: 1}) {
		t.Error("expected lower x to sort first within equal y")
	}
	if Less(Grade{X: 1, Y: 1}, Grade{X: 1, Y: 1}) {
		t.Error("equal grades must not be Less than themselves")
	}
}

func TestNewGradeSetRejectsNonIncreasing(t *testing.T) {
	t.Parallel()
	if _, err := NewGradeSet(rats(0, 1, 1), rats(0, 1, 2)); err == nil {
		t.Error("expected error for non-strictly-increasing x grades")
	}
	if _, err := NewGradeSet(rats(0, 2, 1), rats(0, 1, 2)); err == nil {
		t.Error("expected error for decreasing x grades")
	}
}

func TestGradeSetAccessors(t *testing.T) {
	t.Parallel()
	gs, err := NewGradeSet(rats(0, 1, 4), rats(-2, 0, 3))
	if err != nil {
		t.Fatalf("NewGradeSet: %v", err)
	}
	if gs.NumX() != 3 || gs.NumY() != 3 {
		t.Fatalf("NumX/NumY = %d,%d, want 3,3", gs.NumX(), gs.NumY())
	}
	if gs.X(2).Cmp(big.NewRat(4, 1)) != 0 {
		t.Errorf("X(2) = %v, want 4", gs.X(2))
	}
	if !gs.InRange(Grade{2, 2}) {
		t.Error("expected (2,2) in range")
	}
	if gs.InRange(Grade{3, 0}) {
		t.Error("expected (3,0) out of range")
	}
}
