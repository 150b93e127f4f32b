// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ru

import (
	"testing"

	"github.com/rivetTDA/rivet-sub001/matrix"
)

// multiply returns r·u as a dense GF(2) boolean grid, for checking the
// R·U == B invariant in tests (§8: "test by explicit multiplication").
func multiply(r, u *matrix.Matrix) [][]bool {
	out := make([][]bool, r.NumRows())
	for i := range out {
		out[i] = make([]bool, u.NumCols())
	}
	for j := 0; j < u.NumCols(); j++ {
		for _, k := range u.Column(j) { // k ranges over rows of U with a 1 in column j
			for _, i := range r.Column(k) { // i ranges over rows of R with a 1 in column k
				out[i][j] = !out[i][j]
			}
		}
	}
	return out
}

func denseOf(m *matrix.Matrix) [][]bool {
	out := make([][]bool, m.NumRows())
	for i := range out {
		out[i] = make([]bool, m.NumCols())
	}
	for c := 0; c < m.NumCols(); c++ {
		for _, r := range m.Column(c) {
			out[r][c] = true
		}
	}
	return out
}

func gridEqual(a, b [][]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func distinctLows(m *matrix.Matrix) bool {
	seen := make(map[int]bool)
	for c := 0; c < m.NumCols(); c++ {
		if low := m.Low(c); low != matrix.NoLow {
			if seen[low] {
				return false
			}
			seen[low] = true
		}
	}
	return true
}

func TestReduceInvariants(t *testing.T) {
	t.Parallel()
	b := matrix.New(4, 4)
	// A boundary matrix with some shared lows, forcing real reductions.
	b.Set(0, 0)
	b.Set(1, 0)
	b.Set(0, 1)
	b.Set(2, 1)
	b.Set(1, 2)
	b.Set(2, 2)
	b.Set(3, 3)

	pair := Reduce(b)
	if !distinctLows(pair.R) {
		t.Error("reduced matrix should have pairwise distinct lows")
	}
	got := multiply(pair.R, pair.U)
	want := denseOf(b)
	if !gridEqual(got, want) {
		t.Errorf("R*U != B\nR*U=%v\nB=%v", got, want)
	}
}

func TestReduceAlreadyReduced(t *testing.T) {
	t.Parallel()
	b := matrix.New(3, 2)
	b.Set(0, 0)
	b.Set(1, 1)
	pair := Reduce(b)
	if got, want := pair.R.Low(0), 0; got != want {
		t.Errorf("Low(0) = %d, want %d", got, want)
	}
	if got, want := pair.R.Low(1), 1; got != want {
		t.Errorf("Low(1) = %d, want %d", got, want)
	}
}

// buildCase constructs a 3x3 low matrix (3 (d-1)-rows, 3 d-simplex
// columns) and a 3x2 high matrix (rows = the 3 d-simplices, 2
// (d+1)-simplex columns), reduces both, and returns the RU pairs.
func buildCase(lowCols [][]int, highCols [][]int) (low, high *Pair) {
	lb := matrix.New(3, len(lowCols))
	for c, rows := range lowCols {
		for _, r := range rows {
			lb.Set(r, c)
		}
	}
	hb := matrix.New(len(lowCols), len(highCols))
	for c, rows := range highCols {
		for _, r := range rows {
			hb.Set(r, c)
		}
	}
	return Reduce(lb), Reduce(hb)
}

func checkInvariants(t *testing.T, low, high *Pair) {
	t.Helper()
	if !distinctLows(low.R) {
		t.Error("low.R lost distinct lows")
	}
	if !distinctLows(high.R) {
		t.Error("high.R lost distinct lows")
	}
	for c := 0; c < low.U.NumCols(); c++ {
		for _, r := range low.U.Column(c) {
			if r > c {
				t.Errorf("low.U not upper-triangular: entry at row %d > col %d", r, c)
			}
		}
		if !low.U.Entry(c, c) {
			t.Errorf("low.U missing unit diagonal at %d", c)
		}
	}
	for c := 0; c < high.U.NumCols(); c++ {
		if !high.U.Entry(c, c) {
			t.Errorf("high.U missing unit diagonal at %d", c)
		}
	}
}

func TestTransposeAdjacentCase1BothPositive(t *testing.T) {
	t.Parallel()
	// Two positive (zero) low columns, neither paired in high.
	low, high := buildCase([][]int{nil, nil, {0}}, [][]int{{0}, {1}})
	TransposeAdjacent(low, high, 0)
	checkInvariants(t, low, high)
}

func TestTransposeAdjacentCase4PositiveNegative(t *testing.T) {
	t.Parallel()
	low, high := buildCase([][]int{nil, {0}, {0, 1}}, [][]int{{0}})
	TransposeAdjacent(low, high, 0)
	checkInvariants(t, low, high)
}

func TestTransposeAdjacentCase3NegativePositive(t *testing.T) {
	t.Parallel()
	low, high := buildCase([][]int{{0}, nil, {0, 1}}, [][]int{{0}})
	TransposeAdjacent(low, high, 0)
	checkInvariants(t, low, high)
}

func TestTransposeAdjacentCase2BothNegative(t *testing.T) {
	t.Parallel()
	low, high := buildCase([][]int{{0}, {0, 1}, {1}}, [][]int{{0}})
	TransposeAdjacent(low, high, 0)
	checkInvariants(t, low, high)
}
