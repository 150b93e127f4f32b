// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package betti computes the multigraded Betti numbers ξ₀ and ξ₁ of a
// bifiltered chain complex at every bigrade of its grid, by four
// interleaved bigraded reductions run over a firep.Firep (§4.D):
// nullity(∂_d), rank(∂_{d+1}), and the alpha/eta "spliced reduction"
// correction terms. ξ₂ is not produced here: it equals ξ₀ of the next
// homological degree, so callers running the engine across consecutive
// dimensions compose it themselves (see the xi package).
//
// Grounded on the sweep structure of BettiTest/math/multi_betti.cpp's
// compute_nullities/compute_ranks (the "first_row_lows vs
// current_lows, reset per new x-column" discipline, preserved exactly
// here) and compute_alpha (the spliced-reduction technique for item
// 3). compute_eta in that same file is flagged incomplete by its own
// authors (a stray "WAIT, THERE SHOULD NEVER BE ANYTHING TO DO
// HERE!!!!" sits at its first multigrade); rather than carry that
// uncertainty forward, Eta here is re-derived as the structural dual
// of Alpha — same Split, same spliced-reduction shape, Low and High
// swapping roles and Dup standing in for Merge. See DESIGN.md.
package betti

import (
	"github.com/rivetTDA/rivet-sub001/bigrade"
	"github.com/rivetTDA/rivet-sub001/firep"
	"github.com/rivetTDA/rivet-sub001/matrix"
)

// Result holds ξ₀ and ξ₁ over the full grade grid, indexed [x][y].
type Result struct {
	Xi0 [][]int
	Xi1 [][]int
}

// Compute runs the four reductions over f and returns ξ₀, ξ₁ at every
// bigrade of f's shared GradeSet.
func Compute(f *firep.Firep) *Result {
	nx, ny := f.Grades().NumX(), f.Grades().NumY()

	nullity := sweepNullity(f.Low, f.GetIndex(f.HomDim), nx, ny)
	rank := sweepRank(f.High, f.GetIndex(f.HomDim+1), nx, ny)
	alpha := sweepAlpha(f, nx, ny)
	eta := sweepEta(f, nx, ny)

	xi0 := make([][]int, nx)
	xi1 := make([][]int, nx)
	for x := 0; x < nx; x++ {
		xi0[x] = make([]int, ny)
		xi1[x] = make([]int, ny)
		for y := 0; y < ny; y++ {
			xi0[x][y] = nullity[x][y] - alpha[x][y]
			xi1[x][y] = rank[x][y] - alpha[x][y] - eta[x][y]
		}
	}
	return &Result{Xi0: xi0, Xi1: xi1}
}

// newLows returns a fresh "no column owns this row yet" low array for
// a matrix with the given number of rows.
func newLows(numRows int) []int {
	lows := make([]int, numRows)
	for i := range lows {
		lows[i] = matrix.NoLow
	}
	return lows
}

func cloneLows(lows []int) []int {
	out := make([]int, len(lows))
	copy(out, lows)
	return out
}

// reduceRange column-reduces m's columns in [lo, hi) against the
// external low array lows (shared across calls, unlike matrix's own
// lowToCol cache), returning how many became empty. lows is mutated in
// place to record the pivots this call establishes.
func reduceRange(m *matrix.Matrix, lows []int, lo, hi int) int {
	zero := 0
	for j := lo; j < hi; j++ {
		for {
			low := m.Low(j)
			if low == matrix.NoLow {
				break
			}
			owner := lows[low]
			if owner == matrix.NoLow {
				break
			}
			m.AddColumn(owner, j)
		}
		if low := m.Low(j); low != matrix.NoLow {
			lows[low] = j
		} else {
			zero++
		}
	}
	return zero
}

// reduceRangeAlso is reduceRange but mirrors every column addition onto
// mirror (same column indices), the "reduce_also" pattern used to track
// which combination of original columns produced each zero column.
func reduceRangeAlso(m, mirror *matrix.Matrix, lows []int, lo, hi int) int {
	zero := 0
	for j := lo; j < hi; j++ {
		for {
			low := m.Low(j)
			if low == matrix.NoLow {
				break
			}
			owner := lows[low]
			if owner == matrix.NoLow {
				break
			}
			m.AddColumn(owner, j)
			mirror.AddColumn(owner, j)
		}
		if low := m.Low(j); low != matrix.NoLow {
			lows[low] = j
		} else {
			zero++
		}
	}
	return zero
}

// sweepNullity computes, at every (x,y), the number of zero columns
// among m's columns with bigrade ≤ (x,y): grounded directly on
// compute_nullities's x-outer/y-inner sweep with its two-array
// discipline (first_row_lows persists across the whole x loop; each
// new x resets current_lows from it before walking up through y).
func sweepNullity(m *matrix.Matrix, idx *firep.IndexTable, nx, ny int) [][]int {
	grid := make([][]int, nx)
	for x := range grid {
		grid[x] = make([]int, ny)
	}
	if nx == 0 || ny == 0 {
		return grid
	}

	firstRowLows := newLows(m.NumRows())
	nullities := make([]int, ny)

	hi := idx.LastColumn(bigrade.Grade{X: 0, Y: 0}) + 1
	nullities[0] = reduceRange(m, firstRowLows, 0, hi)
	grid[0][0] = nullities[0]
	currentLows := cloneLows(firstRowLows)

	for y := 1; y < ny; y++ {
		lo := idx.LastColumn(bigrade.Grade{X: nx - 1, Y: y - 1}) + 1
		hi := idx.LastColumn(bigrade.Grade{X: 0, Y: y}) + 1
		zero := reduceRange(m, currentLows, lo, hi)
		nullities[y] = nullities[y-1] + zero
		grid[0][y] = nullities[y]
	}

	for x := 1; x < nx; x++ {
		lo := idx.LastColumn(bigrade.Grade{X: x - 1, Y: 0}) + 1
		hi := idx.LastColumn(bigrade.Grade{X: x, Y: 0}) + 1
		zero := reduceRange(m, firstRowLows, lo, hi)
		nullities[0] += zero
		grid[x][0] = nullities[0]
		currentLows = cloneLows(firstRowLows)

		for y := 1; y < ny; y++ {
			lo := idx.LastColumn(bigrade.Grade{X: nx - 1, Y: y - 1}) + 1
			hi := idx.LastColumn(bigrade.Grade{X: x, Y: y}) + 1
			zero := reduceRange(m, currentLows, lo, hi)
			nullities[y] = nullities[y-1] + zero
			grid[x][y] = nullities[y]
		}
	}
	return grid
}

// sweepRank is sweepNullity's analogue for rank(m) ≤ (x,y): rank equals
// column count minus nullity, tracked incrementally the same way
// (compute_ranks).
func sweepRank(m *matrix.Matrix, idx *firep.IndexTable, nx, ny int) [][]int {
	grid := make([][]int, nx)
	for x := range grid {
		grid[x] = make([]int, ny)
	}
	if nx == 0 || ny == 0 {
		return grid
	}

	firstRowLows := newLows(m.NumRows())
	ranks := make([]int, ny)

	hi := idx.LastColumn(bigrade.Grade{X: 0, Y: 0}) + 1
	zero := reduceRange(m, firstRowLows, 0, hi)
	ranks[0] = hi - zero
	grid[0][0] = ranks[0]
	currentLows := cloneLows(firstRowLows)

	for y := 1; y < ny; y++ {
		lo := idx.LastColumn(bigrade.Grade{X: nx - 1, Y: y - 1}) + 1
		hi := idx.LastColumn(bigrade.Grade{X: 0, Y: y}) + 1
		zero := reduceRange(m, currentLows, lo, hi)
		ranks[y] = ranks[y-1] + (hi - lo) - zero
		grid[0][y] = ranks[y]
	}

	for x := 1; x < nx; x++ {
		lo := idx.LastColumn(bigrade.Grade{X: x - 1, Y: 0}) + 1
		hi := idx.LastColumn(bigrade.Grade{X: x, Y: 0}) + 1
		zero := reduceRange(m, firstRowLows, lo, hi)
		ranks[0] += (hi - lo) - zero
		grid[x][0] = ranks[0]
		currentLows = cloneLows(firstRowLows)

		for y := 1; y < ny; y++ {
			lo := idx.LastColumn(bigrade.Grade{X: nx - 1, Y: y - 1}) + 1
			hi := idx.LastColumn(bigrade.Grade{X: x, Y: y}) + 1
			zero := reduceRange(m, currentLows, lo, hi)
			ranks[y] = ranks[y-1] + (hi - lo) - zero
			grid[x][y] = ranks[y]
		}
	}
	return grid
}

// sweepAlpha computes, at every (x,y): dim(Im(∂_{d+1}) +
// Im(Merge∘ker(∂_BC))), BC = Split(Low). Unlike the nullity/rank
// sweeps this recomputes from scratch per bigrade rather than carrying
// incremental state across both the BC and High reductions at once
// (see DESIGN.md for why); it is O(grid size × matrix size) rather
// than the amortized O(matrix size) of the original algorithm, a
// complexity tradeoff made for implementation clarity since this is
// never executed at a scale where it matters here.
func sweepAlpha(f *firep.Firep, nx, ny int) [][]int {
	s := f.Split(f.HomDim)
	high := f.GetBoundary(f.HomDim + 1)
	highIdx := f.GetIndex(f.HomDim + 1)

	grid := make([][]int, nx)
	for x := range grid {
		grid[x] = make([]int, ny)
	}
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			g := bigrade.Grade{X: x, Y: y}
			grid[x][y] = splicedDimension(high, highIdx, s.BC, s.Merge, s.Index, g)
		}
	}
	return grid
}

// sweepEta is sweepAlpha's structural dual: dim(Im(∂_d)) +
// dim(Im(Dup∘ker(∂_BC))), reusing the same Split(Low) (BC's row space
// is 2×Low.NumRows(); Dup duplicates a Low column into its BC image
// pair there).
func sweepEta(f *firep.Firep, nx, ny int) [][]int {
	s := f.Split(f.HomDim)
	low := f.GetBoundary(f.HomDim)
	lowIdx := f.GetIndex(f.HomDim)

	grid := make([][]int, nx)
	for x := range grid {
		grid[x] = make([]int, ny)
	}
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			g := bigrade.Grade{X: x, Y: y}
			grid[x][y] = splicedDimension(low, lowIdx, s.BC, s.Dup, s.Index, g)
		}
	}
	return grid
}

// splicedDimension computes dim(Im(primary) + Im(fold∘ker(secondary)))
// restricted to bigrade ≤ g: reduce secondary's columns with grade ≤ g
// (secondary's own grading, via secondaryIdx), mirroring every add onto
// fold; then build a fresh combined matrix from primary's columns with
// grade ≤ g plus fold's column for every zero column secondary's
// reduction produced, and reduce that; the result's nonzero-column
// count is the answer (grounded on compute_alpha's dim_dm formula:
// total generators minus zero columns of the joint reduction).
func splicedDimension(primary *matrix.Matrix, primaryIdx *firep.IndexTable, secondary, fold *matrix.Matrix, secondaryIdx *firep.IndexTable, g bigrade.Grade) int {
	secHi := secondaryIdx.LastColumn(g) + 1
	secCopy := secondary.Clone()
	foldCopy := fold.Clone()
	secLows := newLows(secCopy.NumRows())
	secZero := reduceRangeAlso(secCopy, foldCopy, secLows, 0, secHi)

	priHi := primaryIdx.LastColumn(g) + 1
	total := priHi + secZero
	combined := matrix.New(primary.NumRows(), total)
	for j := 0; j < priHi; j++ {
		for _, r := range primary.Column(j) {
			combined.Set(r, j)
		}
	}
	k := priHi
	for c := 0; c < secHi; c++ {
		if secCopy.IsEmpty(c) {
			for _, r := range foldCopy.Column(c) {
				combined.Set(r, k)
			}
			k++
		}
	}

	lows := newLows(combined.NumRows())
	zero := reduceRange(combined, lows, 0, total)
	return total - zero
}
