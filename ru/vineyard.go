// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ru

import "github.com/rivetTDA/rivet-sub001/matrix"

// TransposeAdjacent updates a pair of linked RU decompositions — low
// for ∂_d (columns are d-simplices) and high for ∂_{d+1} (rows are the
// same d-simplices, as columns of ∂_{d+1}'s boundary) — to reflect an
// adjacent transposition of the two d-simplices currently at positions
// a and a+1. Position a is simultaneously a column index into
// low.R/low.U and a row index into high.R; the two matrices are kept
// coupled by that shared index space.
//
// This is the mechanical case analysis of design §4.H.4: each
// generator at a, a+1 is classified positive (its low.R column is
// empty) or negative (nonempty), and one of four finite programs runs
// to restore R's reduced-ness, U's upper-unitriangular shape, and the
// invariant R·U equals the boundary matrix of the new order. It is the
// most delicate part of the whole pipeline; see DESIGN.md for the
// resolution of the places where spec.md's prose under-specifies exact
// step order (it explicitly authorizes deriving the correct behavior
// from the algebraic invariants rather than preserving any particular
// reference arithmetic verbatim).
func TransposeAdjacent(low, high *Pair, a int) {
	b := a + 1
	aPositive := low.R.IsEmpty(a)
	bPositive := low.R.IsEmpty(b)

	switch {
	case aPositive && bPositive:
		transposeCase1(low, high, a)
	case aPositive && !bPositive:
		transposeCase4(low, high, a)
	case !aPositive && bPositive:
		transposeCase3(low, high, a)
	default:
		transposeCase2(low, high, a)
	}
}

// transposeCase1 handles two positive (unpaired, creator) d-simplices.
// Swapping two empty low.R columns never disturbs R_low's reduced-ness,
// so the only work is in high.R: the two generators are rows a, b of
// high.R, and swapping those rows may break high.R's reduced-ness if
// both are "low" of some (d+1)-simplex's column (Case 1.1). U_low is
// conjugated by the transposition (rows and columns a, b swap); its
// [a,b] entry is cleared first, which leaves R_low·U_low unchanged
// because R_low's column a is empty.
func transposeCase1(low, high *Pair, a int) {
	b := a + 1
	k := high.R.FindLow(a)
	l := high.R.FindLow(b)
	if k != matrix.NoLow && l != matrix.NoLow && high.R.Entry(a, l) {
		high.R.SwapRows(a, true)
		if k < l {
			high.R.AddColumn(k, l)
			high.U.AddColumn(k, l)
		} else {
			high.R.AddColumn(l, k)
			high.U.AddColumn(l, k)
		}
	} else {
		high.R.SwapRows(a, true)
	}
	if low.U.Entry(a, b) {
		low.U.Clear(a, b)
	}
	low.R.SwapColumns(a, true)
	low.U.SwapRows(a, false)
	low.U.SwapColumns(a, true)
}

// transposeCase4 handles a positive, b negative: "a" becomes the later
// generator, "b" the earlier. U_low must have a zero in [row a, col b]
// before the low.R columns can swap cleanly; if it doesn't, row b is
// added into row a first.
func transposeCase4(low, high *Pair, a int) {
	b := a + 1
	if low.U.Entry(a, b) {
		low.U.AddRow(b, a)
	}
	low.R.SwapColumns(a, true)
	high.R.SwapRows(a, true)
	low.U.SwapRows(a, false)
	low.U.SwapColumns(a, false)
}

// transposeCase3 handles a negative, b positive. Whether low.R's
// columns physically swap depends on whether U_low[a,b] is already 1:
// if so, the pairing can be preserved purely by a U_low row-cancellation
// sequence, leaving R_low's content untouched (only the generator
// labels at a, b are exchanged, via SwapColumnLabels, so downstream
// bookkeeping still finds the right simplex at each position).
func transposeCase3(low, high *Pair, a int) {
	b := a + 1
	l := high.R.FindLow(b)
	updateLows := l != matrix.NoLow && high.R.Entry(a, l)
	high.R.SwapRows(a, updateLows)

	if low.U.Entry(a, b) {
		low.U.AddRow(b, a)
		low.U.SwapRows(a, false)
		low.U.AddRow(b, a)
		low.R.SwapColumnLabels(a)
	} else {
		low.R.SwapColumns(a, true)
		low.U.SwapRows(a, false)
	}
	low.U.SwapColumns(a, false)
}

// transposeCase2 handles a negative, b negative: both are already
// paired in low.R. high.R's rows swap unconditionally (without
// low-tracking, since neither row participates in high.R's pivot
// structure by virtue of being "negative" in low — that fact concerns
// low.R, not high.R's own lows). Whether low.R needs a column addition
// before the swap depends on U_low[a,b]. Like transposeCase3, it ends
// with an unconditional column swap of U_low (design §4.H.4's closing
// "for cases 2, 3, swap columns of U_low" refers to the two cases
// literally named Case 2 and Case 3 in that section's own
// parentheticals, not the two other list items).
func transposeCase2(low, high *Pair, a int) {
	b := a + 1
	high.R.SwapRows(a, false)

	if low.U.Entry(a, b) {
		low.U.AddRow(b, a)
		low.U.SwapRows(a, false)
		if low.R.Low(a) < low.R.Low(b) {
			low.R.AddColumn(a, b)
			low.R.SwapColumns(a, true)
		} else {
			low.R.AddColumn(a, b)
			low.R.SwapColumns(a, true)
			low.U.AddRow(b, a)
		}
	} else {
		low.R.SwapColumns(a, true)
		low.U.SwapRows(a, false)
	}
	low.U.SwapColumns(a, false)
}
