// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ru implements the RU decomposition (R = B·U⁻¹, R reduced,
// U upper-unitriangular) used by the persistence updater, and the
// vineyard case analysis that keeps a pair of RU decompositions valid
// under an adjacent transposition of two generators shared between
// them (the low-dimension boundary ∂_d and the high-dimension boundary
// ∂_{d+1}).
package ru

import "github.com/rivetTDA/rivet-sub001/matrix"

// Pair is an RU decomposition of a fixed bigraded boundary matrix: R is
// column-reduced (distinct lows across nonempty columns) and U is
// upper-unitriangular with R·U equal to the boundary matrix under the
// column order currently in force.
type Pair struct {
	R *matrix.Matrix
	U *matrix.Matrix
}

// Reduce computes the RU decomposition of B by standard left-to-right
// column reduction: for each column, repeatedly add the column that
// currently owns its low until either the column is empty or its low
// is unowned, mirroring column operations onto U so that R·U stays
// equal to B. B is not modified; R starts as a clone of it.
func Reduce(b *matrix.Matrix) *Pair {
	r := b.Clone()
	u := matrix.Identity(b.NumCols())
	for i := 0; i < b.NumRows(); i++ {
		r.SetLow(i, matrix.NoLow)
	}
	for j := 0; j < r.NumCols(); j++ {
		for {
			low := r.Low(j)
			if low == matrix.NoLow {
				break
			}
			owner := r.FindLow(low)
			if owner == matrix.NoLow || owner == j {
				break
			}
			r.AddColumn(owner, j)
			u.AddColumn(owner, j)
		}
		if low := r.Low(j); low != matrix.NoLow {
			r.SetLow(low, j)
		}
	}
	return &Pair{R: r, U: u}
}
