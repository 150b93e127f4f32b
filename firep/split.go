// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package firep

import (
	"sort"

	"github.com/rivetTDA/rivet-sub001/bigrade"
	"github.com/rivetTDA/rivet-sub001/matrix"
)

// Split is the result of splicing a boundary matrix's n generators
// into two shifted copies B (shifted one step in x) and C (shifted one
// step in y), as used by both halves of the Betti engine's item 3/4
// reductions (§4.D): BC is the block-diagonal boundary of B⊕C, with
// its columns re-sorted into the single reverse-lex order its own
// shifted bigrades induce (B's and C's columns interleave; they are
// not kept as two contiguous blocks), and Index is BC's index table
// over the one-larger grid the shift can reach.
//
// Merge (n×2n) folds a column's B- and C-images back to the one
// original generator, so Merge∘ker(∂_BC) composes with ∂_{d+1} into
// alpha(d)'s shared n-dimensional space. Dup (2n×n), Merge's
// structural transpose, duplicates a generator into its B,C images, so
// Dup∘ker(∂_d) composes with ∂_BC into eta(d)'s shared 2n-dimensional
// space — the two reductions share one Split because both draw on the
// same underlying shift of the same n generators.
type Split struct {
	BC    *matrix.Matrix
	Merge *matrix.Matrix // n x 2n: folds a BC column pair back to one D generator (alpha's use)
	Dup   *matrix.Matrix // 2n x n: duplicates a D generator into its BC column pair (eta's use)
	Index *IndexTable
}

// splitEntry is one pending column of the B⊕C splice before sorting:
// its final row set (already offset into the 2*rows row space), the
// generator it folds back to in Merge, and its shifted bigrade.
type splitEntry struct {
	rows     []int
	dimIndex int
	grade    bigrade.Grade
	foldTo   int // row of Merge this column maps to
}

// buildSplit constructs the B⊕C splice of m's generators (columns),
// shifting B's copy by (1,0) and C's copy by (0,1), then sorting the
// 2*m.NumCols() resulting columns into one reverse-lex order so that
// an IndexTable over the shifted grid can answer range queries the
// way it does for any other boundary matrix.
func (f *Firep) buildSplit(m *matrix.Matrix) *Split {
	rows, cols := m.NumRows(), m.NumCols()
	entries := make([]splitEntry, 0, 2*cols)
	for c := 0; c < cols; c++ {
		g := m.Grade(c)
		bRows := append([]int(nil), m.Column(c)...)
		entries = append(entries, splitEntry{rows: bRows, dimIndex: m.DimIndex(c), grade: bigradeShift(g, 1, 0), foldTo: c})

		cRows := make([]int, len(m.Column(c)))
		for i, r := range m.Column(c) {
			cRows[i] = rows + r
		}
		entries = append(entries, splitEntry{rows: cRows, dimIndex: m.DimIndex(c), grade: bigradeShift(g, 0, 1), foldTo: c})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return bigrade.Less(entries[i].grade, entries[j].grade)
	})

	bc := matrix.New(2*rows, len(entries))
	merge := matrix.New(cols, len(entries))
	dup := matrix.New(len(entries), cols)
	for j, e := range entries {
		for _, r := range e.rows {
			bc.Set(r, j)
		}
		bc.SetColumnMeta(j, e.dimIndex, e.grade)
		merge.Set(e.foldTo, j)
		dup.Set(j, e.foldTo)
	}

	nx, ny := f.grades.NumX()+1, f.grades.NumY()+1
	return &Split{BC: bc, Merge: merge, Dup: dup, Index: buildIndexTableDims(nx, ny, bc)}
}

// bigradeShift returns g shifted by (dx, dy). Shifted grades are used
// only as internal bookkeeping within a Split and are never looked up
// in the shared GradeSet, so they may legitimately fall outside its
// grid.
func bigradeShift(g bigrade.Grade, dx, dy int) bigrade.Grade {
	return bigrade.Grade{X: g.X + dx, Y: g.Y + dy}
}

// Split returns the B⊕C splice of this complex's dimension-dim
// generators, for use by the Betti engine's alpha/eta sweeps.
func (f *Firep) Split(dim int) *Split {
	return f.buildSplit(f.GetBoundary(dim))
}
