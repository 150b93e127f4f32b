// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package firep implements the Free Implicit REPresentation of a
// bifiltered chain complex (§4.C): two bigraded boundary matrices at
// adjacent dimensions, their per-bigrade index tables, and the
// "spliced" block-diagonal and split matrices the multigraded Betti
// engine needs for its alpha/eta reductions.
package firep

import (
	"fmt"

	"github.com/rivetTDA/rivet-sub001/bigrade"
	"github.com/rivetTDA/rivet-sub001/matrix"
)

// Generator describes one column to be inserted into a boundary
// matrix: its position among rows of the next lower dimension (the
// caller is expected to have already resolved face indices into row
// indices), its bigrade, and its dim_index (original position in the
// bifiltration, used only for stable tie-breaking and for tracing a
// reduced column back to a simplex).
type Generator struct {
	Grade    bigrade.Grade
	DimIndex int
	Rows     []int // boundary faces, as row indices into the lower-dimension generator list
}

// Firep is a bigraded free chain complex truncated to the two
// dimensions needed for one homological-degree computation: ∂_d
// (Low, hom_dim generators as columns) and ∂_{d+1} (High,
// hom_dim+1 generators as columns, rows = hom_dim generators = Low's
// columns).
type Firep struct {
	HomDim int

	Low  *matrix.Matrix
	High *matrix.Matrix

	lowIndex  *IndexTable
	highIndex *IndexTable

	grades *bigrade.GradeSet
}

// New builds a Firep from generator lists already sorted into the
// reverse-lexicographic bigrade order required by §3: lowGens are the
// hom_dim generators (columns of Low, rows of High); highGens are the
// hom_dim+1 generators (columns of High). numLowRows is the number of
// (hom_dim-1)-generators (rows of Low).
func New(grades *bigrade.GradeSet, homDim, numLowRows int, lowGens, highGens []Generator) (*Firep, error) {
	if err := checkSorted(lowGens); err != nil {
		return nil, fmt.Errorf("firep: low-dimension generators: %w", err)
	}
	if err := checkSorted(highGens); err != nil {
		return nil, fmt.Errorf("firep: high-dimension generators: %w", err)
	}

	low := matrix.New(numLowRows, len(lowGens))
	for c, g := range lowGens {
		if !grades.InRange(g.Grade) {
			return nil, fmt.Errorf("firep: low generator %d has out-of-range grade %v", c, g.Grade)
		}
		for _, r := range g.Rows {
			if r < 0 || r >= numLowRows {
				return nil, fmt.Errorf("firep: low generator %d references row %d out of [0,%d)", c, r, numLowRows)
			}
			low.Set(r, c)
		}
		low.SetColumnMeta(c, g.DimIndex, g.Grade)
	}

	high := matrix.New(len(lowGens), len(highGens))
	for c, g := range highGens {
		if !grades.InRange(g.Grade) {
			return nil, fmt.Errorf("firep: high generator %d has out-of-range grade %v", c, g.Grade)
		}
		for _, r := range g.Rows {
			if r < 0 || r >= len(lowGens) {
				return nil, fmt.Errorf("firep: high generator %d references row %d out of [0,%d)", c, r, len(lowGens))
			}
			high.Set(r, c)
		}
		high.SetColumnMeta(c, g.DimIndex, g.Grade)
	}

	f := &Firep{
		HomDim: homDim,
		Low:    low,
		High:   high,
		grades: grades,
	}
	f.lowIndex = buildIndexTable(grades, low)
	f.highIndex = buildIndexTable(grades, high)
	return f, nil
}

func checkSorted(gens []Generator) error {
	for i := 1; i < len(gens); i++ {
		if bigrade.Less(gens[i].Grade, gens[i-1].Grade) {
			return fmt.Errorf("generator %d (grade %v) sorts before generator %d (grade %v)", i, gens[i].Grade, i-1, gens[i-1].Grade)
		}
	}
	return nil
}

// Grades returns the grade vectors shared by every dimension of this
// complex.
func (f *Firep) Grades() *bigrade.GradeSet { return f.grades }

// GetBoundary returns the boundary matrix at dimension dim, which must
// be f.HomDim or f.HomDim+1 (§4.C get_boundary).
func (f *Firep) GetBoundary(dim int) *matrix.Matrix {
	switch dim {
	case f.HomDim:
		return f.Low
	case f.HomDim + 1:
		return f.High
	default:
		panic(fmt.Sprintf("firep: dimension %d is neither hom_dim (%d) nor hom_dim+1", dim, f.HomDim))
	}
}

// GetIndex returns the index table at dimension dim (§4.C get_index).
func (f *Firep) GetIndex(dim int) *IndexTable {
	switch dim {
	case f.HomDim:
		return f.lowIndex
	case f.HomDim + 1:
		return f.highIndex
	default:
		panic(fmt.Sprintf("firep: dimension %d is neither hom_dim (%d) nor hom_dim+1", dim, f.HomDim))
	}
}

// IndexTable maps a bigrade to the last column index (in the matrix it
// was built from) whose own bigrade is ≤ the query bigrade in the
// product order, giving O(1) retrieval of "the column range for each
// bigrade" (§3). A value of -1 means no column qualifies.
type IndexTable struct {
	nx, ny int
	last   []int // row-major [y*nx+x], last column index with grade <= (x,y)

	exactFirst []int // row-major [y*nx+x], first column index with grade exactly (x,y), or -1
	exactLast  []int // row-major [y*nx+x], last column index with grade exactly (x,y), or -1
}

func buildIndexTable(grades *bigrade.GradeSet, m *matrix.Matrix) *IndexTable {
	return buildIndexTableDims(grades.NumX(), grades.NumY(), m)
}

// buildIndexTableDims is buildIndexTable without requiring a GradeSet,
// for matrices (like a Split's BC) whose columns range over an
// extended grid the original GradeSet doesn't cover.
func buildIndexTableDims(nx, ny int, m *matrix.Matrix) *IndexTable {
	it := &IndexTable{
		nx:         nx,
		ny:         ny,
		last:       make([]int, nx*ny),
		exactFirst: make([]int, nx*ny),
		exactLast:  make([]int, nx*ny),
	}
	for i := range it.last {
		it.last[i] = -1
		it.exactFirst[i] = -1
		it.exactLast[i] = -1
	}
	inRange := func(g bigrade.Grade) bool {
		return g.X >= 0 && g.X < nx && g.Y >= 0 && g.Y < ny
	}
	for c := 0; c < m.NumCols(); c++ {
		g := m.Grade(c)
		if inRange(g) {
			idx := g.Y*nx + g.X
			if it.exactFirst[idx] == -1 {
				it.exactFirst[idx] = c
			}
			it.exactLast[idx] = c
		}
	}
	// 2D prefix maximum: last(x,y) = max(exactLast(x,y), last(x-1,y), last(x,y-1)).
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			idx := y*nx + x
			best := it.exactLast[idx]
			if x > 0 && it.last[idx-1] > best {
				best = it.last[idx-1]
			}
			if y > 0 && it.last[idx-nx] > best {
				best = it.last[idx-nx]
			}
			it.last[idx] = best
		}
	}
	return it
}

// LastColumn returns the last column index with bigrade ≤ g, or -1 if
// none exists.
func (it *IndexTable) LastColumn(g bigrade.Grade) int {
	if g.X < 0 || g.Y < 0 {
		return -1
	}
	x, y := g.X, g.Y
	if x >= it.nx {
		x = it.nx - 1
	}
	if y >= it.ny {
		y = it.ny - 1
	}
	return it.last[y*it.nx+x]
}

// ColumnRange returns the half-open column range [lo, hi) of columns
// whose bigrade equals g exactly; lo==hi if no column has that grade.
func (it *IndexTable) ColumnRange(g bigrade.Grade) (lo, hi int) {
	if g.X < 0 || g.X >= it.nx || g.Y < 0 || g.Y >= it.ny {
		return 0, 0
	}
	idx := g.Y*it.nx + g.X
	first := it.exactFirst[idx]
	if first == -1 {
		return 0, 0
	}
	return first, it.exactLast[idx] + 1
}
