// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix implements the sparse GF(2) column-major matrix that
// underlies every reduction in the RIVET pipeline: boundary matrices,
// their RU decompositions, and the spliced matrices used by the
// multigraded Betti engine. A column is a strictly descending sequence
// of row indices (its nonzero entries); the largest index is the
// column's "low". This mirrors the original implementation's MapMatrix
// (a vector of linked lists, one per column, entries ordered so the
// "low" is found in O(1)) reexpressed as Go slices, which make the
// symmetric-difference column add a straightforward merge.
package matrix

import (
	"fmt"
	"sort"

	"github.com/rivetTDA/rivet-sub001/bigrade"
)

// NoLow is the sentinel "low" value of an empty column, called ⊥ in
// the design document.
const NoLow = -1

// Matrix is a sparse, column-major GF(2) matrix supporting the column
// and row operations needed for reduction and vineyard updates. The
// zero value is not usable; construct with New.
type Matrix struct {
	numRows int
	cols    []column

	// lowToCol maps a row index to the column whose low is that row,
	// or NoLow if no such column is tracked. It is maintained only
	// when callers pass updateLows=true to the mutating operations;
	// callers that reorder columns without reduction invariants (e.g.
	// before a matrix is reduced) may skip the bookkeeping.
	lowToCol []int
}

// column is one sparse GF(2) column: row indices in strictly
// descending order. dimIndex is the simplex's original position within
// its dimension in the bifiltration; grade is its bigrade. Both travel
// with the column through every swap and add so that, after reduction,
// a column can still be traced back to the simplex it represents.
type column struct {
	rows     []int
	dimIndex int
	grade    bigrade.Grade
}

func (c column) low() int {
	if len(c.rows) == 0 {
		return NoLow
	}
	return c.rows[0]
}

// New returns a numRows x numCols all-zero matrix.
func New(numRows, numCols int) *Matrix {
	m := &Matrix{
		numRows:  numRows,
		cols:     make([]column, numCols),
		lowToCol: make([]int, numRows),
	}
	for i := range m.lowToCol {
		m.lowToCol[i] = NoLow
	}
	return m
}

// Identity returns the n x n identity matrix, suitable as the initial
// U of an RU decomposition.
func Identity(n int) *Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i)
	}
	m.RebuildLows()
	return m
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		numRows:  m.numRows,
		cols:     make([]column, len(m.cols)),
		lowToCol: make([]int, len(m.lowToCol)),
	}
	for i, c := range m.cols {
		rows := make([]int, len(c.rows))
		copy(rows, c.rows)
		out.cols[i] = column{rows: rows, dimIndex: c.dimIndex, grade: c.grade}
	}
	copy(out.lowToCol, m.lowToCol)
	return out
}

// NumRows returns the number of rows.
func (m *Matrix) NumRows() int { return m.numRows }

// NumCols returns the number of columns.
func (m *Matrix) NumCols() int { return len(m.cols) }

// SetColumnMeta records the dim_index and bigrade of column c. Called
// once, while the matrix is being built from a bifiltration.
func (m *Matrix) SetColumnMeta(c, dimIndex int, grade bigrade.Grade) {
	m.cols[c].dimIndex = dimIndex
	m.cols[c].grade = grade
}

// DimIndex returns the dim_index recorded for column c.
func (m *Matrix) DimIndex(c int) int { return m.cols[c].dimIndex }

// Grade returns the bigrade recorded for column c.
func (m *Matrix) Grade(c int) bigrade.Grade { return m.cols[c].grade }

// IsEmpty reports whether column c has no nonzero entries.
func (m *Matrix) IsEmpty(c int) bool { return len(m.cols[c].rows) == 0 }

// Low returns the low (largest nonzero row index) of column c, or
// NoLow if the column is empty.
func (m *Matrix) Low(c int) int { return m.cols[c].low() }

// Entry reports whether row r, column c holds a 1.
func (m *Matrix) Entry(r, c int) bool {
	rows := m.cols[c].rows
	i := sort.Search(len(rows), func(i int) bool { return rows[i] <= r })
	return i < len(rows) && rows[i] == r
}

// Set sets row r, column c to 1.
func (m *Matrix) Set(r, c int) {
	if m.Entry(r, c) {
		return
	}
	rows := m.cols[c].rows
	i := sort.Search(len(rows), func(i int) bool { return rows[i] <= r })
	rows = append(rows, 0)
	copy(rows[i+1:], rows[i:])
	rows[i] = r
	m.cols[c].rows = rows
}

// Clear sets row r, column c to 0.
func (m *Matrix) Clear(r, c int) {
	rows := m.cols[c].rows
	i := sort.Search(len(rows), func(i int) bool { return rows[i] <= r })
	if i >= len(rows) || rows[i] != r {
		return
	}
	m.cols[c].rows = append(rows[:i], rows[i+1:]...)
}

// FindLow returns the unique column whose low is row r, according to
// the lowToCol index built by the most recent updateLows=true
// operation, or NoLow if none is tracked. Callers are responsible for
// keeping this index coherent: it is a cache, not recomputed from the
// columns on every call.
func (m *Matrix) FindLow(r int) int { return m.lowToCol[r] }

// SetLow records that column c has low r in the lowToCol cache,
// without touching the column's data. Used when building the initial
// RU decomposition and in vineyard case analysis where the cache must
// be updated independently of a structural change.
func (m *Matrix) SetLow(r, c int) {
	if r == NoLow {
		return
	}
	m.lowToCol[r] = c
}

// ClearLowEntry removes row r from the lowToCol cache if it currently
// points at col.
func (m *Matrix) ClearLowEntry(r, col int) {
	if r == NoLow {
		return
	}
	if m.lowToCol[r] == col {
		m.lowToCol[r] = NoLow
	}
}

// RebuildLows recomputes the lowToCol cache from scratch by scanning
// every column's current low. Used after bulk reordering (e.g.
// reindexing columns for a fresh sweep position) where incremental
// maintenance would be more error-prone than a clean rebuild.
func (m *Matrix) RebuildLows() {
	for i := range m.lowToCol {
		m.lowToCol[i] = NoLow
	}
	for c := range m.cols {
		if low := m.cols[c].low(); low != NoLow {
			m.lowToCol[low] = c
		}
	}
}

// AddColumn performs dst ← dst ⊕ src (symmetric difference of the row
// sets), leaving src unchanged. It is linear in len(src)+len(dst).
func (m *Matrix) AddColumn(src, dst int) {
	m.cols[dst].rows = symmetricDifference(m.cols[src].rows, m.cols[dst].rows)
}

func symmetricDifference(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] > b[j]:
			out = append(out, a[i])
			i++
		case a[i] < b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// AddRow performs row dst ← row dst ⊕ row src across every column: an
// elementary row operation used by the vineyard case analysis to
// restore U's upper-unitriangular shape (e.g. clearing U[a,b] by
// adding row b into row a). It touches every column, unlike AddColumn
// which only touches one; row operations are rare enough in the
// vineyard update (a handful per transposition) that this is not a
// performance concern.
func (m *Matrix) AddRow(src, dst int) {
	for c := range m.cols {
		if m.hasRow(m.cols[c].rows, src) {
			if m.hasRow(m.cols[c].rows, dst) {
				m.Clear(dst, c)
			} else {
				m.Set(dst, c)
			}
		}
	}
}

// SwapColumns exchanges the adjacent columns i and i+1. If updateLows
// is true, the lowToCol cache is updated to reflect the new column
// indices of whichever lows moved.
func (m *Matrix) SwapColumns(i int, updateLows bool) {
	if i < 0 || i+1 >= len(m.cols) {
		panic(fmt.Sprintf("matrix: swap index %d out of range for %d columns", i, len(m.cols)))
	}
	if updateLows {
		if low := m.cols[i].low(); low != NoLow && m.lowToCol[low] == i {
			m.lowToCol[low] = i + 1
		}
		if low := m.cols[i+1].low(); low != NoLow && m.lowToCol[low] == i+1 {
			m.lowToCol[low] = i
		}
	}
	m.cols[i], m.cols[i+1] = m.cols[i+1], m.cols[i]
}

// SwapRows exchanges rows r and r+1 in every column. If updateLows is
// true, the lowToCol cache is adjusted for any column whose low was
// exactly r or r+1 (a row swap can only change which of the two rows
// is the pivot, never promote some other row to pivot, since the
// swapped rows are adjacent).
func (m *Matrix) SwapRows(r int, updateLows bool) {
	if r < 0 || r+1 >= m.numRows {
		panic(fmt.Sprintf("matrix: row swap index %d out of range for %d rows", r, m.numRows))
	}
	for c := range m.cols {
		rows := m.cols[c].rows
		hasR := m.hasRow(rows, r)
		hasR1 := m.hasRow(rows, r+1)
		if hasR == hasR1 {
			continue // both or neither present: swapping changes nothing
		}
		if hasR {
			m.cols[c].rows = replaceRow(rows, r, r+1)
		} else {
			m.cols[c].rows = replaceRow(rows, r+1, r)
		}
	}
	if updateLows {
		oldR, oldR1 := m.lowToCol[r], m.lowToCol[r+1]
		m.lowToCol[r], m.lowToCol[r+1] = oldR1, oldR
	}
}

func (m *Matrix) hasRow(rows []int, r int) bool {
	i := sort.Search(len(rows), func(i int) bool { return rows[i] <= r })
	return i < len(rows) && rows[i] == r
}

// replaceRow removes "from" and inserts "to" into a descending-sorted
// row slice, returning the updated slice.
func replaceRow(rows []int, from, to int) []int {
	i := sort.Search(len(rows), func(i int) bool { return rows[i] <= from })
	rows = append(rows[:i], rows[i+1:]...)
	j := sort.Search(len(rows), func(i int) bool { return rows[i] <= to })
	rows = append(rows, 0)
	copy(rows[j+1:], rows[j:])
	rows[j] = to
	return rows
}

// SwapColumnLabels exchanges only the dim_index/bigrade metadata of
// the adjacent columns i, i+1, leaving their row data and the lowToCol
// cache untouched. Some vineyard cases reindex which generator sits at
// a position without changing the reduced matrix's content at that
// position (see ru.TransposeAdjacent, case 3); this lets the caller
// keep the generator-identity bookkeeping correct in that situation
// without disturbing R.
func (m *Matrix) SwapColumnLabels(i int) {
	m.cols[i].dimIndex, m.cols[i+1].dimIndex = m.cols[i+1].dimIndex, m.cols[i].dimIndex
	m.cols[i].grade, m.cols[i+1].grade = m.cols[i+1].grade, m.cols[i].grade
}

// Column returns a copy of the nonzero row indices of column c, in
// descending order. Intended for tests and debugging; hot paths should
// use Entry/Low/IsEmpty instead of materializing a slice.
func (m *Matrix) Column(c int) []int {
	out := make([]int, len(m.cols[c].rows))
	copy(out, m.cols[c].rows)
	return out
}
