// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rivetTDA/rivet-sub001/bigrade"
)

func TestSetClearEntry(t *testing.T) {
	t.Parallel()
	m := New(4, 2)
	if m.Entry(1, 0) {
		t.Fatal("new matrix should be all-zero")
	}
	m.Set(1, 0)
	m.Set(3, 0)
	if !m.Entry(1, 0) || !m.Entry(3, 0) {
		t.Fatal("expected entries set")
	}
	if diff := cmp.Diff([]int{3, 1}, m.Column(0)); diff != "" {
		t.Errorf("column mismatch (-want +got):\n%s", diff)
	}
	if got, want := m.Low(0), 3; got != want {
		t.Errorf("Low = %d, want %d", got, want)
	}
	m.Clear(3, 0)
	if m.Entry(3, 0) {
		t.Fatal("expected entry cleared")
	}
	if got, want := m.Low(0), 1; got != want {
		t.Errorf("Low after clear = %d, want %d", got, want)
	}
}

func TestIsEmptyAndNoLow(t *testing.T) {
	t.Parallel()
	m := New(3, 1)
	if !m.IsEmpty(0) {
		t.Fatal("expected empty column")
	}
	if got := m.Low(0); got != NoLow {
		t.Errorf("Low of empty column = %d, want NoLow", got)
	}
}

func TestAddColumnSymmetricDifference(t *testing.T) {
	t.Parallel()
	m := New(5, 2)
	for _, r := range []int{0, 2, 4} {
		m.Set(r, 0)
	}
	for _, r := range []int{2, 3} {
		m.Set(r, 1)
	}
	m.AddColumn(0, 1)
	if diff := cmp.Diff([]int{4, 3, 0}, m.Column(1)); diff != "" {
		t.Errorf("column 1 after add (-want +got):\n%s", diff)
	}
	// src unchanged
	if diff := cmp.Diff([]int{4, 2, 0}, m.Column(0)); diff != "" {
		t.Errorf("column 0 should be unchanged (-want +got):\n%s", diff)
	}
}

func TestSwapColumnsUpdatesLows(t *testing.T) {
	t.Parallel()
	m := New(3, 2)
	m.Set(1, 0)
	m.Set(2, 1)
	m.RebuildLows()
	if got := m.FindLow(1); got != 0 {
		t.Fatalf("FindLow(1) = %d, want 0", got)
	}
	m.SwapColumns(0, true)
	if got := m.FindLow(1); got != 1 {
		t.Errorf("after swap, FindLow(1) = %d, want 1", got)
	}
	if got := m.FindLow(2); got != 0 {
		t.Errorf("after swap, FindLow(2) = %d, want 0", got)
	}
	if diff := cmp.Diff([]int{2}, m.Column(0)); diff != "" {
		t.Errorf("column 0 after swap (-want +got):\n%s", diff)
	}
}

func TestSwapRows(t *testing.T) {
	t.Parallel()
	m := New(4, 2)
	m.Set(1, 0)
	m.Set(2, 1)
	m.Set(3, 1)
	m.RebuildLows()
	m.SwapRows(1, true)
	if !m.Entry(2, 0) || m.Entry(1, 0) {
		t.Error("expected row 1 to move to row 2 in column 0")
	}
	// column 1 has row 2 but not row 1, so the swap moves its entry to row 1
	if !m.Entry(1, 1) {
		t.Error("expected row 2 of column 1 to move to row 1")
	}
	if !m.Entry(3, 1) {
		t.Error("row 3 of column 1 should be untouched by swapping rows 1,2")
	}
}

func TestSwapRowsNoopWhenBothOrNeitherPresent(t *testing.T) {
	t.Parallel()
	m := New(4, 1)
	m.Set(0, 0)
	m.Set(1, 0)
	m.Set(2, 0)
	before := m.Column(0)
	m.SwapRows(0, false)
	if diff := cmp.Diff(before, m.Column(0)); diff != "" {
		t.Errorf("expected column unchanged when both rows present (-want +got):\n%s", diff)
	}
}

func TestColumnMeta(t *testing.T) {
	t.Parallel()
	m := New(2, 1)
	m.SetColumnMeta(0, 7, bigrade.Grade{X: 1, Y: 2})
	if m.DimIndex(0) != 7 {
		t.Errorf("DimIndex = %d, want 7", m.DimIndex(0))
	}
}
