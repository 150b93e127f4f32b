// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package updater is the persistence updater (§4.H): it holds the live
// RU decompositions over the current column order, replays the path
// planner's half-edge sequence as vineyard column moves, and writes a
// barcode template into each 2-cell on first visit. A single Firep
// models two adjacent homological dimensions (∂_d, ∂_{d+1}); the
// updater's column reordering therefore only ever moves d-simplices
// (the shared index space between Low's columns and High's rows, per
// ru.TransposeAdjacent's own doc comment) — moving (d+1)-simplices
// among themselves would need a third boundary matrix ∂_{d+2} outside
// a single Firep's scope, and is out of scope here (see DESIGN.md).
package updater

import (
	"sort"

	"github.com/rivetTDA/rivet-sub001/arrangement"
	"github.com/rivetTDA/rivet-sub001/bigrade"
	"github.com/rivetTDA/rivet-sub001/firep"
	"github.com/rivetTDA/rivet-sub001/matrix"
	"github.com/rivetTDA/rivet-sub001/ru"
	"github.com/rivetTDA/rivet-sub001/xi"
)

// classHead is the mutable bookkeeping §4.H.1 attaches to one
// equivalence class of the column-order partition: the ξ-support
// entry it belongs to (nil for the sentinel "∞" class holding
// generators with no support weakly above them), and the class-size
// and own-count statistics. The statistics are recorded once by
// buildPartition; the merges and splits of Cross do not update them.
type classHead struct {
	support                      *xi.Support
	lowIndex, highIndex          int // last column index of the class, -1 if empty
	lowClassSize, highClassSize  int
	lowCount, highCount          int
}

// State is the live persistence-updater state: the RU pairs over the
// current column order, the order itself, and the two equivalence-
// class partitions (§4.H.1).
type State struct {
	f    *firep.Firep
	sm   *xi.Matrix
	arr  *arrangement.DCEL

	order    []int // order[pos] = original dim_index of the d-simplex at pos
	classes  []*classHead
	byHead   map[*xi.Support]*classHead

	// origOwner[origDimIndex] is the ξ-support entry that generator
	// mapped to at initialization (§4.H.2); unlike classes, which
	// tracks the *current* merged head, this never changes, so it is
	// what lets a later strict-supported crossing (§4.H.3) recover
	// which columns of a merged class came from which generator.
	origOwner []*xi.Support

	Low  *ru.Pair
	High *ru.Pair

	infinity *classHead

	highOwnersCache []*classHead
}

// New builds the initial persistence-updater state (§4.H.2): orders
// the d-simplices by the ξ-support entry their bigrade maps to at the
// initial "far right, near vertical" line, reduces both boundaries to
// RU under that order, and partitions the columns into classes headed
// by their owning support (or the sentinel ∞ class).
func New(f *firep.Firep, sm *xi.Matrix, arr *arrangement.DCEL) *State {
	n := f.Low.NumCols()
	gens := make([]int, n)
	for i := range gens {
		gens[i] = i
	}
	owner := make([]*xi.Support, n)
	for c := 0; c < n; c++ {
		owner[c] = nearestSupportAbove(sm, f.Low.Grade(c))
	}
	sort.SliceStable(gens, func(a, b int) bool {
		ca, cb := gens[a], gens[b]
		ia, ib := supportOrderKey(owner[ca]), supportOrderKey(owner[cb])
		if ia != ib {
			return ia < ib
		}
		ga, gb := f.Low.Grade(ca), f.Low.Grade(cb)
		if ga != gb {
			return bigrade.Less(gb, ga) // reverse-lex: descending within a class
		}
		return f.Low.DimIndex(ca) < f.Low.DimIndex(cb)
	})

	lowReordered := reorderColumns(f.Low, gens)
	highReordered := reorderRows(f.High, gens)

	s := &State{
		f:         f,
		sm:        sm,
		arr:       arr,
		order:     gens,
		origOwner: owner,
		Low:       ru.Reduce(lowReordered),
		High:      ru.Reduce(highReordered),
		infinity:  &classHead{lowIndex: -1, highIndex: -1},
	}
	s.buildPartition(owner)
	if arr != nil {
		s.WriteTemplate(arr.TopFace)
	}
	return s
}

// supportOrderKey gives nil (the sentinel ∞ class) the largest key so
// unsupported generators sort last, matching §4.H.2.
func supportOrderKey(sp *xi.Support) int {
	if sp == nil {
		return 1 << 30
	}
	return sp.Index
}

// nearestSupportAbove returns the ξ-support entry with the same X as g
// and the smallest Y >= g.Y (the nearest entry weakly above it in its
// x-column), or nil if none exists.
func nearestSupportAbove(sm *xi.Matrix, g bigrade.Grade) *xi.Support {
	var best *xi.Support
	for _, s := range sm.List {
		if s.Grade.X != g.X || s.Grade.Y < g.Y {
			continue
		}
		if best == nil || s.Grade.Y < best.Grade.Y {
			best = s
		}
	}
	return best
}

// buildPartition groups the (now-ordered) columns into runs sharing
// the same owner, one classHead per run, and records per-class
// bookkeeping in s.classes indexed by position.
func (s *State) buildPartition(ownerByOrig []*xi.Support) {
	n := len(s.order)
	s.classes = make([]*classHead, n)
	s.byHead = make(map[*xi.Support]*classHead)
	i := 0
	for i < n {
		owner := ownerByOrig[s.order[i]]
		j := i
		for j < n && ownerByOrig[s.order[j]] == owner {
			j++
		}
		head := &classHead{support: owner, lowIndex: j - 1, highIndex: -1, lowClassSize: j - i, lowCount: j - i}
		if owner == nil {
			head = s.infinity
		} else {
			s.byHead[owner] = head
		}
		for k := i; k < j; k++ {
			s.classes[k] = head
		}
		i = j
	}
}

func reorderColumns(m *matrix.Matrix, order []int) *matrix.Matrix {
	out := matrix.New(m.NumRows(), len(order))
	for newC, oldC := range order {
		for _, r := range m.Column(oldC) {
			out.Set(r, newC)
		}
		out.SetColumnMeta(newC, m.DimIndex(oldC), m.Grade(oldC))
	}
	return out
}

func reorderRows(m *matrix.Matrix, order []int) *matrix.Matrix {
	inv := make([]int, len(order))
	for newR, oldR := range order {
		inv[oldR] = newR
	}
	out := matrix.New(m.NumRows(), m.NumCols())
	for c := 0; c < m.NumCols(); c++ {
		for _, r := range m.Column(c) {
			out.Set(inv[r], c)
		}
		out.SetColumnMeta(c, m.DimIndex(c), m.Grade(c))
	}
	return out
}
