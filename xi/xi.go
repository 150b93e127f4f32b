// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xi builds the ξ-support matrix from a multigraded Betti
// result and enumerates anchors from it (§4.E, §3 "ξ-support matrix").
package xi

import (
	"sort"

	"github.com/rivetTDA/rivet-sub001/betti"
	"github.com/rivetTDA/rivet-sub001/bigrade"
)

// Support is one nonempty cell of the ξ-support matrix: the Betti
// numbers at a bigrade that is not all zero, plus back-links to the
// nearest nonempty cell below it (same x, smaller y) and to its left
// (same y, smaller x). The back-links give §4.E's anchor walk O(1)
// access to "the next support down/left" without rescanning the grid.
type Support struct {
	Grade            bigrade.Grade
	Xi0, Xi1, Xi2    int
	Down, Left       *Support
	Index            int // position in Matrix.List, set once the list is finalized
}

// Matrix is the full set of nonempty ξ-support cells, indexed both by
// grade (for lookup during anchor enumeration) and as a flat ordered
// list (the ξ-support vector that barcode templates index into, §3).
type Matrix struct {
	byGrade map[bigrade.Grade]*Support
	List    []*Support // ordered by reverse-lex bigrade, List[i].Index == i
}

// Build collects every bigrade where xi0 (at hom_dim), xi1 (at
// hom_dim), or xi2 (== xi0 at hom_dim+1, supplied by the caller per
// the standard ξ₂(d) = ξ₀(d+1) identity) is nonzero into one Matrix.
func Build(xi0, xi1, xi2 *betti.Result) *Matrix {
	nx := len(xi0.Xi0)
	m := &Matrix{byGrade: make(map[bigrade.Grade]*Support)}
	for x := 0; x < nx; x++ {
		ny := len(xi0.Xi0[x])
		for y := 0; y < ny; y++ {
			v0 := xi0.Xi0[x][y]
			v1 := xi1.Xi1[x][y]
			v2 := 0
			if xi2 != nil {
				v2 = xi2.Xi0[x][y]
			}
			if v0 == 0 && v1 == 0 && v2 == 0 {
				continue
			}
			g := bigrade.Grade{X: x, Y: y}
			s := &Support{Grade: g, Xi0: v0, Xi1: v1, Xi2: v2}
			m.byGrade[g] = s
		}
	}
	m.List = make([]*Support, 0, len(m.byGrade))
	for _, s := range m.byGrade {
		m.List = append(m.List, s)
	}
	sort.Slice(m.List, func(i, j int) bool { return bigrade.Less(m.List[i].Grade, m.List[j].Grade) })
	for i, s := range m.List {
		s.Index = i
	}
	linkBackpointers(m)
	return m
}

// linkBackpointers fills Down/Left for every support by scanning the
// list in ascending (x,y): Down is the nearest earlier support with
// the same X, Left the nearest earlier support with the same Y.
func linkBackpointers(m *Matrix) {
	lastInColumn := make(map[int]*Support) // x -> most recent support seen at that x
	lastInRow := make(map[int]*Support)    // y -> most recent support seen at that y
	sorted := append([]*Support(nil), m.List...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Grade.X != sorted[j].Grade.X {
			return sorted[i].Grade.X < sorted[j].Grade.X
		}
		return sorted[i].Grade.Y < sorted[j].Grade.Y
	})
	for _, s := range sorted {
		s.Down = lastInColumn[s.Grade.X]
		lastInColumn[s.Grade.X] = s
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Grade.Y != sorted[j].Grade.Y {
			return sorted[i].Grade.Y < sorted[j].Grade.Y
		}
		return sorted[i].Grade.X < sorted[j].Grade.X
	})
	for _, s := range sorted {
		s.Left = lastInRow[s.Grade.Y]
		lastInRow[s.Grade.Y] = s
	}
}

// At returns the support at grade g, or nil if the cell is empty.
func (m *Matrix) At(g bigrade.Grade) *Support { return m.byGrade[g] }

// Anchor is a bigrade that is the join of two incomparable ξ-supports
// (§3, §4.E): Down and Left are the two generators whose join produced
// it; Weak is set when only one of the two actually exists as a
// standalone support (the other coincides with the anchor's own cell).
type Anchor struct {
	Grade      bigrade.Grade
	Down, Left *Support
	Strict     bool // join is neither Down nor Left
	Supported  bool // the join bigrade itself carries ξ-mass
	Weak       bool
	Weight     int // filled in by planner's dry run (§4.G, §4.H.6)
}

// frontierEntry is one entry of the monotone frontier maintained while
// sweeping rows top-to-bottom in EnumerateAnchors.
type frontierEntry struct {
	s *Support
}

// EnumerateAnchors derives the full anchor set from m by the frontier
// sweep of §4.E: scan supports in ascending y (then x) order, keeping a
// frontier of supports from rows already visited whose x strictly
// decreases left to right (a monotone stack). For each new support e,
// walk the frontier leftward: every frontier entry f with f.x > e.x
// produces an anchor at the join (which, by construction, is
// (f.x, e.y)); e is then folded into the frontier, popping any entries
// with x <= e.x since they can no longer be the leftmost nonempty
// support in their row for future joins.
func EnumerateAnchors(m *Matrix) []*Anchor {
	byRow := append([]*Support(nil), m.List...)
	sort.Slice(byRow, func(i, j int) bool {
		if byRow[i].Grade.Y != byRow[j].Grade.Y {
			return byRow[i].Grade.Y < byRow[j].Grade.Y
		}
		return byRow[i].Grade.X < byRow[j].Grade.X
	})

	var frontier []frontierEntry
	var anchors []*Anchor
	seen := make(map[bigrade.Grade]bool)

	for _, e := range byRow {
		for i := len(frontier) - 1; i >= 0; i-- {
			f := frontier[i]
			if f.s.Grade.X <= e.Grade.X {
				continue // x grows leftward, so larger-x entries may still follow
			}
			g := bigrade.Join(e.Grade, f.s.Grade)
			if seen[g] {
				continue
			}
			seen[g] = true
			anchors = append(anchors, classify(m, g, e, f.s))
		}
		// Pop frontier entries dominated (in x) by e; they can never be
		// the leftmost support of their row again for a later (larger y) e.
		i := len(frontier)
		for i > 0 && frontier[i-1].s.Grade.X <= e.Grade.X {
			i--
		}
		frontier = append(frontier[:i], frontierEntry{s: e})
	}

	sort.Slice(anchors, func(i, j int) bool { return bigrade.Less(anchors[i].Grade, anchors[j].Grade) })
	return anchors
}

// classify builds the Anchor at join grade g from generators down
// (the lower-y support) and left (the lower-x support), determining
// strict/supported/weak per §3 and §4.E.
func classify(m *Matrix, g bigrade.Grade, down, left *Support) *Anchor {
	// Canonicalize: "down" has the smaller y, "left" the smaller x.
	if down.Grade.Y > left.Grade.Y {
		down, left = left, down
	}
	a := &Anchor{Grade: g, Down: down, Left: left}
	at := m.At(g)
	a.Supported = at != nil
	a.Strict = g != down.Grade && g != left.Grade
	a.Weak = !a.Strict
	return a
}
