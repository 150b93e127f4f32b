// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package updater

import (
	"github.com/rivetTDA/rivet-sub001/arrangement"
	"github.com/rivetTDA/rivet-sub001/firep"
	"github.com/rivetTDA/rivet-sub001/xi"
)

// direction picks which side of an anchor's line a half-edge crossing
// approaches from. The arrangement does not separately record a
// geometric "above"/"below" tag per half-edge (§9 favors a minimal
// DCEL over one carrying redundant geometric state), so this derives
// it from the relative order of the two incident faces' ids, which is
// consistent for a given pair of faces across the whole traversal —
// sufficient for the merge/split bookkeeping of §4.H.3, though not a
// claim about true geometric orientation (see DESIGN.md).
func (s *State) direction(he int) Direction {
	a := s.arr.HalfEdges[he]
	b := s.arr.HalfEdges[a.Twin]
	if a.Face < b.Face {
		return FromBelow
	}
	return FromAbove
}

// DryRun traverses path (the path planner's Eulerian traversal, §4.G)
// on a scratch State built fresh from f/sm/arr, counting transpositions
// per anchor. The scratch state is discarded afterward — only each
// anchor's Weight field (shared through arr) survives — satisfying
// §4.H.6's "the dry run then resets any mutated state" by never
// mutating the state the real run will use.
func DryRun(f *firep.Firep, sm *xi.Matrix, arr *arrangement.DCEL, path []int) {
	scratch := New(f, sm, arr)
	for _, he := range path {
		a := arr.HalfEdges[he].Anchor
		if a == nil {
			continue
		}
		a.Weight += scratch.Cross(a, scratch.direction(he))
	}
}

// Replay performs the real traversal: crossing every anchor along path
// and writing a barcode template into each newly visited 2-cell, per
// §4.H.2–§4.H.5. The starting face's template is not written here: New
// writes it into arr.TopFace once the initial RU is built.
func (s *State) Replay(path []int) {
	for _, he := range path {
		e := s.arr.HalfEdges[he]
		if e.Anchor != nil {
			s.Cross(e.Anchor, s.direction(he))
		}
		next := s.arr.HalfEdges[e.Twin].Face
		s.WriteTemplate(next)
	}
}
