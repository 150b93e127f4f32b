// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package updater

import "github.com/rivetTDA/rivet-sub001/arrangement"

// highOwners lazily computes, once, the static ξ-support entry each
// High column maps to (§4.H.5's partition_high): High's own columns
// are never reordered in a single-Firep updater (see state.go's
// package doc), so this is a plain per-column lookup, not a live
// partition.
func (s *State) highOwners() []*classHead {
	if s.highOwnersCache != nil {
		return s.highOwnersCache
	}
	n := s.f.High.NumCols()
	out := make([]*classHead, n)
	for c := 0; c < n; c++ {
		sp := nearestSupportAbove(s.sm, s.f.High.Grade(c))
		if sp == nil {
			out[c] = s.infinity
			continue
		}
		out[c] = &classHead{support: sp}
	}
	s.highOwnersCache = out
	return out
}

// WriteTemplate fills faceID's barcode template (§4.H.5) by scanning
// R_low for positive (empty) columns: each becomes either a finite bar
// paired with the High column whose low equals it, or an essential
// bar if none pairs with it.
func (s *State) WriteTemplate(faceID int) {
	face := &s.arr.Faces[faceID]
	if face.Template != nil {
		return // written exactly once per 2-cell, §3 Lifecycle
	}
	t := &arrangement.Template{}
	highOwner := s.highOwners()
	n := s.Low.R.NumCols()
	for c := 0; c < n; c++ {
		if !s.Low.R.IsEmpty(c) {
			continue
		}
		begin := s.indexOf(s.classes[c])
		end := -1
		if hc := s.High.R.FindLow(c); hc != -1 {
			end = s.indexOf(highOwner[hc])
		}
		t.Add(begin, end)
	}
	face.Template = t
}

// indexOf returns the ξ-support vector index a class's head maps to,
// or -1 for the sentinel ∞ class (no support entry, only ever valid
// as an "end" meaning essential — never reached as a begin index since
// every positive column is guaranteed a supporting bigrade in §4.H.2's
// ordering).
func (s *State) indexOf(h *classHead) int {
	if h == nil || h.support == nil {
		return -1
	}
	return h.support.Index
}
