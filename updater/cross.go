// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package updater

import (
	"github.com/rivetTDA/rivet-sub001/ru"
	"github.com/rivetTDA/rivet-sub001/xi"
)

// Direction records which side of an anchor's line the sweep is
// passing, since a class swap and its mirror image are the same
// block move performed in the opposite sense.
type Direction bool

const (
	FromBelow Direction = true
	FromAbove Direction = false
)

// Cross replays one anchor crossing (§4.H.3) and returns the number of
// adjacent transpositions it performed, the unit the dry run (§4.H.6)
// accumulates into anchor.Weight.
func (s *State) Cross(a *xi.Anchor, dir Direction) int {
	down := s.classOf(a.Down)
	left := s.classOf(a.Left)

	switch {
	case !a.Supported:
		return s.swapClasses(down, left)
	case a.Strict:
		return s.crossStrictSupported(a, down, left)
	default:
		return s.crossNonStrictSupported(a, down, left, dir)
	}
}

// classOf returns the live class head a support entry currently heads,
// or nil if sp is nil (an anchor side with no generator, e.g. a
// boundary anchor with only one of down/left present).
func (s *State) classOf(sp *xi.Support) *classHead {
	if sp == nil {
		return nil
	}
	return s.byHead[sp]
}

// classRange returns the contiguous [start, start+size) run of
// positions currently headed by h. Classes are always contiguous runs
// by construction (§4.H.1), so a linear scan suffices.
func (s *State) classRange(h *classHead) (start, size int) {
	start = -1
	for pos, c := range s.classes {
		if c == h {
			if start == -1 {
				start = pos
			}
			size++
		} else if start != -1 {
			break
		}
	}
	return start, size
}

// transpose performs one adjacent transposition at position, updating
// the live RU pairs (via the vineyard's four-case analysis, §4.H.4)
// and the parallel order/classes bookkeeping.
func (s *State) transpose(pos int) {
	ru.TransposeAdjacent(s.Low, s.High, pos)
	s.order[pos], s.order[pos+1] = s.order[pos+1], s.order[pos]
	s.classes[pos], s.classes[pos+1] = s.classes[pos+1], s.classes[pos]
}

// swapBlocks slides the block of nb columns starting at p rightward
// past the nc columns following it, §4.H.4's "transpositions per block
// move": the rightmost remaining column of the moving block bubbles
// through the other block one adjacent swap at a time.
func (s *State) swapBlocks(p, nb, nc int) int {
	count := 0
	for i := 0; i < nb; i++ {
		pos := p + nb - 1 - i
		for k := 0; k < nc; k++ {
			s.transpose(pos)
			pos++
			count++
		}
	}
	return count
}

// swapClasses exchanges the order of two adjacent equivalence classes
// (the strict, unsupported anchor case). Both classes are contiguous
// and adjacent by invariant; whichever sits to the left is the block
// that gets bubbled past the other.
func (s *State) swapClasses(down, left *classHead) int {
	ds, dn := s.classRange(down)
	ls, ln := s.classRange(left)
	if ds < ls {
		return s.swapBlocks(ds, dn, ln)
	}
	return s.swapBlocks(ls, ln, dn)
}

// crossStrictSupported handles an anchor that itself carries
// ξ-support: down, left and the anchor's own entry are merged into one
// class headed by the anchor. The down- and left-owned sub-runs are
// identified by each column's original owner (origOwner, unaffected by
// later merges) and swapped within the head's range, leaving the
// anchor's own columns fixed in the middle — the "detach A's head
// statistics, restore them to the generators" of §4.H.3, realized here
// as excluding the anchor's own sub-run from the block move rather
// than literally splitting and re-merging classHead objects.
func (s *State) crossStrictSupported(a *xi.Anchor, down, left *classHead) int {
	spA := s.sm.At(a.Grade)
	head := s.byHead[spA]
	if head == nil {
		return s.swapClasses(down, left)
	}
	start, size := s.classRange(head)

	var downPos, leftPos []int
	for pos := start; pos < start+size; pos++ {
		switch s.origOwner[s.order[pos]] {
		case a.Down:
			downPos = append(downPos, pos)
		case a.Left:
			leftPos = append(leftPos, pos)
		}
	}
	if len(downPos) == 0 || len(leftPos) == 0 {
		return 0
	}
	ds, dn := downPos[0], len(downPos)
	ls, ln := leftPos[0], len(leftPos)
	if ds < ls {
		return s.swapBlocks(ds, dn, ln)
	}
	return s.swapBlocks(ls, ln, dn)
}

// crossNonStrictSupported handles a non-strict supported anchor:
// exactly one of down/left exists, and the crossing only merges or
// splits that generator's class with/from the anchor's class — no
// column movement. The direction chooses merge-on-below,
// split-on-above, matching the sweep direction in which such anchors
// are first reached in a typical left-to-right path.
func (s *State) crossNonStrictSupported(a *xi.Anchor, down, left *classHead, dir Direction) int {
	spA := s.sm.At(a.Grade)
	head := s.byHead[spA]
	if head == nil {
		return 0
	}
	other := down
	otherSupport := a.Down
	if other == nil {
		other = left
		otherSupport = a.Left
	}
	if other == nil || other == head {
		return 0
	}
	if dir == FromBelow {
		s.mergeInto(head, other)
	} else {
		s.splitFrom(head, other, otherSupport)
	}
	return 0
}

// mergeInto repoints every position in other's range to head and
// retires other from the head index.
func (s *State) mergeInto(head, other *classHead) {
	start, size := s.classRange(other)
	for pos := start; pos < start+size; pos++ {
		s.classes[pos] = head
	}
	if other.support != nil {
		delete(s.byHead, other.support)
	}
}

// splitFrom restores the sub-run of head's range originally owned by
// otherSupport back into its own class, the mirror of mergeInto.
func (s *State) splitFrom(head *classHead, other *classHead, otherSupport *xi.Support) {
	start, size := s.classRange(head)
	for pos := start; pos < start+size; pos++ {
		if s.origOwner[s.order[pos]] == otherSupport {
			s.classes[pos] = other
		}
	}
	if otherSupport != nil {
		s.byHead[otherSupport] = other
	}
}
