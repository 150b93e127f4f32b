// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrangement

import (
	"container/heap"
	"fmt"
	"math/big"
	"sort"

	"github.com/rivetTDA/rivet-sub001/bigrade"
	"github.com/rivetTDA/rivet-sub001/xi"
)

// line is one anchor's dual line y' = slope*m - intercept (§4.F),
// together with the arena bookkeeping the sweep needs per line: the
// vertices lying on it in increasing-m order, and its current
// neighbor faces.
type line struct {
	anchor         *xi.Anchor
	slope, intcpt  *big.Rat
	verts          []int // vertex indices, in increasing-m order
	faceAbove      int
	faceBelow      int
}

func (l *line) valueAt(m *big.Rat) *big.Rat {
	v := new(big.Rat).Mul(l.slope, m)
	return v.Sub(v, l.intcpt)
}

// crossing returns the m-coordinate where a and b meet, and whether
// they are comparable (non-parallel).
func crossing(a, b *line) (*big.Rat, bool) {
	if a.slope.Cmp(b.slope) == 0 {
		return nil, false
	}
	// slope_a*m - i_a = slope_b*m - i_b  =>  m = (i_a - i_b)/(slope_a - slope_b)
	num := new(big.Rat).Sub(a.intcpt, b.intcpt)
	den := new(big.Rat).Sub(a.slope, b.slope)
	return num.Quo(num, den), true
}

// event is a candidate crossing between two lines, valid only while
// they remain adjacent in the sweep order.
type event struct {
	m, y   *big.Rat
	i, j   int // line indices
}

type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }
func (q eventQueue) Less(a, b int) bool {
	if c := q[a].m.Cmp(q[b].m); c != 0 {
		return c < 0
	}
	return q[a].y.Cmp(q[b].y) < 0
}
func (q eventQueue) Swap(a, b int)     { q[a], q[b] = q[b], q[a] }
func (q *eventQueue) Push(x any)       { *q = append(*q, x.(*event)) }
func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// Build runs the Bentley–Ottmann-style sweep of §4.F over one dual
// line per anchor and returns the resulting DCEL. Points at infinity
// (§3's "four corner vertices at ±∞") are realized as a finite
// bounding box wide enough to contain every pairwise line crossing —
// see DESIGN.md for why this is a safe, combinatorially equivalent
// substitute for a true unbounded arena. Concurrent crossings of three
// or more lines at one point are realized as a rapid sequence of
// coincident-point pairwise vertices rather than merged into a single
// higher-degree vertex (also in DESIGN.md); combinatorial validity
// (§8's twin/cycle invariants) is unaffected.
func Build(anchors []*xi.Anchor, grades *bigrade.GradeSet) (*DCEL, error) {
	n := len(anchors)
	lines := make([]*line, n)
	for i, a := range anchors {
		lines[i] = &line{
			anchor: a,
			slope:  grades.X(a.Grade.X),
			intcpt: grades.Y(a.Grade.Y),
		}
	}
	if err := checkDistinctLines(lines); err != nil {
		return nil, err
	}

	mMin, mMax, yMin, yMax := bounds(lines)

	d := &DCEL{}
	d.Exterior = d.addFace()

	if n == 0 {
		return buildEmptyArrangement(d, mMin, mMax, yMin, yMax)
	}

	// Initial order: position 0 is the line with greatest value at
	// mMin (topmost), position n-1 the least (bottommost).
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return lines[order[a]].valueAt(mMin).Cmp(lines[order[b]].valueAt(mMin)) > 0
	})
	pos := make([]int, n)
	for p, i := range order {
		pos[i] = p
	}

	gapFace := make([]int, n+1)
	initialGapFace := make([]int, n+1)
	for g := 0; g <= n; g++ {
		gapFace[g] = d.addFace()
		initialGapFace[g] = gapFace[g]
	}

	corners := newCorners(d, mMin, mMax, yMin, yMax)

	leftVerts := make([]int, n)
	for p := 0; p < n; p++ {
		li := order[p]
		v := d.addVertex(mMin, lines[li].valueAt(mMin))
		lines[li].verts = append(lines[li].verts, v)
		leftVerts[p] = v
	}
	for i, li := range lines {
		li.faceAbove = gapFace[pos[i]]
		li.faceBelow = gapFace[pos[i]+1]
	}

	considered := make(map[[2]int]bool)
	var q eventQueue
	tryEnqueue := func(p int) {
		if p < 0 || p+1 >= n {
			return
		}
		i, j := order[p], order[p+1]
		key := pairKey(i, j)
		if considered[key] {
			return
		}
		m, ok := crossing(lines[i], lines[j])
		if !ok {
			return
		}
		if m.Cmp(mMin) <= 0 || m.Cmp(mMax) >= 0 {
			return
		}
		considered[key] = true
		heap.Push(&q, &event{m: m, y: lines[i].valueAt(m), i: i, j: j})
	}
	for p := 0; p+1 < n; p++ {
		tryEnqueue(p)
	}

	for q.Len() > 0 {
		e := heap.Pop(&q).(*event)
		pi, pj := pos[e.i], pos[e.j]
		if abs(pi-pj) != 1 {
			continue // stale: no longer adjacent
		}
		p := pi
		if pj < pi {
			p = pj
		}
		lo, hi := order[p], order[p+1] // lo currently above, hi currently below

		v := d.addVertex(e.m, lines[lo].valueAt(e.m))
		d.addEdgePair(lines[lo].verts[len(lines[lo].verts)-1], v, lines[lo].faceBelow, lines[lo].faceAbove, anchorOf(lines[lo]))
		d.addEdgePair(lines[hi].verts[len(lines[hi].verts)-1], v, lines[hi].faceBelow, lines[hi].faceAbove, anchorOf(lines[hi]))

		order[p], order[p+1] = hi, lo
		pos[lo], pos[hi] = p+1, p

		gapFace[p+1] = d.addFace()
		lines[hi].faceAbove = gapFace[p]
		lines[hi].faceBelow = gapFace[p+1]
		lines[lo].faceAbove = gapFace[p+1]
		lines[lo].faceBelow = gapFace[p+2]

		lines[lo].verts = append(lines[lo].verts, v)
		lines[hi].verts = append(lines[hi].verts, v)

		tryEnqueue(p - 1)
		tryEnqueue(p + 1)
	}

	finalGapFace := gapFace

	rightVerts := make([]int, n)
	for p := 0; p < n; p++ {
		li := order[p]
		v := d.addVertex(mMax, lines[li].valueAt(mMax))
		d.addEdgePair(lines[li].verts[len(lines[li].verts)-1], v, lines[li].faceBelow, lines[li].faceAbove, anchorOf(lines[li]))
		lines[li].verts = append(lines[li].verts, v)
		rightVerts[p] = v
	}

	buildBoxEdges(d, corners, leftVerts, rightVerts, initialGapFace, finalGapFace, n)

	d.wireFaceCycles()
	d.TopFace = initialGapFace[0]
	buildLeftChain(d, corners, leftVerts)
	buildVerticalQuery(d, lines)

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("arrangement: internal consistency: %w", err)
	}
	return d, nil
}

func anchorOf(l *line) *xi.Anchor { return l.anchor }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

func checkDistinctLines(lines []*line) error {
	seen := make(map[[2]string]int)
	for i, l := range lines {
		key := [2]string{l.slope.RatString(), l.intcpt.RatString()}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("arrangement: anchors %d and %d map to the same dual line (degenerate anchor)", prev, i)
		}
		seen[key] = i
	}
	return nil
}

// bounds computes a finite box guaranteed to contain every pairwise
// crossing among lines, with margin 1 on every side.
func bounds(lines []*line) (mMin, mMax, yMin, yMax *big.Rat) {
	one := big.NewRat(1, 1)
	if len(lines) == 0 {
		return new(big.Rat).Neg(one), new(big.Rat).Set(one), new(big.Rat).Neg(one), new(big.Rat).Set(one)
	}
	mMin, mMax = nil, nil
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			m, ok := crossing(lines[i], lines[j])
			if !ok {
				continue
			}
			if mMin == nil || m.Cmp(mMin) < 0 {
				mMin = m
			}
			if mMax == nil || m.Cmp(mMax) > 0 {
				mMax = m
			}
		}
	}
	if mMin == nil {
		mMin, mMax = new(big.Rat).Neg(one), new(big.Rat).Set(one)
	} else {
		mMin = new(big.Rat).Sub(mMin, one)
		mMax = new(big.Rat).Add(mMax, one)
	}
	yMin, yMax = nil, nil
	for _, l := range lines {
		for _, m := range []*big.Rat{mMin, mMax} {
			v := l.valueAt(m)
			if yMin == nil || v.Cmp(yMin) < 0 {
				yMin = new(big.Rat).Set(v)
			}
			if yMax == nil || v.Cmp(yMax) > 0 {
				yMax = new(big.Rat).Set(v)
			}
		}
	}
	yMin = yMin.Sub(yMin, one)
	yMax = yMax.Add(yMax, one)
	return mMin, mMax, yMin, yMax
}

type cornerSet struct{ tl, tr, bl, br int }

func newCorners(d *DCEL, mMin, mMax, yMin, yMax *big.Rat) cornerSet {
	return cornerSet{
		tl: d.addVertex(mMin, yMax),
		tr: d.addVertex(mMax, yMax),
		bl: d.addVertex(mMin, yMin),
		br: d.addVertex(mMax, yMin),
	}
}

func buildEmptyArrangement(d *DCEL, mMin, mMax, yMin, yMax *big.Rat) (*DCEL, error) {
	interior := d.addFace()
	c := newCorners(d, mMin, mMax, yMin, yMax)
	d.addEdgePair(c.tl, c.tr, interior, d.Exterior, nil)
	d.addEdgePair(c.tr, c.br, interior, d.Exterior, nil)
	d.addEdgePair(c.br, c.bl, interior, d.Exterior, nil)
	d.addEdgePair(c.bl, c.tl, interior, d.Exterior, nil)
	d.wireFaceCycles()
	d.TopFace = interior
	d.LeftChain = []int{c.bl, c.tl}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// buildBoxEdges wires the top, bottom, left, and right boundary
// chains, completing the DCEL's outer frame around the swept interior.
func buildBoxEdges(d *DCEL, c cornerSet, leftVerts, rightVerts []int, initialGapFace, finalGapFace []int, n int) {
	d.addEdgePair(c.tl, c.tr, initialGapFace[0], d.Exterior, nil)
	d.addEdgePair(c.br, c.bl, finalGapFace[n], d.Exterior, nil)

	prev := c.bl
	for p := n - 1; p >= 0; p-- {
		d.addEdgePair(prev, leftVerts[p], initialGapFace[p+1], d.Exterior, nil)
		prev = leftVerts[p]
	}
	d.addEdgePair(prev, c.tl, initialGapFace[0], d.Exterior, nil)

	prev = c.tr
	for p := 0; p < n; p++ {
		d.addEdgePair(prev, rightVerts[p], finalGapFace[p], d.Exterior, nil)
		prev = rightVerts[p]
	}
	d.addEdgePair(prev, c.br, finalGapFace[n], d.Exterior, nil)
}

func buildLeftChain(d *DCEL, c cornerSet, leftVerts []int) {
	chain := append([]int{c.bl}, leftVerts...)
	chain = append(chain, c.tl)
	sort.Slice(chain, func(i, j int) bool { return d.Vertices[chain[i]].Y.Cmp(d.Vertices[chain[j]].Y) < 0 })
	d.LeftChain = chain
}

func buildVerticalQuery(d *DCEL, lines []*line) {
	type slopeLine struct {
		slope *big.Rat
		edge  int
	}
	var sl []slopeLine
	for _, l := range lines {
		if len(l.verts) < 2 {
			continue
		}
		last := l.verts[len(l.verts)-1]
		prevv := l.verts[len(l.verts)-2]
		for _, he := range edgesBetween(d, prevv, last) {
			sl = append(sl, slopeLine{slope: l.slope, edge: he})
		}
	}
	sort.Slice(sl, func(i, j int) bool { return sl[i].slope.Cmp(sl[j].slope) < 0 })
	for _, s := range sl {
		d.VerticalQuery = append(d.VerticalQuery, s.edge)
	}
}

func edgesBetween(d *DCEL, a, b int) []int {
	for i, he := range d.HalfEdges {
		if he.Origin == a && d.HalfEdges[he.Twin].Origin == b {
			return []int{i}
		}
	}
	return nil
}
