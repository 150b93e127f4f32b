// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrangement builds the augmented line arrangement (§4.F):
// a DCEL of the planar subdivision induced by one dual line per
// anchor, via a Bentley–Ottmann-style sweep over exact rational
// coordinates, and carries the barcode template the persistence
// updater writes into each face on first visit (§4.H.5).
//
// Per §9's "cyclic DCEL pointers" design note, vertices, half-edges
// and faces live in three arenas (plain slices) and reference each
// other by index rather than pointer; NoID is the sentinel "invalid"
// value.
package arrangement

import (
	"math/big"

	"github.com/rivetTDA/rivet-sub001/xi"
)

// NoID is the sentinel invalid arena index.
const NoID = -1

// Vertex is a point in dual coordinates (exact rational), with one
// incident half-edge.
type Vertex struct {
	X, Y *big.Rat
	Edge int // a half-edge with this vertex as Origin
}

// HalfEdge is one directed edge of the subdivision.
type HalfEdge struct {
	Origin           int // Vertex index
	Twin, Next, Prev int // HalfEdge indices
	Face             int
	Anchor           *xi.Anchor // nil for a boundary edge (⊥, §3)
}

// BarEntry is one (begin, end, multiplicity) triple of a barcode
// template (§3): indices into the ξ-support vector, End == -1 meaning
// "bar to infinity".
type BarEntry struct {
	Begin, End, Multiplicity int
}

// Template is the combinatorial barcode valid throughout one 2-cell.
type Template struct {
	Bars []BarEntry
}

// Add records one occurrence of (begin, end), merging into an
// existing entry's multiplicity if one already matches.
func (t *Template) Add(begin, end int) {
	for i := range t.Bars {
		if t.Bars[i].Begin == begin && t.Bars[i].End == end {
			t.Bars[i].Multiplicity++
			return
		}
	}
	t.Bars = append(t.Bars, BarEntry{Begin: begin, End: end, Multiplicity: 1})
}

// Face is one 2-cell: one boundary half-edge, and an optional barcode
// template once visited by the persistence updater.
type Face struct {
	Edge     int
	Template *Template
}

// DCEL is the full arena-based doubly-connected edge list produced by
// Build.
type DCEL struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Faces     []Face

	Exterior int // the single unbounded face outside the bounding box; never visited
	TopFace  int // the "far right, near vertical" starting face for the path planner (§4.G)

	// LeftChain is the left boundary's vertices in ascending-y order,
	// used by query's θ=0 horizontal lookup (§4.I).
	LeftChain []int

	// VerticalQuery is the rightmost half-edge of each line, ordered by
	// ascending slope, for query's θ=90 lookup (§3). Lines of equal
	// slope each contribute their own entry; they are not merged into
	// one, and their relative order is not defined.
	VerticalQuery []int
}

func (d *DCEL) addVertex(x, y *big.Rat) int {
	d.Vertices = append(d.Vertices, Vertex{X: x, Y: y, Edge: NoID})
	return len(d.Vertices) - 1
}

func (d *DCEL) addFace() int {
	d.Faces = append(d.Faces, Face{Edge: NoID})
	return len(d.Faces) - 1
}

// addEdgePair creates a half-edge from origin a to origin b (and its
// twin), with faceFwd/faceBack the faces on each side, and anchor the
// shared anchor (nil for boundary edges). Returns the forward
// half-edge's index.
func (d *DCEL) addEdgePair(a, b, faceFwd, faceBack int, anchor *xi.Anchor) int {
	fwd := len(d.HalfEdges)
	back := fwd + 1
	d.HalfEdges = append(d.HalfEdges,
		HalfEdge{Origin: a, Twin: back, Next: NoID, Prev: NoID, Face: faceFwd, Anchor: anchor},
		HalfEdge{Origin: b, Twin: fwd, Next: NoID, Prev: NoID, Face: faceBack, Anchor: anchor},
	)
	if d.Vertices[a].Edge == NoID {
		d.Vertices[a].Edge = fwd
	}
	if d.Vertices[b].Edge == NoID {
		d.Vertices[b].Edge = back
	}
	return fwd
}

// wireFaceCycles fills Next/Prev for every half-edge by grouping, at
// each vertex, the incident half-edges by Face: for a vertex v and a
// face F touched there, exactly one incident half-edge with Face F
// ends at v (incoming) and exactly one starts at v (outgoing), since
// the construction in build.go assigns faces so each face meets each
// vertex it touches along exactly one in/out pair. Pairing them gives
// every face's boundary cycle without tracking angular order.
func (d *DCEL) wireFaceCycles() {
	incoming := make(map[[2]int]int) // [vertex, face] -> half-edge index ending at vertex
	for i, he := range d.HalfEdges {
		twin := d.HalfEdges[he.Twin]
		end := twin.Origin
		incoming[[2]int{end, he.Face}] = i
	}
	for i, he := range d.HalfEdges {
		key := [2]int{he.Origin, he.Face}
		if in, ok := incoming[key]; ok {
			d.HalfEdges[in].Next = i
			d.HalfEdges[i].Prev = in
		}
	}
	for i := range d.Faces {
		d.Faces[i].Edge = NoID
	}
	for i, he := range d.HalfEdges {
		if d.Faces[he.Face].Edge == NoID {
			d.Faces[he.Face].Edge = i
		}
	}
}
