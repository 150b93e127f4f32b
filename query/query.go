// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query answers barcode queries against a built arrangement
// (§4.I): given a line (angle, offset), locate the 2-cell it falls in,
// then project that cell's barcode template onto the query line to
// produce real-valued bars.
package query

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/rivetTDA/rivet-sub001/arrangement"
	"github.com/rivetTDA/rivet-sub001/xi"
)

// Bar is one real-valued interval of a queried barcode.
type Bar struct {
	Birth        float64
	Death        float64
	Infinite     bool
	Multiplicity int
}

// Line computes the barcode along the query line at angle theta
// (degrees, in [0, 90]) and offset rho (§4.I): locates the line's
// 2-cell, then projects that cell's template's ξ-support endpoints
// onto the line, using r2 for the float64 rescale since the
// arrangement itself is built over exact rationals.
func Line(d *arrangement.DCEL, sm *xi.Matrix, theta, rho float64) ([]Bar, error) {
	face := locate(d, theta, rho)
	t := d.Faces[face].Template
	if t == nil {
		return nil, errors.New("query: face has no barcode template")
	}

	dir, origin := lineFrame(theta, rho)
	// Shift so 0 corresponds to the line's crossing of the data box's
	// lower-left corner, grade-space (0,0).
	zero := project(dir, origin, r2.Vec{})

	var bars []Bar
	for _, b := range t.Bars {
		birth := project(dir, origin, gradePoint(sm, b.Begin)) - zero
		if b.End == -1 {
			bars = append(bars, Bar{Birth: birth, Infinite: true, Multiplicity: b.Multiplicity})
			continue
		}
		death := project(dir, origin, gradePoint(sm, b.End)) - zero
		bars = append(bars, Bar{Birth: birth, Death: death, Multiplicity: b.Multiplicity})
	}
	return bars, nil
}

// lineFrame returns the query line's direction vector and the point on
// it closest to the origin, from its angle/offset normal-form
// description (§4.I): the line is {p : p·normal = rho}.
func lineFrame(theta, rho float64) (dir, origin r2.Vec) {
	rad := theta * math.Pi / 180
	dir = r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}
	normal := r2.Vec{X: -math.Sin(rad), Y: math.Cos(rad)}
	origin = normal.Scale(rho)
	return dir, origin
}

// project returns p's coordinate along the line through origin with
// direction dir: the signed arc-length of p's orthogonal projection,
// measured from origin.
func project(dir, origin, p r2.Vec) float64 {
	return dir.Dot(p.Sub(origin))
}

func gradePoint(sm *xi.Matrix, index int) r2.Vec {
	for _, s := range sm.List {
		if s.Index == index {
			return r2.Vec{X: float64(s.Grade.X), Y: float64(s.Grade.Y)}
		}
	}
	return r2.Vec{}
}

// locate finds the 2-cell the query line at (theta, rho) falls in
// (§4.I): the vertical-query list for theta==90, a left-chain scan for
// theta==0, otherwise a half-edge descent from the top face comparing
// the query's y against each candidate edge's y-at-x.
func locate(d *arrangement.DCEL, theta, rho float64) int {
	switch {
	case theta >= 90:
		return locateVertical(d, rho)
	case theta <= 0:
		return locateHorizontal(d, rho)
	default:
		return locateGeneral(d, theta, rho)
	}
}

func locateVertical(d *arrangement.DCEL, rho float64) int {
	if len(d.VerticalQuery) == 0 {
		return d.TopFace
	}
	for _, he := range d.VerticalQuery {
		v := d.Vertices[d.HalfEdges[he].Origin]
		x, _ := v.X.Float64()
		if x >= -rho {
			return d.HalfEdges[he].Face
		}
	}
	return d.HalfEdges[d.VerticalQuery[len(d.VerticalQuery)-1]].Face
}

func locateHorizontal(d *arrangement.DCEL, rho float64) int {
	for _, vi := range d.LeftChain {
		v := d.Vertices[vi]
		y, _ := v.Y.Float64()
		if y >= rho {
			return d.HalfEdges[v.Edge].Face
		}
	}
	if len(d.LeftChain) == 0 {
		return d.TopFace
	}
	last := d.Vertices[d.LeftChain[len(d.LeftChain)-1]]
	return d.HalfEdges[last.Edge].Face
}

// locateGeneral descends from the top face, at each boundary edge
// checking whether the query line passes above or below the edge's
// midpoint, crossing into the adjacent face when it passes below.
func locateGeneral(d *arrangement.DCEL, theta, rho float64) int {
	rad := theta * math.Pi / 180
	slope := math.Tan(rad)
	intercept := -rho / math.Cos(rad)

	face := d.TopFace
	visited := make(map[int]bool)
	for steps := 0; steps < len(d.Faces)+1; steps++ {
		if visited[face] {
			break
		}
		visited[face] = true
		start := d.Faces[face].Edge
		if start == arrangement.NoID {
			break
		}
		moved := false
		cur := start
		for {
			he := d.HalfEdges[cur]
			a := d.Vertices[he.Origin]
			b := d.Vertices[d.HalfEdges[he.Twin].Origin]
			ax, _ := a.X.Float64()
			ay, _ := a.Y.Float64()
			bx, _ := b.X.Float64()
			by, _ := b.Y.Float64()
			if ax != bx {
				mx := (ax + bx) / 2
				edgeY := (ay + by) / 2
				queryY := slope*mx + intercept
				if queryY < edgeY {
					face = d.HalfEdges[he.Twin].Face
					moved = true
					break
				}
			}
			cur = he.Next
			if cur == start {
				break
			}
		}
		if !moved {
			return face
		}
	}
	return face
}
