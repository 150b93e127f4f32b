// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planner

import (
	"math/big"
	"testing"

	"github.com/rivetTDA/rivet-sub001/arrangement"
	"github.com/rivetTDA/rivet-sub001/bigrade"
	"github.com/rivetTDA/rivet-sub001/xi"
)

func rats(vals ...int64) []*big.Rat {
	out := make([]*big.Rat, len(vals))
	for i, v := range vals {
		out[i] = big.NewRat(v, 1)
	}
	return out
}

func mustGrades(t *testing.T, x, y []*big.Rat) *bigrade.GradeSet {
	t.Helper()
	gs, err := bigrade.NewGradeSet(x, y)
	if err != nil {
		t.Fatalf("NewGradeSet: %v", err)
	}
	return gs
}

// Plan must visit every interior face, and no other, starting from
// TopFace (an MST spanning tree over a connected face-adjacency graph
// has a face count minus one edges, and an Eulerian DFS over it emits
// each tree edge twice, so faces are re-entered on the way back).
func TestPlanVisitsEveryInteriorFace(t *testing.T) {
	t.Parallel()
	grades := mustGrades(t, rats(0, 1, 2), rats(0, 1, 2))
	anchors := []*xi.Anchor{
		{Grade: bigrade.Grade{X: 0, Y: 1}, Weight: 3},
		{Grade: bigrade.Grade{X: 1, Y: 0}, Weight: 1},
	}
	d, err := arrangement.Build(anchors, grades)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	path := Plan(d)

	visited := map[int]bool{d.TopFace: true}
	face := d.TopFace
	for _, he := range path {
		next := d.HalfEdges[d.HalfEdges[he].Twin].Face
		visited[next] = true
		face = next
	}
	_ = face

	interior := 0
	for f := range d.Faces {
		if f == d.Exterior {
			continue
		}
		interior++
		if !visited[f] {
			t.Errorf("face %d was never visited by the planned path", f)
		}
	}
	if len(visited) != interior {
		t.Errorf("visited %d faces, want exactly %d interior faces", len(visited), interior)
	}
}

func TestPlanEmptyArrangementReturnsEmptyPath(t *testing.T) {
	t.Parallel()
	grades := mustGrades(t, rats(0, 1), rats(0, 1))
	d, err := arrangement.Build(nil, grades)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	path := Plan(d)
	if len(path) != 0 {
		t.Errorf("len(path) = %d, want 0 for a single-face arrangement", len(path))
	}
}
