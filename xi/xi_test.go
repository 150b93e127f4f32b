// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xi

import (
	"testing"

	"github.com/rivetTDA/rivet-sub001/betti"
	"github.com/rivetTDA/rivet-sub001/bigrade"
)

func grid(nx, ny int) [][]int {
	g := make([][]int, nx)
	for x := range g {
		g[x] = make([]int, ny)
	}
	return g
}

func TestBuildCollectsNonemptyCellsAndLinksBackpointers(t *testing.T) {
	t.Parallel()
	xi0 := &betti.Result{Xi0: grid(2, 2), Xi1: grid(2, 2)}
	xi1 := &betti.Result{Xi0: grid(2, 2), Xi1: grid(2, 2)}
	xi0.Xi0[0][1] = 1
	xi0.Xi0[1][1] = 2
	xi1.Xi1[0][1] = 0

	m := Build(xi0, xi1, nil)
	if got, want := len(m.List), 2; got != want {
		t.Fatalf("len(List) = %d, want %d", got, want)
	}
	for i, s := range m.List {
		if s.Index != i {
			t.Errorf("List[%d].Index = %d, want %d", i, s.Index, i)
		}
	}

	s01 := m.At(bigrade.Grade{X: 0, Y: 1})
	s11 := m.At(bigrade.Grade{X: 1, Y: 1})
	if s01 == nil || s11 == nil {
		t.Fatalf("expected support at (0,1) and (1,1), got %v %v", s01, s11)
	}
	if s01.Xi0 != 1 {
		t.Errorf("(0,1).Xi0 = %d, want 1", s01.Xi0)
	}
	if s11.Xi0 != 2 {
		t.Errorf("(1,1).Xi0 = %d, want 2", s11.Xi0)
	}
	if s11.Left != s01 {
		t.Errorf("(1,1).Left = %v, want %v", s11.Left, s01)
	}
	if s11.Down != nil {
		t.Errorf("(1,1).Down = %v, want nil (no earlier support at x=1)", s11.Down)
	}
	if m.At(bigrade.Grade{X: 0, Y: 0}) != nil {
		t.Error("empty cell (0,0) should not be a support")
	}
}

func TestEnumerateAnchorsStrictUnsupportedJoin(t *testing.T) {
	t.Parallel()
	xi0 := &betti.Result{Xi0: grid(2, 2), Xi1: grid(2, 2)}
	xi1 := &betti.Result{Xi0: grid(2, 2), Xi1: grid(2, 2)}
	xi0.Xi0[1][0] = 1
	xi0.Xi0[0][1] = 1

	m := Build(xi0, xi1, nil)
	anchors := EnumerateAnchors(m)
	if got, want := len(anchors), 1; got != want {
		t.Fatalf("len(anchors) = %d, want %d", got, want)
	}
	a := anchors[0]
	if a.Grade != (bigrade.Grade{X: 1, Y: 1}) {
		t.Errorf("anchor grade = %v, want (1,1)", a.Grade)
	}
	if !a.Strict {
		t.Error("expected a strict anchor (join differs from both generators)")
	}
	if a.Supported {
		t.Error("expected an unsupported anchor (no xi mass at (1,1))")
	}
	if a.Weak {
		t.Error("a strict anchor must not also be weak")
	}
	if a.Down.Grade != (bigrade.Grade{X: 1, Y: 0}) {
		t.Errorf("anchor.Down.Grade = %v, want (1,0)", a.Down.Grade)
	}
	if a.Left.Grade != (bigrade.Grade{X: 0, Y: 1}) {
		t.Errorf("anchor.Left.Grade = %v, want (0,1)", a.Left.Grade)
	}
}

func TestEnumerateAnchorsNoCrossingWhenComparable(t *testing.T) {
	t.Parallel()
	xi0 := &betti.Result{Xi0: grid(2, 2), Xi1: grid(2, 2)}
	xi1 := &betti.Result{Xi0: grid(2, 2), Xi1: grid(2, 2)}
	xi0.Xi0[0][0] = 1
	xi0.Xi0[1][1] = 1 // comparable to (0,0): no incomparable pair, no anchor

	m := Build(xi0, xi1, nil)
	anchors := EnumerateAnchors(m)
	if len(anchors) != 0 {
		t.Errorf("len(anchors) = %d, want 0 for a chain of comparable supports", len(anchors))
	}
}
