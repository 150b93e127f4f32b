// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrangement

import "fmt"

// Validate walks every half-edge and confirms the DCEL invariants of
// §8: every half-edge has a twin whose own twin is itself; every
// face's boundary chain closes into a cycle; every half-edge's anchor
// equals its twin's anchor. Supplemented from the original
// implementation's Mesh::test_consistency (§1b).
func (d *DCEL) Validate() error {
	for i, he := range d.HalfEdges {
		if he.Twin < 0 || he.Twin >= len(d.HalfEdges) {
			return fmt.Errorf("half-edge %d: twin index %d out of range", i, he.Twin)
		}
		if d.HalfEdges[he.Twin].Twin != i {
			return fmt.Errorf("half-edge %d: twin %d does not point back", i, he.Twin)
		}
		if d.HalfEdges[he.Twin].Anchor != he.Anchor {
			return fmt.Errorf("half-edge %d: anchor differs from twin %d's anchor", i, he.Twin)
		}
		if he.Next < 0 || he.Next >= len(d.HalfEdges) {
			return fmt.Errorf("half-edge %d: next index %d out of range", i, he.Next)
		}
		if d.HalfEdges[he.Next].Prev != i {
			return fmt.Errorf("half-edge %d: next %d's prev does not point back", i, he.Next)
		}
	}
	for f, face := range d.Faces {
		if face.Edge == NoID {
			continue
		}
		start := face.Edge
		cur := start
		for steps := 0; ; steps++ {
			if steps > len(d.HalfEdges) {
				return fmt.Errorf("face %d: boundary chain does not close into a cycle", f)
			}
			if d.HalfEdges[cur].Face != f {
				return fmt.Errorf("face %d: half-edge %d on its boundary has face %d", f, cur, d.HalfEdges[cur].Face)
			}
			cur = d.HalfEdges[cur].Next
			if cur == start {
				break
			}
		}
	}
	return nil
}
