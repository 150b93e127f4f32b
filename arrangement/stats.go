// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrangement

// Statistics summarizes the size of a built arrangement, mirroring
// the original implementation's Mesh::print_stats (§1b).
type Statistics struct {
	Vertices, HalfEdges, Faces, Anchors int
}

// Statistics returns size counts for d, counting each distinct anchor
// once regardless of how many half-edges carry it.
func (d *DCEL) Statistics() Statistics {
	s := Statistics{Vertices: len(d.Vertices), HalfEdges: len(d.HalfEdges), Faces: len(d.Faces)}
	seen := make(map[interface{}]bool)
	for _, he := range d.HalfEdges {
		if he.Anchor != nil && !seen[he.Anchor] {
			seen[he.Anchor] = true
			s.Anchors++
		}
	}
	return s
}
