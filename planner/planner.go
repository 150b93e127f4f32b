// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planner builds a spanning subgraph of the arrangement's
// face-adjacency graph and emits an Eulerian DFS traversal of it, the
// ordered sequence of half-edge crossings the persistence updater
// replays to visit every 2-cell (§4.G).
package planner

import (
	"sort"

	"gonum.org/v1/gonum/set"

	"github.com/rivetTDA/rivet-sub001/arrangement"
)

// edge is one candidate MST edge: a half-edge whose twin-face is the
// adjacent face, weighted by its anchor's crossing cost.
type edge struct {
	he     int
	weight int
}

// Plan computes a minimum spanning tree of the face-adjacency graph
// (two faces are adjacent iff they share a half-edge whose anchor is
// not ⊥) using a Kruskal reduction over d's anchor edges, weighted by
// anchor.Weight (filled in beforehand by a dry run of the updater,
// §4.H.6), then returns an Eulerian DFS traversal starting at
// d.TopFace: each returned half-edge's twin-face is the next 2-cell to
// visit, and its Anchor is the one being crossed at that step.
func Plan(d *arrangement.DCEL) []int {
	edges := collectEdges(d)
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].weight < edges[j].weight })

	ds := set.NewDisjointSet()
	for f := range d.Faces {
		if f == d.Exterior {
			continue
		}
		ds.MakeSet(f)
	}

	adj := make(map[int][]int) // face -> half-edges on its spanning-tree boundary
	for _, e := range edges {
		he := d.HalfEdges[e.he]
		twin := d.HalfEdges[he.Twin]
		a, b := he.Face, twin.Face
		if a == d.Exterior || b == d.Exterior {
			continue
		}
		ra, rb := ds.Find(a), ds.Find(b)
		if ra == rb {
			continue
		}
		ds.Union(ra, rb)
		adj[a] = append(adj[a], e.he)
		adj[b] = append(adj[b], he.Twin)
	}

	visited := make(map[int]bool)
	var path []int
	var dfs func(face int)
	dfs = func(face int) {
		visited[face] = true
		for _, he := range adj[face] {
			next := d.HalfEdges[d.HalfEdges[he].Twin].Face
			if visited[next] {
				continue
			}
			path = append(path, he)
			dfs(next)
			path = append(path, d.HalfEdges[he].Twin)
		}
	}
	dfs(d.TopFace)
	return path
}

// collectEdges gathers one candidate MST edge per anchor-bearing
// half-edge whose reverse direction has not already been collected
// (each undirected adjacency contributes exactly one edge).
func collectEdges(d *arrangement.DCEL) []edge {
	seen := make(map[[2]int]bool)
	var edges []edge
	for i, he := range d.HalfEdges {
		if he.Anchor == nil {
			continue
		}
		a, b := i, he.Twin
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, edge{he: i, weight: he.Anchor.Weight})
	}
	return edges
}
