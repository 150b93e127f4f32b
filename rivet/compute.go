// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rivet

import (
	"math/big"

	"github.com/rivetTDA/rivet-sub001/arrangement"
	"github.com/rivetTDA/rivet-sub001/betti"
	"github.com/rivetTDA/rivet-sub001/bigrade"
	"github.com/rivetTDA/rivet-sub001/firep"
	"github.com/rivetTDA/rivet-sub001/planner"
	"github.com/rivetTDA/rivet-sub001/query"
	"github.com/rivetTDA/rivet-sub001/updater"
	"github.com/rivetTDA/rivet-sub001/xi"
)

// Input is the bifiltration the engine consumes (§6): grade vectors and
// the generator lists for the two dimensions a computation runs over.
type Input struct {
	XGrades, YGrades []*big.Rat
	HomDim           int
	NumLowRows       int // number of (hom_dim-1)-generators
	LowGens          []firep.Generator
	HighGens         []firep.Generator

	// Xi2 is ξ₀ at hom_dim+1, supplied by the caller when available via
	// the standard identity ξ₂(hom_dim) = ξ₀(hom_dim+1) (computed by a
	// separate betti.Compute call over a second Firep one dimension up);
	// nil means ξ₂ is treated as all zero (hom_dim is the top dimension
	// of interest).
	Xi2 *betti.Result
}

// Result is everything a computed barcode template needs for the query
// interface of §4.I.
type Result struct {
	Firep       *firep.Firep
	SupportMat  *xi.Matrix
	Anchors     []*xi.Anchor
	Arrangement *arrangement.DCEL
	State       *updater.State
}

// Query answers one barcode-query against a computed result (§4.I).
func (r *Result) Query(theta, rho float64) ([]query.Bar, error) {
	return query.Line(r.Arrangement, r.SupportMat, theta, rho)
}

// Compute runs the full pipeline (§2): build the firep, the
// multigraded Betti numbers, the ξ-support matrix and anchors, the
// augmented arrangement, a dry-run-weighted spanning path, and the
// updater's real traversal writing every face's barcode template.
//
// An InvariantError panic (raised here when the built arrangement
// fails Validate) is recovered and turned into an error, per §7's
// policy that such bugs abort the entire computation with no partial
// arrangement returned. The reduction, Betti and vineyard code do not
// check their own invariants and raise no InvariantError.
func Compute(in *Input, p Progress) (res *Result, err error) {
	if p == nil {
		p = NoProgress{}
	}
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InvariantError); ok {
				res, err = nil, &Error{Kind: InvariantViolation, Detail: ie.Detail}
				return
			}
			panic(r)
		}
	}()

	grades, gerr := bigrade.NewGradeSet(in.XGrades, in.YGrades)
	if gerr != nil {
		return nil, malformed("%v", gerr)
	}

	p.Report(StageSupport, 0, 4)
	f, ferr := firep.New(grades, in.HomDim, in.NumLowRows, in.LowGens, in.HighGens)
	if ferr != nil {
		return nil, malformed("%v", ferr)
	}
	if p.Cancelled() {
		return nil, ErrCancelled
	}

	xi0 := betti.Compute(f)
	sm := xi.Build(xi0, xi0, in.Xi2)
	anchors := xi.EnumerateAnchors(sm)
	p.Report(StageSupport, 4, 4)

	if err := checkDegenerate(anchors); err != nil {
		return nil, err
	}

	p.Report(StageArrangement, 0, 1)
	arr, aerr := arrangement.Build(anchors, grades)
	if aerr != nil {
		return nil, malformed("%v", aerr)
	}
	p.Report(StageArrangement, 1, 1)
	if p.Cancelled() {
		return nil, ErrCancelled
	}

	if verr := arr.Validate(); verr != nil {
		invariant("%v", verr)
	}

	path := planner.Plan(arr)
	updater.DryRun(f, sm, arr, path)
	path = planner.Plan(arr) // re-run MST now that Weight is filled in

	p.Report(StageInitialRU, 0, 1)
	st := updater.New(f, sm, arr)
	p.Report(StageInitialRU, 1, 1)

	p.Report(StageTraverse, 0, len(path))
	for i := range path {
		if p.Cancelled() {
			return nil, ErrCancelled
		}
		st.Replay(path[i : i+1])
	}
	p.Report(StageTraverse, len(path), len(path))

	return &Result{Firep: f, SupportMat: sm, Anchors: anchors, Arrangement: arr, State: st}, nil
}

// checkDegenerate reports DegenerateAnchor if two distinct anchors
// share a dual point (§7): since anchors are keyed by exact bigrade,
// this can only happen if EnumerateAnchors produced duplicate grades,
// which its own seen-set already prevents — retained as a defensive
// boundary check on the anchor list a caller might have constructed by
// other means.
func checkDegenerate(anchors []*xi.Anchor) error {
	seen := make(map[bigrade.Grade]bool)
	for _, a := range anchors {
		if seen[a.Grade] {
			return degenerate("duplicate anchor at grade %v", a.Grade)
		}
		seen[a.Grade] = true
	}
	return nil
}
