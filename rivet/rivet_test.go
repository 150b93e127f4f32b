// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rivet

import (
	"errors"
	"math/big"
	"testing"

	"github.com/rivetTDA/rivet-sub001/firep"
)

func rats(vals ...int64) []*big.Rat {
	out := make([]*big.Rat, len(vals))
	for i, v := range vals {
		out[i] = big.NewRat(v, 1)
	}
	return out
}

// A filled triangle (3 edges bounding 1 triangle, all at a single
// bigrade) is the smallest nontrivial bifiltration: it exercises every
// stage of Compute (support, arrangement, initial RU, traversal) while
// being simple enough that the pipeline can be trusted to terminate
// cleanly and produce a single-face arrangement (one bigrade means no
// two ξ-supports can be incomparable, so no anchors are ever produced).
func triangleInput() *Input {
	return &Input{
		XGrades:    rats(0),
		YGrades:    rats(0),
		HomDim:     0,
		NumLowRows: 3,
		LowGens: []firep.Generator{
			{DimIndex: 0, Rows: []int{0, 1}},
			{DimIndex: 1, Rows: []int{0, 2}},
			{DimIndex: 2, Rows: []int{1, 2}},
		},
		HighGens: []firep.Generator{
			{DimIndex: 0, Rows: []int{0, 1, 2}},
		},
	}
}

func TestComputeTriangle(t *testing.T) {
	t.Parallel()
	res, err := Compute(triangleInput(), nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.Firep == nil || res.SupportMat == nil || res.Arrangement == nil || res.State == nil {
		t.Fatal("Compute returned a Result with a nil field")
	}
	if len(res.Anchors) != 0 {
		t.Errorf("len(Anchors) = %d, want 0 for a single-bigrade input", len(res.Anchors))
	}
	if err := res.Arrangement.Validate(); err != nil {
		t.Errorf("Arrangement.Validate: %v", err)
	}

	if _, err := res.Query(0, 0); err != nil {
		var rerr *Error
		if !errors.As(err, &rerr) {
			t.Errorf("Query returned a non-rivet error: %v", err)
		}
	}
}

func TestComputeReportsProgress(t *testing.T) {
	t.Parallel()
	var stages []Stage
	p := &recordingProgress{report: func(s Stage, cur, max int) { stages = append(stages, s) }}
	if _, err := Compute(triangleInput(), p); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(stages) == 0 {
		t.Error("expected at least one progress report")
	}
}

type recordingProgress struct {
	report func(Stage, int, int)
}

func (p *recordingProgress) Report(s Stage, cur, max int) { p.report(s, cur, max) }
func (p *recordingProgress) Cancelled() bool              { return false }

func TestComputeRejectsNonIncreasingGrades(t *testing.T) {
	t.Parallel()
	in := triangleInput()
	in.XGrades = rats(1, 0) // not strictly increasing
	_, err := Compute(in, nil)
	if err == nil {
		t.Fatal("Compute: expected an error for non-increasing grades")
	}
	var rerr *Error
	if !errors.As(err, &rerr) || rerr.Kind != MalformedInput {
		t.Errorf("err = %v, want a MalformedInput *Error", err)
	}
}

func TestComputeRejectsOutOfRangeRow(t *testing.T) {
	t.Parallel()
	in := triangleInput()
	in.LowGens[0].Rows = []int{0, 99}
	_, err := Compute(in, nil)
	if err == nil {
		t.Fatal("Compute: expected an error for an out-of-range row reference")
	}
}
