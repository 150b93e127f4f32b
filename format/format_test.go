// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ratsEqual(a, b []*big.Rat) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()
	d := &Data{
		HomDim:  1,
		XGrades: []*big.Rat{big.NewRat(0, 1), big.NewRat(3, 2)},
		YGrades: []*big.Rat{big.NewRat(-1, 1), big.NewRat(5, 1)},
		Support: []SupportRecord{
			{X: 0, Y: 0, Xi0: 1, Xi1: 0, Xi2: 2},
			{X: 1, Y: 1, Xi0: 0, Xi1: 3, Xi2: 0},
		},
		Templates: [][]BarToken{
			nil,
			{
				{Begin: 0, End: 1, Multiplicity: 2},
				{Begin: 1, End: -1, Essential: true, Multiplicity: 1},
			},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got.HomDim != d.HomDim {
		t.Errorf("HomDim = %d, want %d", got.HomDim, d.HomDim)
	}
	if !ratsEqual(got.XGrades, d.XGrades) {
		t.Errorf("XGrades = %v, want %v", got.XGrades, d.XGrades)
	}
	if !ratsEqual(got.YGrades, d.YGrades) {
		t.Errorf("YGrades = %v, want %v", got.YGrades, d.YGrades)
	}
	if diff := cmp.Diff(d.Support, got.Support); diff != "" {
		t.Errorf("Support mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(d.Templates, got.Templates); diff != "" {
		t.Errorf("Templates mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteEmptyTemplateLine(t *testing.T) {
	t.Parallel()
	d := &Data{
		HomDim:    0,
		XGrades:   []*big.Rat{big.NewRat(0, 1)},
		YGrades:   []*big.Rat{big.NewRat(0, 1)},
		Templates: [][]BarToken{nil},
	}
	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Templates) != 1 || got.Templates[0] != nil {
		t.Errorf("Templates = %v, want [nil]", got.Templates)
	}
}

func TestReadRejectsWrongHeader(t *testing.T) {
	t.Parallel()
	buf := bytes.NewBufferString("NOT_RIVET\n")
	if _, err := Read(buf); err == nil {
		t.Error("Read: expected an error for a bad header")
	}
}
