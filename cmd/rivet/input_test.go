// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadInputParsesAllKeys(t *testing.T) {
	t.Parallel()
	content := `# a comment, ignored
x_grades: 0 1 2
y_grades: 0 1
hom_dim: 1
num_low_rows: 2
low: 0 0 0 0 1
low: 1 1 1 0
high: 0 0 1 0 1
`
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	in, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if len(in.XGrades) != 3 || len(in.YGrades) != 2 {
		t.Fatalf("grade vectors = %d x-grades, %d y-grades, want 3, 2", len(in.XGrades), len(in.YGrades))
	}
	if in.HomDim != 1 {
		t.Errorf("HomDim = %d, want 1", in.HomDim)
	}
	if in.NumLowRows != 2 {
		t.Errorf("NumLowRows = %d, want 2", in.NumLowRows)
	}
	if len(in.LowGens) != 2 {
		t.Fatalf("len(LowGens) = %d, want 2", len(in.LowGens))
	}
	if got, want := in.LowGens[0].DimIndex, 0; got != want {
		t.Errorf("LowGens[0].DimIndex = %d, want %d", got, want)
	}
	if got, want := in.LowGens[0].Grade, gradeOf(0, 0); got != want {
		t.Errorf("LowGens[0].Grade = %v, want %v", got, want)
	}
	if got, want := in.LowGens[0].Rows, []int{0, 1}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("LowGens[0].Rows = %v, want %v", got, want)
	}
	if len(in.HighGens) != 1 {
		t.Fatalf("len(HighGens) = %d, want 1", len(in.HighGens))
	}
	if got, want := in.HighGens[0].Grade, gradeOf(0, 1); got != want {
		t.Errorf("HighGens[0].Grade = %v, want %v", got, want)
	}
}

func TestReadInputRejectsUnknownKey(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte("bogus: 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := readInput(path); err == nil {
		t.Error("readInput: expected an error for an unknown key")
	}
}

func TestReadInputRejectsMalformedGenerator(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte("low: 0 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := readInput(path); err == nil {
		t.Error("readInput: expected an error for a generator missing its y coordinate")
	}
}

func TestParseRats(t *testing.T) {
	t.Parallel()
	out, err := parseRats("0 1/2 -3")
	if err != nil {
		t.Fatalf("parseRats: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	if out[1].Num().Int64() != 1 || out[1].Denom().Int64() != 2 {
		t.Errorf("out[1] = %v, want 1/2", out[1])
	}
}
