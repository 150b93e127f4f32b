// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/rivetTDA/rivet-sub001/bigrade"
	"github.com/rivetTDA/rivet-sub001/firep"
	"github.com/rivetTDA/rivet-sub001/rivet"
)

func gradeOf(x, y int) bigrade.Grade { return bigrade.Grade{X: x, Y: y} }

// readInput parses the CLI's bifiltration input file: a thin,
// line-oriented convenience format (this adapter's own, not part of
// the core's Generator-based API) of the form
//
//	x_grades: r0 r1 ...
//	y_grades: r0 r1 ...
//	hom_dim: d
//	num_low_rows: n
//	low: dimIndex x y r0 r1 ...
//	high: dimIndex x y r0 r1 ...
func readInput(path string) (*rivet.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in := &rivet.Input{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: expected \"key: value\", got %q", lineNo, line)
		}
		rest = strings.TrimSpace(rest)
		switch strings.TrimSpace(key) {
		case "x_grades":
			in.XGrades, err = parseRats(rest)
		case "y_grades":
			in.YGrades, err = parseRats(rest)
		case "hom_dim":
			in.HomDim, err = strconv.Atoi(rest)
		case "num_low_rows":
			in.NumLowRows, err = strconv.Atoi(rest)
		case "low":
			var g firep.Generator
			g, err = parseGenerator(rest)
			in.LowGens = append(in.LowGens, g)
		case "high":
			var g firep.Generator
			g, err = parseGenerator(rest)
			in.HighGens = append(in.HighGens, g)
		default:
			return nil, fmt.Errorf("line %d: unknown key %q", lineNo, key)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return in, nil
}

func parseRats(s string) ([]*big.Rat, error) {
	var out []*big.Rat
	for _, f := range strings.Fields(s) {
		r, ok := new(big.Rat).SetString(f)
		if !ok {
			return nil, fmt.Errorf("bad rational %q", f)
		}
		out = append(out, r)
	}
	return out, nil
}

func parseGenerator(s string) (firep.Generator, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return firep.Generator{}, fmt.Errorf("generator needs at least dimIndex x y, got %q", s)
	}
	dimIndex, err := strconv.Atoi(fields[0])
	if err != nil {
		return firep.Generator{}, err
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return firep.Generator{}, err
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return firep.Generator{}, err
	}
	g := firep.Generator{DimIndex: dimIndex, Grade: gradeOf(x, y)}
	for _, f := range fields[3:] {
		r, err := strconv.Atoi(f)
		if err != nil {
			return firep.Generator{}, err
		}
		g.Rows = append(g.Rows, r)
	}
	return g, nil
}
