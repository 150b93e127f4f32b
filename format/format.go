// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format reads and writes the RIVET persistence wire format
// (§6): a header, the bifiltration's grade vectors, the ξ-support
// list, and one barcode-template line per 2-cell.
package format

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/rivetTDA/rivet-sub001/arrangement"
	"github.com/rivetTDA/rivet-sub001/bigrade"
	"github.com/rivetTDA/rivet-sub001/xi"
)

// Header is the literal first line of every RIVET persistence file.
const Header = "RIVET_0"

// SupportRecord is one line of the ξ-support list.
type SupportRecord struct {
	X, Y                 int
	Xi0, Xi1, Xi2        int
}

// BarToken is one (begin, end, multiplicity) triple of a barcode
// template line; Essential marks a bar to infinity (end token "i").
type BarToken struct {
	Begin        int
	End          int
	Essential    bool
	Multiplicity int
}

// Data is the full decoded contents of a persistence file, independent
// of the live xi/arrangement types so Read and Write can round-trip
// without rebuilding an arrangement.
type Data struct {
	HomDim    int
	XGrades   []*big.Rat
	YGrades   []*big.Rat
	Support   []SupportRecord
	Templates [][]BarToken // one slice per face, nil meaning an empty template
}

// FromResult builds Data from a live support matrix and the arrangement
// faces the updater has written templates into.
func FromResult(homDim int, grades *bigrade.GradeSet, sm *xi.Matrix, faces []arrangement.Face) *Data {
	d := &Data{HomDim: homDim}
	for i := 0; i < grades.NumX(); i++ {
		d.XGrades = append(d.XGrades, grades.X(i))
	}
	for i := 0; i < grades.NumY(); i++ {
		d.YGrades = append(d.YGrades, grades.Y(i))
	}
	for _, s := range sm.List {
		d.Support = append(d.Support, SupportRecord{X: s.Grade.X, Y: s.Grade.Y, Xi0: s.Xi0, Xi1: s.Xi1, Xi2: s.Xi2})
	}
	for _, f := range faces {
		if f.Template == nil {
			d.Templates = append(d.Templates, nil)
			continue
		}
		var toks []BarToken
		for _, b := range f.Template.Bars {
			toks = append(toks, BarToken{Begin: b.Begin, End: b.End, Essential: b.End == -1, Multiplicity: b.Multiplicity})
		}
		d.Templates = append(d.Templates, toks)
	}
	return d
}

// Write emits d in the wire format of §6.
func Write(w io.Writer, d *Data) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header)
	fmt.Fprintln(bw, d.HomDim)
	fmt.Fprintln(bw, len(d.XGrades), len(d.YGrades))
	for _, g := range d.XGrades {
		fmt.Fprintln(bw, g.RatString())
	}
	for _, g := range d.YGrades {
		fmt.Fprintln(bw, g.RatString())
	}
	fmt.Fprintln(bw, len(d.Support))
	for _, s := range d.Support {
		fmt.Fprintln(bw, s.X, s.Y, s.Xi0, s.Xi1, s.Xi2)
	}
	fmt.Fprintln(bw, len(d.Templates))
	for _, toks := range d.Templates {
		if len(toks) == 0 {
			fmt.Fprintln(bw, "-")
			continue
		}
		parts := make([]string, len(toks))
		for i, t := range toks {
			end := "i"
			if !t.Essential {
				end = strconv.Itoa(t.End)
			}
			parts[i] = fmt.Sprintf("%d,%s,%d", t.Begin, end, t.Multiplicity)
		}
		fmt.Fprintln(bw, strings.Join(parts, " "))
	}
	return bw.Flush()
}

// Read parses the wire format of §6, the inverse of Write.
func Read(r io.Reader) (*Data, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lines := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	header, ok := lines()
	if !ok || header != Header {
		return nil, fmt.Errorf("format: missing or wrong header %q", header)
	}
	d := &Data{}
	if err := scanInt(lines, &d.HomDim); err != nil {
		return nil, err
	}
	var nx, ny int
	line, ok := lines()
	if !ok {
		return nil, fmt.Errorf("format: truncated bin-count line")
	}
	if _, err := fmt.Sscan(line, &nx, &ny); err != nil {
		return nil, fmt.Errorf("format: bad bin-count line %q: %w", line, err)
	}
	for i := 0; i < nx; i++ {
		g, err := scanRat(lines)
		if err != nil {
			return nil, err
		}
		d.XGrades = append(d.XGrades, g)
	}
	for i := 0; i < ny; i++ {
		g, err := scanRat(lines)
		if err != nil {
			return nil, err
		}
		d.YGrades = append(d.YGrades, g)
	}

	var nsup int
	if err := scanInt(lines, &nsup); err != nil {
		return nil, err
	}
	for i := 0; i < nsup; i++ {
		line, ok := lines()
		if !ok {
			return nil, fmt.Errorf("format: truncated support list")
		}
		var s SupportRecord
		if _, err := fmt.Sscan(line, &s.X, &s.Y, &s.Xi0, &s.Xi1, &s.Xi2); err != nil {
			return nil, fmt.Errorf("format: bad support line %q: %w", line, err)
		}
		d.Support = append(d.Support, s)
	}

	var nfaces int
	if err := scanInt(lines, &nfaces); err != nil {
		return nil, err
	}
	for i := 0; i < nfaces; i++ {
		line, ok := lines()
		if !ok {
			return nil, fmt.Errorf("format: truncated template list")
		}
		if line == "-" {
			d.Templates = append(d.Templates, nil)
			continue
		}
		var toks []BarToken
		for _, field := range strings.Fields(line) {
			parts := strings.Split(field, ",")
			if len(parts) != 3 {
				return nil, fmt.Errorf("format: bad bar token %q", field)
			}
			begin, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, fmt.Errorf("format: bad bar token %q: %w", field, err)
			}
			mult, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("format: bad bar token %q: %w", field, err)
			}
			t := BarToken{Begin: begin, Multiplicity: mult}
			if parts[1] == "i" {
				t.Essential = true
				t.End = -1
			} else {
				end, err := strconv.Atoi(parts[1])
				if err != nil {
					return nil, fmt.Errorf("format: bad bar token %q: %w", field, err)
				}
				t.End = end
			}
			toks = append(toks, t)
		}
		d.Templates = append(d.Templates, toks)
	}
	return d, nil
}

func scanInt(lines func() (string, bool), v *int) error {
	line, ok := lines()
	if !ok {
		return fmt.Errorf("format: truncated input")
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return fmt.Errorf("format: bad integer line %q: %w", line, err)
	}
	*v = n
	return nil
}

func scanRat(lines func() (string, bool)) (*big.Rat, error) {
	line, ok := lines()
	if !ok {
		return nil, fmt.Errorf("format: truncated grade list")
	}
	g, ok2 := new(big.Rat).SetString(strings.TrimSpace(line))
	if !ok2 {
		return nil, fmt.Errorf("format: bad rational %q", line)
	}
	return g, nil
}
