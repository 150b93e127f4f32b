// Copyright ©2026 The RIVET Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rivet is the top-level orchestrator: it wires the bigraded
// matrix, firep, betti, xi, arrangement, planner, updater, and query
// packages into the single Compute entry point, and defines the error
// kinds of §7.
package rivet

import "fmt"

// ErrorKind classifies a rivet error, per §7.
type ErrorKind int

const (
	MalformedInput ErrorKind = iota
	DegenerateAnchor
	InvariantViolation
	Cancelled
	ResourceExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedInput:
		return "MalformedInput"
	case DegenerateAnchor:
		return "DegenerateAnchor"
	case InvariantViolation:
		return "InvariantViolation"
	case Cancelled:
		return "Cancelled"
	case ResourceExceeded:
		return "ResourceExceeded"
	default:
		return "Unknown"
	}
}

// Error is the error type every returned rivet failure satisfies,
// modeled on gonum's sentinel-error convention (e.g.
// graph.ErrDirectedCycle): callers can compare Kind directly, or use
// errors.Is against one of the package-level sentinels below, which
// Error's Is method matches by Kind alone.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Detail) }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrMalformedInput    = &Error{Kind: MalformedInput}
	ErrDegenerateAnchor  = &Error{Kind: DegenerateAnchor}
	ErrCancelled         = &Error{Kind: Cancelled}
	ErrResourceExceeded  = &Error{Kind: ResourceExceeded}
)

func malformed(format string, args ...interface{}) *Error {
	return &Error{Kind: MalformedInput, Detail: fmt.Sprintf(format, args...)}
}

func degenerate(format string, args ...interface{}) *Error {
	return &Error{Kind: DegenerateAnchor, Detail: fmt.Sprintf(format, args...)}
}

// InvariantError is panicked by Compute when the built arrangement
// fails Validate (e.g. a face boundary that fails to close) and
// recovered only at Compute's boundary, per §7's "these are bugs;
// surface immediately with full context" policy. The ru, betti and
// updater packages do not check for duplicate lows or a
// non-unitriangular U, and do not raise it.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string { return fmt.Sprintf("InvariantViolation: %s", e.Detail) }

// invariant panics with an InvariantError; Compute's own arrangement
// check is its only caller.
func invariant(format string, args ...interface{}) {
	panic(&InvariantError{Detail: fmt.Sprintf(format, args...)})
}
