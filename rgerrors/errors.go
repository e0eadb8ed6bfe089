// Package rgerrors defines the error taxonomy shared by every regraph
// package: a small, closed set of kinds, each exposed as a sentinel so
// callers branch with errors.Is rather than string comparison.
//
// Policy (mirrors the teacher's builder/matrix error conventions):
//   - Only the sentinels below are exported; never construct ad-hoc
//     fmt.Errorf errors at call sites for conditions named here.
//   - Wrap with context using Wrap; the sentinel stays matchable
//     via errors.Is because *Error implements Unwrap.
//   - No panics: every validation failure in regraph surfaces as one of
//     these four kinds.
package rgerrors

import (
	"errors"
	"fmt"
)

// Kind classifies an Error into one of the four taxonomy buckets from
// the specification's error handling design.
type Kind int

const (
	// KindHierarchy covers id collisions, missing graphs, cycles,
	// duplicate typings/relations, malformed relabel maps.
	KindHierarchy Kind = iota
	// KindInvalidHomomorphism covers totality, edge-preservation and
	// attribute-subset violations in a claimed mapping.
	KindInvalidHomomorphism
	// KindRewriting covers non-mono instances, p_typing/rhs_typing
	// re-typing, non-composable control relations, and strict-mode
	// violations.
	KindRewriting
	// KindReGraph is the catch-all: generic kernel-boundary structural
	// violations and otherwise-unclassifiable domain errors.
	KindReGraph
)

func (k Kind) String() string {
	switch k {
	case KindHierarchy:
		return "HierarchyError"
	case KindInvalidHomomorphism:
		return "InvalidHomomorphism"
	case KindRewriting:
		return "RewritingError"
	case KindReGraph:
		return "ReGraphError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error type raised across regraph. Callers
// should match on Kind via errors.Is against the Sentinel values below,
// not by inspecting Error.Kind directly, so that wrapped errors still
// compare correctly.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional wrapped cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind, so that
// errors.Is(err, rgerrors.ErrHierarchy) matches any *Error of that Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == ""
}

// Sentinels for errors.Is matching: errors.Is(err, rgerrors.ErrHierarchy).
var (
	ErrHierarchy           = &Error{Kind: KindHierarchy}
	ErrInvalidHomomorphism = &Error{Kind: KindInvalidHomomorphism}
	ErrRewriting           = &Error{Kind: KindRewriting}
	ErrReGraph             = &Error{Kind: KindReGraph}
)

// Hierarchy builds a HierarchyError with the given message.
func Hierarchy(format string, args ...interface{}) error {
	return &Error{Kind: KindHierarchy, Msg: fmt.Sprintf(format, args...)}
}

// InvalidHomomorphism builds an InvalidHomomorphism error.
func InvalidHomomorphism(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidHomomorphism, Msg: fmt.Sprintf(format, args...)}
}

// Rewriting builds a RewritingError.
func Rewriting(format string, args ...interface{}) error {
	return &Error{Kind: KindRewriting, Msg: fmt.Sprintf(format, args...)}
}

// ReGraph builds the catch-all ReGraphError.
func ReGraph(format string, args ...interface{}) error {
	return &Error{Kind: KindReGraph, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches cause to a new Error of the given kind, preserving
// errors.Is/As compatibility on both the new Error and cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Of reports whether err is a regraph error of the given kind.
func Of(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
