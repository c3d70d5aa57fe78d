// Copyright © 2024 Galvanized Logic Inc.

// Package codec converts between the in-memory Track (a rider set plus a
// line set) and the external wire formats hosts load and save: canonical
// linerider.com JSON, the extended binary ".trk" format, and the native
// "BoshTF" JSON format.
//
// Package codec is provided as part of the bosh rag-doll physics engine.
package codec

import "fmt"

// Kind identifies one of the four decode/encode failure categories the core
// surfaces. Errors of a given Kind can be matched with errors.Is (see
// Error.Is).
type Kind int

const (
	// UnknownPointName is returned when a decoder is given a point
	// identifier outside the ten enumerated rider.PointID names.
	UnknownPointName Kind = iota

	// MissingEntityKind is returned when a decoder is given an entity
	// without a body/sled/mounted discriminator.
	MissingEntityKind

	// MalformedTrackHeader is returned when a binary track header fails
	// its magic or length checks.
	MalformedTrackHeader

	// MissingRiderPeg is returned when encoding to canonical JSON is
	// asked to serialize a rider with no peg point, such as a body-only
	// rider.
	MissingRiderPeg
)

func (k Kind) String() string {
	switch k {
	case UnknownPointName:
		return "unknown point name"
	case MissingEntityKind:
		return "missing entity kind"
	case MalformedTrackHeader:
		return "malformed track header"
	case MissingRiderPeg:
		return "missing rider peg"
	default:
		return "unknown codec error"
	}
}

// Error is the error type codec functions return for the four Kind
// failures; a document that is not valid JSON is reported as a plain
// wrapped error instead. Context is a short human-readable description of
// what was being decoded or encoded; Err, if non-nil, is the underlying
// cause and is reachable via errors.Unwrap.
type Error struct {
	Kind    Kind
	Context string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("codec: %s: %s: %v", e.Kind, e.Context, e.Err)
	}
	return fmt.Sprintf("codec: %s: %s", e.Kind, e.Context)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, &Error{Kind: MissingRiderPeg}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, context string, cause error) *Error {
	return &Error{Kind: kind, Context: context, Err: cause}
}
