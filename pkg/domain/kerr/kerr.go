// Package kerr carries classified errors across the domain layer.
//
// Three kinds are raised locally by validation, the access gate and the
// integrity checks; everything else is unclassified and rendered as an
// internal error at the API boundary.
package kerr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Internal Kind = iota
	BadRequest
	Unauthorized
	NotFound
)

// Error is a kind-tagged error whose message is part of the API contract.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

var _ error = &Error{}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NewBadRequest(message string) *Error {
	return New(BadRequest, message)
}

func NewUnauthorized(message string) *Error {
	return New(Unauthorized, message)
}

func NewNotFound(message string) *Error {
	return New(NotFound, message)
}

// KindOf reports the classification of err.
// Errors which are not (and do not wrap) an *Error are Internal.
func KindOf(err error) Kind {
	ke := new(Error)
	if errors.As(err, &ke) {
		return ke.Kind
	}
	return Internal
}

// MessageOf extracts the carried message of a classified error.
// Unclassified errors have no message safe to show to a caller.
func MessageOf(err error) (string, bool) {
	ke := new(Error)
	if errors.As(err, &ke) {
		return ke.Message, true
	}
	return "", false
}

// requested row is absent.
var ErrMissing = errors.New("missing")

// a row conflicting on a unique constraint exists already.
var ErrDuplicate = errors.New("duplicate")

// Missing is returned by stores when a by-id (or by-unique-field) lookup
// finds no row.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Identity, m.Table)
}

func (m Missing) Unwrap() error {
	return ErrMissing
}

// Duplicate is returned by stores when an insert trips a unique constraint.
// This is the backstop for concurrent check-then-act races: callers translate
// it to the same BadRequest the pre-check raises.
type Duplicate struct {
	Table      string
	Constraint string
}

var _ error = Duplicate{}

func (d Duplicate) Error() string {
	return fmt.Sprintf("conflict on %s in %s", d.Constraint, d.Table)
}

func (d Duplicate) Unwrap() error {
	return ErrDuplicate
}
