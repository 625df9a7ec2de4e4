// Package errors provides error handling for sankeyfmt.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for host-facing messages
//   - Assertion errors for programming-contract violations
//
// Usage:
//
//	// Wrap with context
//	if err := json.Unmarshal(data, &v); err != nil {
//	    return errors.Wrap(err, "failed to decode node positions")
//	}
//
//	// Flag a broken caller contract
//	return errors.AssertionFailedf("unknown match target %q", target)
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf    = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Sentinel errors. Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates a card, group or slice path does not exist in the model
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates a host edit carried a value of the wrong type
	ErrInvalidRequest = New("invalid request")

	// ErrMalformedState indicates a persisted blob could not be decoded
	ErrMalformedState = New("malformed persisted state")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// IsMalformedStateError checks if an error is or wraps ErrMalformedState
func IsMalformedStateError(err error) bool {
	return err != nil && Is(err, ErrMalformedState)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}

// WrapMalformedState marks a decode failure as malformed persisted state
func WrapMalformedState(err error, field string) error {
	return Wrapf(Wrap(ErrMalformedState, err.Error()), "decode %s", field)
}
