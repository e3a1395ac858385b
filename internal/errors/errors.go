// Package errors provides the domain errors shared across the client.
//
// The page layer deliberately collapses every failure into one inline
// message, so codes here exist for logging and for the few places that need
// to tell "the credential is no good" apart from "the call failed".
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library helpers so callers only import one errors
// package.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
)

// Code classifies a failure.
type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeValidation   Code = "VALIDATION"
	CodeRemote       Code = "REMOTE"
	CodeInternal     Code = "INTERNAL"
)

// Error is a coded error with an optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error carrying the same code, so sentinel-style checks
// like errors.Is(err, errors.Unauthorized("")) work across wrapping.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// NotFound creates a NOT_FOUND error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// Unauthorized creates an UNAUTHORIZED error.
func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg}
}

// Forbidden creates a FORBIDDEN error.
func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg}
}

// Validation creates a VALIDATION error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Remote creates a REMOTE error for a failed collaborator call.
func Remote(msg string) *Error {
	return &Error{Code: CodeRemote, Message: msg}
}

// Internal creates an INTERNAL error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Wrap attaches a cause to a coded error.
func Wrap(code Code, msg string, cause error) *Error {
	return &Error{Code: code, Message: msg, cause: cause}
}

// CodeOf returns the code of err, or CodeInternal when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
