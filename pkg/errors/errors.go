// Package errors provides structured error types for the orientation
// workbench's ambient/operational layer (CLI argument handling, config
// loading, DOT/SVG rendering).
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// Invariant violations inside the core algorithmic packages (bst, interval,
// segtree, linkcut, graph, generator, convert, strategy, amc, sat) use
// panic instead — this package is reserved for errors surfaced to main.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArgument, "invalid seed: %s", raw)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "failed to write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeInvalidConfig marks a config file that failed to load or decode.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// ErrCodeInvalidArgument marks a malformed CLI flag or argument.
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"

	// ErrCodeRenderFailed marks a DOT-parse or SVG-rasterisation failure.
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// ErrCodeSolverInternal marks an unexpected failure inside the
	// experiment-loop orchestration (as distinct from a core-package panic).
	ErrCodeSolverInternal Code = "SOLVER_INTERNAL"

	// ErrCodeIO marks a failure reading or writing a file.
	ErrCodeIO Code = "IO_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
