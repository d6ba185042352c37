// Package errors provides structured error types for the datasetinsights
// library.
//
// Every error produced by the visualization packages carries a
// machine-readable code so callers can branch on failure class without
// string matching:
//
//	err := errors.New(errors.ErrCodeUnknownColor, "unknown color %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownColor) {
//	    // fall back to auto-selected colors
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNotFound, origErr, "captures file %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation: wrong buffer type, non-numeric coordinates,
	// malformed tables or label maps
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// Lookup failures
	ErrCodeUnknownColor   Code = "UNKNOWN_COLOR"
	ErrCodeUnknownDataset Code = "UNKNOWN_DATASET"
	ErrCodeUnknownLabel   Code = "UNKNOWN_LABEL"
	ErrCodeNotFound       Code = "NOT_FOUND"

	// Rendering failures (font initialization, chart backend)
	ErrCodeRenderFailed Code = "RENDER_FAILED"
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
