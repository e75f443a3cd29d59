// Package errors provides structured error types for patchgrid.
//
// Every failure the command can report carries a machine-readable [Code] and a
// human-readable message. The CLI prints the message (see [UserMessage]) and
// exits with a failure status; callers that need to branch use [Is] or [GetCode].
//
// # Error Codes
//
//   - INVALID_*: argument validation failures, detected before any file is written
//   - IO_ERROR: filesystem failures while writing layouts
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGrid, "grid width %d out of range", w)
//	if errors.Is(err, errors.ErrCodeInvalidGrid) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Argument validation errors
	ErrCodeInvalidArgs    Code = "INVALID_ARGS"
	ErrCodeInvalidInteger Code = "INVALID_INTEGER"
	ErrCodeInvalidGrid    Code = "INVALID_GRID"
	ErrCodeInvalidPatch   Code = "INVALID_PATCH"
	ErrCodeInvalidCount   Code = "INVALID_COUNT"

	// Filesystem errors
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

// IsValidation reports whether err is one of the INVALID_* argument errors.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidArgs, ErrCodeInvalidInteger, ErrCodeInvalidGrid,
		ErrCodeInvalidPatch, ErrCodeInvalidCount:
		return true
	}
	return false
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// IO errors keep their cause so the failing path and reason stay visible.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Code == ErrCodeIO && e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
