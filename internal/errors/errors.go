// Package errors provides the coded error taxonomy for scentcloud.
//
// Every failure the pipeline can surface carries a machine-readable Code so
// the CLI and tests can branch on the kind of failure without matching
// message text:
//
//	err := errors.New(errors.ErrCodeEmptyInput, "no labels to render")
//	if errors.Is(err, errors.ErrCodeEmptyInput) {
//	    // handle empty input
//	}
//
//	err := errors.Wrap(errors.ErrCodeWriteFailure, cause, "writing %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// ErrCodeResourceNotFound is returned when the font file cannot be located.
	ErrCodeResourceNotFound Code = "RESOURCE_NOT_FOUND"
	// ErrCodeEmptyInput is returned when there are no labels to render.
	ErrCodeEmptyInput Code = "EMPTY_INPUT"
	// ErrCodeWriteFailure is returned when the output image cannot be written.
	ErrCodeWriteFailure Code = "WRITE_FAILURE"
	// ErrCodeInvalidConfig is returned for out-of-range options or unreadable config files.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	// ErrCodeInvalidFont is returned when font data is not a usable TrueType font.
	ErrCodeInvalidFont Code = "INVALID_FONT"
	// ErrCodeNoSpace is returned when no label fits on the canvas.
	ErrCodeNoSpace Code = "NO_SPACE"
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
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix, including the
// cause when there is one. Non-coded errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
