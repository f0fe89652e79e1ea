// Package errors provides structured error types for bomgen.
//
// Every failure that leaves the pipeline carries a machine-readable [Code] so
// the CLI can tell a usage mistake from a broken POM or an unwritable output
// directory without string matching.
//
// # Error Codes
//
//   - USAGE: missing or invalid command-line arguments
//   - CONFIG: no repository root could be resolved, or a bad config file
//   - PARSE: a POM is not well-formed XML after entity normalization
//   - FILESYSTEM: read, walk, mkdir or write failures
//   - INVALID_PATH: a .pom path does not follow the group/artifact/version layout
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUsage, "project name is required")
//	if errors.Is(err, errors.ErrCodeUsage) {
//	    // print usage
//	}
//
//	err := errors.Wrap(errors.ErrCodeFilesystem, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeUsage       Code = "USAGE"
	ErrCodeConfig      Code = "CONFIG"
	ErrCodeParse       Code = "PARSE"
	ErrCodeFilesystem  Code = "FILESYSTEM"
	ErrCodeInvalidPath Code = "INVALID_PATH"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
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

// Is reports whether the outermost *Error in err's chain has the given code.
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

// UserMessage returns the message without the code prefix for *Error values,
// and the plain error string otherwise.
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
