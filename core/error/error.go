// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type carrying a code, the failing operation
//              and key/value details. It stays compatible with the standard
//              error interface, errors.Is and errors.As.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with coded, wrappable errors

package error

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error represents a structured error with a code, operation and details
type Error struct {
	message   string
	cause     error
	code      Code
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message: message,
		code:    CodeUnknown,
		details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context.
// The code of a wrapped *Error is inherited.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message: message,
		cause:   err,
		code:    CodeUnknown,
		details: make(map[string]interface{}),
	}

	var hixErr *Error
	if errors.As(err, &hixErr) {
		wrapped.code = hixErr.code
		for k, v := range hixErr.details {
			wrapped.details[k] = v
		}
	}
	return wrapped
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code.
// A target without a code matches nothing.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.code == CodeUnknown {
		return false
	}
	return e.code == t.code
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithOperation records the operation that failed
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a single detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails merges the given details
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Operation returns the failing operation, if recorded
func (e *Error) Operation() string {
	return e.operation
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// Detail returns a single detail value
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// String returns a detailed representation used in logs
func (e *Error) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(string(e.code))
	b.WriteString("]")
	if e.operation != "" {
		b.WriteString(" ")
		b.WriteString(e.operation)
		b.WriteString(":")
	}
	b.WriteString(" ")
	b.WriteString(e.Error())

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, e.details[k])
		}
	}
	return b.String()
}

// HasCode checks if an error (or any error it wraps) has the given code
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode returns the code of the first *Error in the chain, or CodeUnknown
func GetCode(err error) Code {
	var hixErr *Error
	if errors.As(err, &hixErr) {
		return hixErr.code
	}
	return CodeUnknown
}

// InputError reports an argument a helper cannot work with
func InputError(operation string, input interface{}, expected string) *Error {
	return New(fmt.Sprintf("invalid input for %s", operation)).
		WithCode(CodeInvalidInput).
		WithOperation(operation).
		WithDetail("input", input).
		WithDetail("expected", expected)
}

// FormatError reports a value that does not match the expected format
func FormatError(operation string, input interface{}, expectedFormat string) *Error {
	return New(fmt.Sprintf("invalid format in %s", operation)).
		WithCode(CodeInvalidFormat).
		WithOperation(operation).
		WithDetail("input", input).
		WithDetail("expected_format", expectedFormat)
}

// OutOfRangeError reports an index outside [0, length)
func OutOfRangeError(operation string, index, length int) *Error {
	return New(fmt.Sprintf("index %d out of range [0, %d)", index, length)).
		WithCode(CodeOutOfRange).
		WithOperation(operation).
		WithDetail("index", index).
		WithDetail("length", length)
}
