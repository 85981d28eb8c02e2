// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the hiext packages to classify
//              failures of the text and date helpers, the markup renderers and
//              the configuration layer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with helper error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown         Code = "UNKNOWN"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeOperationFailed Code = "OPERATION_FAILED"

	// Text and date helpers
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeOutOfRange    Code = "OUT_OF_RANGE"
	CodeEncodingError Code = "ENCODING_ERROR"

	// Configuration
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}
