// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides the structured error type of hiext.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package error provides a structured error type carrying a code, the
// operation that failed, key/value details and an optional cause.
//
// Overview
//
// Errors are built fluently and compared by code:
//
//	err := hixerror.New("index out of range").
//		WithCode(hixerror.CodeOutOfRange).
//		WithOperation("stringx.CharAt").
//		WithDetail("index", 5)
//
//	if hixerror.HasCode(err, hixerror.CodeOutOfRange) { ... }
//
// Wrap keeps the code and details of a wrapped hiext error. Helper
// constructors cover the common cases: InputError, FormatError and
// OutOfRangeError.
//
// The package is imported under the alias hixerror to avoid shadowing the
// built-in error type.
package error
