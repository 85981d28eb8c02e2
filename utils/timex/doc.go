// File: doc.go
// Title: Package Documentation for timex
// Description: Package timex translates Unicode date patterns into Go layouts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package timex parses and formats times with Unicode (LDML) date patterns
// such as "yyyy-MM-dd'T'HH:mm:ssZZZZ".
//
// Layouts translates a pattern into Go reference layouts and caches the
// result. Zone fields (Z..ZZZZZ) accept "+0200", "+02:00", "Z", "GMT+02:00"
// and a bare "GMT". Pattern letters without a Go equivalent, and literal text
// the time package would read as a layout element, make a pattern invalid.
package timex
