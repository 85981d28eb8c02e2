// File: doc.go
// Title: Package Documentation for validationx
// Description: Package validationx provides whole-string pattern validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package validationx matches strings against regular expressions that must
// cover the whole input. Compiled patterns are cached.
package validationx
