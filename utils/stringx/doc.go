// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the character-oriented text helpers of hiext.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package stringx provides text helpers that treat a character as a
// user-perceived character (grapheme cluster).
//
// Overview
//
// Counting, truncation and indexing work on grapheme clusters, so "café"
// written with a combining accent has four characters and a flag emoji is one.
// Case conversion follows the Unicode casing rules of golang.org/x/text/cases.
//
// Functions:
//   - UnderscoreToCamelCase, UppercaseFirst, UppercaseFirstIn
//   - Trim, Truncate, TruncateWith, Split
//   - Count, Graphemes, CharAt, MustCharAt
//   - URLEncode for URL query components
//   - IsValidEmail
//   - ToDate, ToDateFormat, ToDateIn, ParseDate
//   - BoldStrongTags and StripHTML, which use a markup.Renderer
//
// Usage:
//
//	stringx.UnderscoreToCamelCase("foo_bar_baz") // "fooBarBaz"
//	stringx.Truncate("hello world", 5)           // "hello..."
//	c, err := stringx.CharAt("hello", 1)         // "e", nil
//	t, ok := stringx.ToDate("2015-07-06T00:00:00+0000")
//	text, ok := stringx.StripHTML(nil, "<p>hi</p>") // "hi", true
//
// Failures follow one rule per kind: an index out of range is an error
// (CharAt) or a panic (MustCharAt); an unparseable date or unrenderable
// markup yields false.
package stringx
