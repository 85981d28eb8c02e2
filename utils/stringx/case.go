// File: case.go
// Title: String Case Conversion Utilities
// Description: Implements underscore-to-camelCase conversion and first
//              character capitalisation using locale-aware casing rules.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with case conversion utilities

package stringx

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnderscoreToCamelCase joins the underscore-separated segments of s. The
// first segment is kept as is; every later segment is capitalised word by
// word, so the remaining letters become lowercase.
// Example: "foo_bar_baz" -> "fooBarBaz"
func UnderscoreToCamelCase(s string) string {
	segments := strings.Split(s, "_")

	var result strings.Builder
	result.Grow(len(s))
	result.WriteString(segments[0])

	// A Caser keeps state and must not be shared between goroutines.
	title := cases.Title(language.Und)
	for _, seg := range segments[1:] {
		if seg == "" {
			continue
		}
		result.WriteString(title.String(seg))
	}
	return result.String()
}

// UppercaseFirst title-cases the first character of s and keeps the rest
// unchanged.
// Example: "hELLO" -> "HELLO"
func UppercaseFirst(s string) string {
	return UppercaseFirstIn(s, language.Und)
}

// UppercaseFirstIn is UppercaseFirst with the casing rules of tag
// (for example Turkish dotted capital I).
func UppercaseFirstIn(s string, tag language.Tag) string {
	if s == "" {
		return s
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cases.Title(tag).String(first) + rest
}
