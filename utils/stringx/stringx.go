// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the character-oriented string helpers. A character
//              is a user-perceived character (grapheme cluster), so accented
//              letters and emoji sequences count as one.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with character helpers

package stringx

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	hixerror "github.com/msto63/hiext/core/error"
	"github.com/msto63/hiext/utils/validationx"
)

// DefaultTrailing is appended by Truncate
const DefaultTrailing = "..."

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstNonBlank returns the first non-blank string from the provided strings.
// This is useful for providing default values while ignoring whitespace-only strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if !IsBlank(s) {
			return s
		}
	}
	return ""
}

// Trim removes leading and trailing horizontal whitespace: tabs and every
// Unicode space separator. Line breaks are kept.
func Trim(s string) string {
	return strings.TrimFunc(s, isHorizontalSpace)
}

func isHorizontalSpace(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}

// Truncate shortens s to length characters followed by "..." when s is
// longer than length characters.
func Truncate(s string, length int) string {
	return TruncateWith(s, length, DefaultTrailing)
}

// TruncateWith shortens s to length characters followed by trailing when s
// is longer than length characters. A negative length counts as zero.
func TruncateWith(s string, length int, trailing string) string {
	if length < 0 {
		length = 0
	}
	if uniseg.GraphemeClusterCount(s) <= length {
		return s
	}
	return prefix(s, length) + trailing
}

// prefix returns the first n characters of s
func prefix(s string, n int) string {
	rest := s
	state := -1
	for i := 0; i < n && rest != ""; i++ {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return s[:len(s)-len(rest)]
}

// Split splits s around every occurrence of delimiter. Matching is literal,
// empty segments are kept and an empty delimiter yields s itself.
func Split(s, delimiter string) []string {
	if delimiter == "" {
		return []string{s}
	}
	return strings.Split(s, delimiter)
}

// IsValidEmail reports whether the whole string looks like an email address
func IsValidEmail(s string) bool {
	return validationx.IsValidEmail(s)
}

// Count returns the number of characters in s
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Graphemes returns the characters of s in order
func Graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// CharAt returns the character at position i. It fails with CodeOutOfRange
// when i is negative or not less than Count(s).
func CharAt(s string, i int) (string, error) {
	if i >= 0 {
		rest := s
		state := -1
		var cluster string
		for pos := 0; rest != ""; pos++ {
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if pos == i {
				return cluster, nil
			}
		}
	}
	return "", hixerror.OutOfRangeError("stringx.CharAt", i, Count(s))
}

// MustCharAt is like CharAt but panics when i is out of range
func MustCharAt(s string, i int) string {
	c, err := CharAt(s, i)
	if err != nil {
		panic(err)
	}
	return c
}
