// File: date.go
// Title: Date Parsing Helpers
// Description: Converts strings to times with Unicode date patterns. Failures
//              are reported as an absent value rather than a panic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"time"

	"github.com/msto63/hiext/utils/timex"
)

// ToDate parses s with the pattern "yyyy-MM-dd'T'HH:mm:ssZZZZ".
// The boolean is false when s is not such a date.
func ToDate(s string) (time.Time, bool) {
	return ToDateIn(s, timex.DefaultPattern, nil)
}

// ToDateFormat parses s with a Unicode date pattern in the local time zone
func ToDateFormat(s, pattern string) (time.Time, bool) {
	return ToDateIn(s, pattern, nil)
}

// ToDateIn parses s with a Unicode date pattern. Values without a zone are
// interpreted in loc (time.Local when nil). The boolean is false for an
// invalid pattern, a non-matching value or out-of-range fields.
func ToDateIn(s, pattern string, loc *time.Location) (time.Time, bool) {
	t, err := ParseDate(s, pattern, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDate is ToDateIn returning the reason for a failure
func ParseDate(s, pattern string, loc *time.Location) (time.Time, error) {
	return timex.ParsePattern(s, pattern, loc)
}
