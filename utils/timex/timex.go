// File: timex.go
// Title: Date Pattern Parsing
// Description: Translates Unicode (LDML) date patterns such as
//              "yyyy-MM-dd'T'HH:mm:ssZZZZ" into Go reference layouts and
//              parses or formats times with them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with LDML translation and parsing

package timex

import (
	"strings"
	"sync"
	"time"

	hixerror "github.com/msto63/hiext/core/error"
)

// DefaultPattern is the ISO-like pattern used when none is given
const DefaultPattern = "yyyy-MM-dd'T'HH:mm:ssZZZZ"

// Zone fields are parsed leniently: numeric offsets with or without colon,
// "Z" for UTC, and the localized GMT form.
var zoneLayouts = []string{"Z0700", "Z07:00", "GMT-07:00"}

// The localized GMT form writes a zero offset as a bare "GMT". The time
// package cannot express that as an optional offset, so ParsePattern retries
// such layouts with a literal "GMT" in UTC.
const (
	gmtOffsetLayout = "GMT-07:00"
	gmtLiteral      = "GMT"
)

// Literal text containing any of these would be read by the time package as
// a layout element.
var layoutHazards = []string{"Jan", "Mon", "MST", "PM", "pm", "_", "Z07", "-07"}

type translation struct {
	layouts []string
	err     error
}

var layoutCache sync.Map // pattern -> translation

// Layouts returns the Go layouts equivalent to an LDML date pattern. Patterns
// with a zone field yield one layout per accepted zone notation.
func Layouts(pattern string) ([]string, error) {
	if cached, ok := layoutCache.Load(pattern); ok {
		tr := cached.(translation)
		return tr.layouts, tr.err
	}

	layouts, err := translate(pattern)
	layoutCache.Store(pattern, translation{layouts: layouts, err: err})
	return layouts, err
}

// ParsePattern parses value with an LDML pattern. A nil location means
// time.Local; zone fields in the value take precedence.
func ParsePattern(value, pattern string, loc *time.Location) (time.Time, error) {
	layouts, err := Layouts(pattern)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	for _, layout := range layouts {
		if !strings.Contains(layout, gmtOffsetLayout) {
			continue
		}
		bare := strings.ReplaceAll(layout, gmtOffsetLayout, gmtLiteral)
		if t, err := time.ParseInLocation(bare, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, hixerror.Wrap(lastErr, "value does not match date pattern").
		WithCode(hixerror.CodeInvalidFormat).
		WithOperation("timex.ParsePattern").
		WithDetail("value", value).
		WithDetail("pattern", pattern)
}

// FormatPattern formats t with an LDML pattern
func FormatPattern(t time.Time, pattern string) (string, error) {
	layouts, err := Layouts(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layouts[0]), nil
}

// translate walks the pattern and builds every layout alternative
func translate(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, patternError(pattern, "empty pattern")
	}

	layouts := []string{""}
	appendAll := func(alts ...string) {
		next := make([]string, 0, len(layouts)*len(alts))
		for _, l := range layouts {
			for _, a := range alts {
				next = append(next, l+a)
			}
		}
		layouts = next
	}
	appendLiteral := func(lit string) error {
		if hasLayoutHazard(lit) {
			return patternError(pattern, "literal text "+lit+" cannot be expressed")
		}
		appendAll(lit)
		return nil
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == '\'':
			lit, next, ok := readQuoted(runes, i)
			if !ok {
				return nil, patternError(pattern, "unterminated quote")
			}
			if err := appendLiteral(lit); err != nil {
				return nil, err
			}
			i = next

		case isPatternLetter(r):
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			alts, err := field(r, j-i, lastByte(layouts[0]))
			if err != nil {
				return nil, patternError(pattern, err.Error())
			}
			appendAll(alts...)
			i = j

		default:
			if err := appendLiteral(string(r)); err != nil {
				return nil, err
			}
			i++
		}
	}

	return layouts, nil
}

// readQuoted reads a quoted literal starting at runes[start] == '\''.
// "''" is an escaped quote both inside and outside quoted text.
func readQuoted(runes []rune, start int) (string, int, bool) {
	if start+1 < len(runes) && runes[start+1] == '\'' {
		return "'", start + 2, true
	}

	var lit strings.Builder
	for j := start + 1; j < len(runes); j++ {
		if runes[j] != '\'' {
			lit.WriteRune(runes[j])
			continue
		}
		if j+1 < len(runes) && runes[j+1] == '\'' {
			lit.WriteRune('\'')
			j++
			continue
		}
		return lit.String(), j + 1, true
	}
	return "", len(runes), false
}

// field maps one run of a pattern letter to its layout alternatives
func field(letter rune, n int, prev byte) ([]string, error) {
	one := func(s string) ([]string, error) { return []string{s}, nil }

	switch letter {
	case 'y', 'u':
		if n == 2 {
			return one("06")
		}
		return one("2006")
	case 'M', 'L':
		switch n {
		case 1:
			return one("1")
		case 2:
			return one("01")
		case 3:
			return one("Jan")
		case 4:
			return one("January")
		}
	case 'd':
		switch n {
		case 1:
			return one("2")
		case 2:
			return one("02")
		}
	case 'D':
		if n <= 3 {
			return one("002")
		}
	case 'E':
		if n <= 3 {
			return one("Mon")
		}
		if n == 4 {
			return one("Monday")
		}
	case 'a':
		return one("PM")
	case 'H':
		if n <= 2 {
			return one("15")
		}
	case 'h':
		switch n {
		case 1:
			return one("3")
		case 2:
			return one("03")
		}
	case 'm':
		switch n {
		case 1:
			return one("4")
		case 2:
			return one("04")
		}
	case 's':
		switch n {
		case 1:
			return one("5")
		case 2:
			return one("05")
		}
	case 'S':
		if prev == '.' || prev == ',' {
			return one(strings.Repeat("0", n))
		}
		return nil, errUnsupported("fractional seconds must follow '.' or ','")
	case 'Z':
		if n <= 5 {
			return zoneLayouts, nil
		}
	case 'X':
		switch n {
		case 1:
			return one("Z07")
		case 2:
			return one("Z0700")
		case 3:
			return one("Z07:00")
		}
	case 'x':
		switch n {
		case 1:
			return one("-07")
		case 2:
			return one("-0700")
		case 3:
			return one("-07:00")
		}
	case 'z':
		if n <= 3 {
			return one("MST")
		}
	}

	return nil, errUnsupported("unsupported field " + strings.Repeat(string(letter), n))
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func hasLayoutHazard(lit string) bool {
	for _, r := range lit {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	for _, h := range layoutHazards {
		if strings.Contains(lit, h) {
			return true
		}
	}
	return false
}

func lastByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[len(s)-1]
}

type errUnsupported string

func (e errUnsupported) Error() string { return string(e) }

func patternError(pattern, reason string) *hixerror.Error {
	return hixerror.FormatError("timex.Layouts", pattern, "LDML date pattern").
		WithDetail("reason", reason)
}
