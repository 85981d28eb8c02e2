// File: validationx_test.go
// Title: Unit Tests for Pattern Validation
// Description: Tests anchored matching, the regex cache and the email check.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package validationx

import (
	"testing"

	hixerror "github.com/msto63/hiext/core/error"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"UPPER_CASE%x@EXAMPLE.IO", true},
		{"a@b.info", true},
		{"not-an-email", false},
		{"", false},
		{"user@example", false},
		{"user@example.c", false},
		{"user@example.museum", false},
		{"user@exa mple.com", false},
		{"@example.com", false},
		{"user@example.com ", false},
		{"user@example.com\n", false},
		{"prefix user@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidEmail(tt.input); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("user@example.com"); err != nil {
		t.Errorf("ValidateEmail(valid) = %v", err)
	}
	err := ValidateEmail("nope")
	if !hixerror.HasCode(err, hixerror.CodeInvalidFormat) {
		t.Errorf("ValidateEmail(invalid) code = %v", hixerror.GetCode(err))
	}
}

func TestMatches(t *testing.T) {
	ok, err := Matches(`[a-z]+`, "abc")
	if err != nil || !ok {
		t.Errorf("Matches full = %v, %v", ok, err)
	}

	ok, err = Matches(`[a-z]+`, "abc1")
	if err != nil || ok {
		t.Errorf("Matches partial = %v, %v; want false", ok, err)
	}

	ok, err = Matches(`a|b`, "ab")
	if err != nil || ok {
		t.Errorf("alternation must be anchored as a whole, got %v, %v", ok, err)
	}

	_, err = Matches(`[unclosed`, "x")
	if !hixerror.HasCode(err, hixerror.CodeInvalidFormat) {
		t.Errorf("Matches(invalid pattern) error = %v", err)
	}
}

func TestRegexCache(t *testing.T) {
	first, err := getCompiledRegex(`x+`)
	if err != nil {
		t.Fatal(err)
	}
	second, err := getCompiledRegex(`x+`)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected the cached regex to be reused")
	}
}
