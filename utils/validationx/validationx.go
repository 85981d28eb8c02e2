// File: validationx.go
// Title: Pattern Validation Utilities
// Description: Implements whole-string regular expression matching with a
//              compiled-pattern cache, and the email format check built on it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with anchored matching and email check

package validationx

import (
	"regexp"
	"sync"

	hixerror "github.com/msto63/hiext/core/error"
)

// EmailPattern is the accepted email shape. It is deliberately permissive and
// kept unchanged for compatibility with existing callers.
const EmailPattern = `[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,4}`

// Regex cache for compiled patterns to avoid recompilation
var (
	regexCache = make(map[string]*regexp.Regexp)
	regexMu    sync.RWMutex
)

// getCompiledRegex returns a cached compiled regex or compiles and caches it.
// Patterns are anchored so they must match the whole input.
func getCompiledRegex(pattern string) (*regexp.Regexp, error) {
	regexMu.RLock()
	if regex, exists := regexCache[pattern]; exists {
		regexMu.RUnlock()
		return regex, nil
	}
	regexMu.RUnlock()

	regex, err := regexp.Compile(`^(?:` + pattern + `)\z`)
	if err != nil {
		return nil, hixerror.Wrap(err, "invalid pattern").
			WithCode(hixerror.CodeInvalidFormat).
			WithOperation("validationx.Matches").
			WithDetail("pattern", pattern)
	}

	regexMu.Lock()
	regexCache[pattern] = regex
	regexMu.Unlock()

	return regex, nil
}

// Matches reports whether the whole of s matches pattern
func Matches(pattern, s string) (bool, error) {
	regex, err := getCompiledRegex(pattern)
	if err != nil {
		return false, err
	}
	return regex.MatchString(s), nil
}

// IsValidEmail reports whether s has the shape described by EmailPattern
func IsValidEmail(s string) bool {
	ok, err := Matches(EmailPattern, s)
	return err == nil && ok
}

// ValidateEmail returns a format error when s is not an email address
func ValidateEmail(s string) error {
	if !IsValidEmail(s) {
		return hixerror.FormatError("validationx.ValidateEmail", s, "email address")
	}
	return nil
}
