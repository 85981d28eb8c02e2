// File: url.go
// Title: URL Query Encoding
// Description: Percent-encodes text for use in a URL query component.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import "strings"

const upperHex = "0123456789ABCDEF"

// queryAllowed marks the bytes RFC 3986 permits unescaped in a query:
// unreserved, sub-delims, ":", "@", "/" and "?".
var queryAllowed [256]bool

func init() {
	for c := 'a'; c <= 'z'; c++ {
		queryAllowed[c] = true
		queryAllowed[c-'a'+'A'] = true
	}
	for c := '0'; c <= '9'; c++ {
		queryAllowed[c] = true
	}
	for _, c := range "-._~!$&'()*+,;=:@/?" {
		queryAllowed[c] = true
	}
}

// URLEncode percent-encodes every byte of s that is not allowed in a URL
// query component. Spaces become %20; query separators such as & and = are
// left alone.
func URLEncode(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !queryAllowed[s[i]] {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if queryAllowed[c] {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}
	return b.String()
}
