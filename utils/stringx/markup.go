// File: markup.go
// Title: Markup Helpers
// Description: Tag styling and HTML stripping through a markup renderer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import "github.com/msto63/hiext/pkg/markup"

// BoldStrongTags removes the <strong> tags of s and styles their contents in
// bold with the given font size and colour (black unless given). A nil
// renderer means markup.Default().
func BoldStrongTags(r markup.Renderer, s string, size float64, color ...markup.Color) (markup.AttributedText, error) {
	if r == nil {
		r = markup.Default()
	}
	c := markup.Black
	if len(color) > 0 && color[0] != "" {
		c = color[0]
	}
	return r.StyleTag(s, "strong", markup.Attributes{FontSize: size, Color: c, Bold: true})
}

// StripHTML renders s as HTML and returns its plain text. The boolean is
// false when the renderer cannot handle s. A nil renderer means
// markup.Default().
func StripHTML(r markup.Renderer, s string) (string, bool) {
	if r == nil {
		r = markup.Default()
	}
	text, err := r.PlainText(s)
	if err != nil {
		return "", false
	}
	return text, true
}
