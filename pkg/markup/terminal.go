// ============================================================================
// hiext - Integer and Text Helpers
// ============================================================================
//
// Package:     markup
// Description: Terminal rendering of attributed text with lipgloss
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render returns the text with styled spans coloured and emboldened for a
// terminal. Font sizes have no terminal equivalent and are ignored.
func (t AttributedText) Render() string {
	var b strings.Builder
	for _, s := range t.Spans {
		if !s.Styled() {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(renderLines(s.Attributes.style(), s.Text))
	}
	return b.String()
}

// renderLines styles every line on its own. lipgloss renders multi-line
// input as a block and pads short lines to the widest one.
func renderLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (a Attributes) style() lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(a.Bold).
		TabWidth(lipgloss.NoTabConversion)
	if a.Color != "" {
		style = style.Foreground(lipgloss.Color(string(a.Color)))
	}
	return style
}
