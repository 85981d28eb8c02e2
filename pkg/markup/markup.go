// ============================================================================
// hiext - Integer and Text Helpers
// ============================================================================
//
// Package:     markup
// Description: Markup renderer capability used by the text helpers: plain text
//              extraction and tag styling over minimal HTML
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rivo/uniseg"

	hixerror "github.com/msto63/hiext/core/error"
	hixlog "github.com/msto63/hiext/core/log"
)

// Renderer turns HTML-like markup into plain or styled text.
// Implementations must be safe for concurrent use.
type Renderer interface {
	// PlainText renders markup and returns its text content
	PlainText(markup string) (string, error)

	// StyleTag removes every occurrence of tag from text and styles the
	// enclosed contents with attrs
	StyleTag(text, tag string, attrs Attributes) (AttributedText, error)
}

// Renderer names accepted by New
const (
	RendererHTML   = "html"
	RendererPolicy = "policy"
)

var defaultRenderer Renderer = NewHTMLRenderer()

// Default returns the shared HTML renderer
func Default() Renderer {
	return defaultRenderer
}

// New returns a renderer by configuration name
func New(name string, opts ...Option) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RendererHTML, "":
		return NewHTMLRenderer(opts...), nil
	case RendererPolicy:
		return NewPolicyRenderer(opts...), nil
	default:
		return nil, hixerror.InputError("markup.New", name, "html or policy").
			WithCode(hixerror.CodeNotFound)
	}
}

// Option configures a renderer
type Option func(*options)

type options struct {
	logger *hixlog.Logger
}

// WithLogger sets the logger used to report rendering failures
func WithLogger(logger *hixlog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) log() *hixlog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return hixlog.GetDefault().WithName("markup")
}

// Color is a hex colour such as "#FF8800"
type Color string

// Black is the default styling colour
const Black Color = "#000000"

var hexColor = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ParseColor validates a "#RGB" or "#RRGGBB" colour
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !hexColor.MatchString(s) {
		return "", hixerror.FormatError("markup.ParseColor", s, "#RGB or #RRGGBB")
	}
	return Color(strings.ToUpper(s)), nil
}

// Attributes describe how a span is styled
type Attributes struct {
	FontSize float64
	Color    Color
	Bold     bool
}

// String returns a compact description, e.g. "14pt #000000 bold"
func (a Attributes) String() string {
	s := fmt.Sprintf("%gpt %s", a.FontSize, a.Color)
	if a.Bold {
		s += " bold"
	}
	return s
}

// Span is a run of text; nil Attributes means unstyled
type Span struct {
	Text       string
	Attributes *Attributes
}

// Styled reports whether the span carries attributes
func (s Span) Styled() bool {
	return s.Attributes != nil
}

// AttributedText is text made of ordered spans
type AttributedText struct {
	Spans []Span
}

// Plain wraps s in a single unstyled span
func Plain(s string) AttributedText {
	var t AttributedText
	t.Append(s, nil)
	return t
}

// Append adds text, merging it into the last span when the attributes match
func (t *AttributedText) Append(text string, attrs *Attributes) {
	if text == "" {
		return
	}
	if n := len(t.Spans); n > 0 && sameAttributes(t.Spans[n-1].Attributes, attrs) {
		t.Spans[n-1].Text += text
		return
	}
	t.Spans = append(t.Spans, Span{Text: text, Attributes: attrs})
}

// String returns the text without styling
func (t AttributedText) String() string {
	var b strings.Builder
	for _, s := range t.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Len returns the number of user-perceived characters in the text
func (t AttributedText) Len() int {
	return uniseg.GraphemeClusterCount(t.String())
}

func sameAttributes(a, b *Attributes) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func encodingError(operation string, markup string) *hixerror.Error {
	return hixerror.New("markup is not valid UTF-8").
		WithCode(hixerror.CodeEncodingError).
		WithOperation(operation).
		WithDetail("bytes", len(markup))
}
