// ============================================================================
// hiext - Integer and Text Helpers
// ============================================================================
//
// Package:     markup
// Description: HTML renderer built on the golang.org/x/net/html parser
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package markup

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	hixerror "github.com/msto63/hiext/core/error"
	hixlog "github.com/msto63/hiext/core/log"
)

// HTMLRenderer parses markup as an HTML document
type HTMLRenderer struct {
	opts options
}

// NewHTMLRenderer creates an HTML renderer
func NewHTMLRenderer(opts ...Option) *HTMLRenderer {
	return &HTMLRenderer{opts: buildOptions(opts)}
}

// PlainText returns the text a browser would show for markup, with line
// breaks at block elements and surrounding whitespace trimmed
func (r *HTMLRenderer) PlainText(markup string) (string, error) {
	if !utf8.ValidString(markup) {
		err := encodingError("markup.HTMLRenderer.PlainText", markup)
		r.opts.log().DebugWithErr("cannot render markup", err)
		return "", err
	}

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		wrapped := hixerror.Wrap(err, "cannot parse markup").
			WithCode(hixerror.CodeOperationFailed).
			WithOperation("markup.HTMLRenderer.PlainText")
		r.opts.log().DebugWithErr("cannot render markup", wrapped)
		return "", wrapped
	}

	w := &textWriter{atLineStart: true}
	w.walk(doc, false)
	return strings.TrimSpace(w.b.String()), nil
}

// StyleTag keeps all markup other than tag byte for byte
func (r *HTMLRenderer) StyleTag(text, tag string, attrs Attributes) (AttributedText, error) {
	if !utf8.ValidString(text) {
		err := encodingError("markup.HTMLRenderer.StyleTag", text)
		r.opts.log().DebugWithErr("cannot style markup", err, hixlog.Field("tag", tag))
		return AttributedText{}, err
	}
	return styleTag(text, tag, attrs, false), nil
}

// styleTag tokenizes text and styles the contents of tag. With decode set,
// entities in text outside of tags are unescaped.
func styleTag(text, tag string, attrs Attributes, decode bool) AttributedText {
	tag = strings.ToLower(strings.TrimSpace(tag))
	styled := attrs

	var out AttributedText
	depth := 0
	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		raw := string(z.Raw())
		if tt == html.ErrorToken {
			if z.Err() == io.EOF && raw != "" {
				out.Append(raw, nil)
			}
			break
		}

		if tt == html.StartTagToken || tt == html.EndTagToken || tt == html.SelfClosingTagToken {
			name, _ := z.TagName()
			if string(name) == tag {
				switch {
				case tt == html.StartTagToken:
					depth++
					continue
				case tt == html.EndTagToken && depth > 0:
					depth--
					continue
				case tt == html.SelfClosingTagToken:
					continue
				}
			}
		}

		content := raw
		if decode && tt == html.TextToken {
			content = html.UnescapeString(raw)
		}
		if depth > 0 {
			out.Append(content, &styled)
		} else {
			out.Append(content, nil)
		}
	}
	return out
}

var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Caption: true, atom.Dd: true, atom.Details: true, atom.Div: true,
	atom.Dl: true, atom.Dt: true, atom.Fieldset: true, atom.Figcaption: true,
	atom.Figure: true, atom.Footer: true, atom.Form: true, atom.H1: true,
	atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true,
	atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Summary: true, atom.Table: true, atom.Tr: true,
	atom.Ul: true,
}

var skippedElements = map[atom.Atom]bool{
	atom.Head: true, atom.Script: true, atom.Style: true, atom.Template: true,
	atom.Noscript: true, atom.Title: true,
}

// textWriter collects rendered text, collapsing HTML whitespace outside pre
type textWriter struct {
	b            strings.Builder
	pendingSpace bool
	atLineStart  bool
}

func (w *textWriter) walk(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data, pre)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		if skippedElements[n.DataAtom] {
			return
		}
		if n.DataAtom == atom.Br {
			w.lineBreak()
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		w.blockBoundary()
	}
	childPre := pre || n.DataAtom == atom.Pre
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, childPre)
	}
	if block {
		w.blockBoundary()
	}
	if n.DataAtom == atom.Td || n.DataAtom == atom.Th {
		w.pendingSpace = !w.atLineStart
	}
}

func (w *textWriter) text(s string, pre bool) {
	if pre {
		if s == "" {
			return
		}
		if w.pendingSpace {
			w.b.WriteByte(' ')
			w.pendingSpace = false
		}
		w.b.WriteString(s)
		w.atLineStart = strings.HasSuffix(s, "\n")
		return
	}

	for _, r := range s {
		if isHTMLSpace(r) {
			if !w.atLineStart {
				w.pendingSpace = true
			}
			continue
		}
		if w.pendingSpace {
			w.b.WriteByte(' ')
			w.pendingSpace = false
		}
		w.b.WriteRune(r)
		w.atLineStart = false
	}
}

func (w *textWriter) lineBreak() {
	w.pendingSpace = false
	w.b.WriteByte('\n')
	w.atLineStart = true
}

func (w *textWriter) blockBoundary() {
	if !w.atLineStart {
		w.lineBreak()
	}
}

func isHTMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
