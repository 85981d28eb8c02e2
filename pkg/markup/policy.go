// ============================================================================
// hiext - Integer and Text Helpers
// ============================================================================
//
// Package:     markup
// Description: Renderer built on bluemonday sanitisation policies
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package markup

import (
	"html"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	hixlog "github.com/msto63/hiext/core/log"
)

// PolicyRenderer strips markup with sanitisation policies. Unlike
// HTMLRenderer, StyleTag removes every tag other than the styled one.
type PolicyRenderer struct {
	opts   options
	strict *bluemonday.Policy

	// tag -> *bluemonday.Policy allowing only that tag
	tagPolicies sync.Map
}

// NewPolicyRenderer creates a sanitising renderer
func NewPolicyRenderer(opts ...Option) *PolicyRenderer {
	strict := bluemonday.StrictPolicy()
	strict.AddSpaceWhenStrippingTag(true)

	return &PolicyRenderer{
		opts:   buildOptions(opts),
		strict: strict,
	}
}

// PlainText strips all tags, drops script and style content, decodes
// entities and collapses whitespace to single spaces
func (r *PolicyRenderer) PlainText(markup string) (string, error) {
	if !utf8.ValidString(markup) {
		err := encodingError("markup.PolicyRenderer.PlainText", markup)
		r.opts.log().DebugWithErr("cannot render markup", err)
		return "", err
	}

	text := html.UnescapeString(r.strict.Sanitize(markup))
	return strings.Join(strings.Fields(text), " "), nil
}

// StyleTag sanitises text down to tag and styles its contents
func (r *PolicyRenderer) StyleTag(text, tag string, attrs Attributes) (AttributedText, error) {
	if !utf8.ValidString(text) {
		err := encodingError("markup.PolicyRenderer.StyleTag", text)
		r.opts.log().DebugWithErr("cannot style markup", err, hixlog.Field("tag", tag))
		return AttributedText{}, err
	}

	sanitized := r.policyFor(tag).Sanitize(text)
	return styleTag(sanitized, tag, attrs, true), nil
}

func (r *PolicyRenderer) policyFor(tag string) *bluemonday.Policy {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if p, ok := r.tagPolicies.Load(tag); ok {
		return p.(*bluemonday.Policy)
	}

	p := bluemonday.NewPolicy()
	p.AllowElements(tag)
	p.AllowNoAttrs().OnElements(tag)
	actual, _ := r.tagPolicies.LoadOrStore(tag, p)
	return actual.(*bluemonday.Policy)
}
