package stringx

import (
	"testing"

	"github.com/msto63/hiext/pkg/markup"
)

func TestBoldStrongTags(t *testing.T) {
	got, err := BoldStrongTags(nil, "Hello <strong>world</strong>!", 14)
	if err != nil {
		t.Fatalf("BoldStrongTags error = %v", err)
	}
	if got.String() != "Hello world!" {
		t.Errorf("String() = %q", got.String())
	}
	if len(got.Spans) != 3 {
		t.Fatalf("got %d spans; want 3", len(got.Spans))
	}

	s := got.Spans[1]
	want := markup.Attributes{FontSize: 14, Color: markup.Black, Bold: true}
	if s.Text != "world" || !s.Styled() || *s.Attributes != want {
		t.Errorf("styled span = %+v", s)
	}
	if got.Spans[0].Styled() || got.Spans[2].Styled() {
		t.Error("text outside <strong> should be unstyled")
	}
}

func TestBoldStrongTagsColor(t *testing.T) {
	red := markup.Color("#FF0000")
	got, err := BoldStrongTags(markup.NewPolicyRenderer(), "<strong>x</strong>", 10, red)
	if err != nil {
		t.Fatalf("BoldStrongTags error = %v", err)
	}
	if len(got.Spans) != 1 || got.Spans[0].Attributes == nil || got.Spans[0].Attributes.Color != red {
		t.Errorf("spans = %+v; want one red span", got.Spans)
	}
}

func TestStripHTML(t *testing.T) {
	got, ok := StripHTML(nil, "<p>hi</p>")
	if !ok || got != "hi" {
		t.Errorf("StripHTML = %q, %v; want %q, true", got, ok, "hi")
	}

	if got, ok := StripHTML(nil, "<p>\xff</p>"); ok {
		t.Errorf("StripHTML on malformed bytes = %q; want absent", got)
	}

	got, ok = StripHTML(markup.NewPolicyRenderer(), "<b>a</b> &amp; b")
	if !ok || got != "a & b" {
		t.Errorf("StripHTML(policy) = %q, %v", got, ok)
	}
}
