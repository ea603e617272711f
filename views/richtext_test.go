package views

import (
	"bytes"
	"strings"
	"testing"
)

func renderRichText(t *testing.T, content string) string {
	t.Helper()
	var b bytes.Buffer
	writeRichText(&b, content)
	return b.String()
}

func TestRichTextKeepsFormattingTags(t *testing.T) {
	in := `<h2>Title</h2><p>Some <strong>bold</strong> and <em>italic</em> text.</p><ul><li>one</li></ul>`
	got := renderRichText(t, in)
	if got != in {
		t.Errorf("got %q, want input unchanged", got)
	}
}

func TestRichTextDropsScriptBody(t *testing.T) {
	got := renderRichText(t, `<p>before</p><script>alert("x")</script><p>after</p>`)
	if strings.Contains(got, "alert") {
		t.Errorf("script body survived: %q", got)
	}
	if !strings.Contains(got, "<p>before</p>") || !strings.Contains(got, "<p>after</p>") {
		t.Errorf("surrounding content lost: %q", got)
	}
}

func TestRichTextDropsUnknownTagsKeepsText(t *testing.T) {
	got := renderRichText(t, `<div onclick="evil()">hello</div>`)
	if strings.Contains(got, "div") || strings.Contains(got, "onclick") {
		t.Errorf("unknown tag survived: %q", got)
	}
	if !strings.Contains(got, "hello") {
		t.Errorf("text content lost: %q", got)
	}
}

func TestRichTextRejectsUnsafeURLs(t *testing.T) {
	got := renderRichText(t, `<a href="javascript:alert(1)">x</a>`)
	if strings.Contains(got, "javascript") {
		t.Errorf("javascript href survived: %q", got)
	}

	got = renderRichText(t, `<img src="data:text/html,evil">`)
	if strings.Contains(got, "data:") {
		t.Errorf("data src survived: %q", got)
	}
}

func TestRichTextKeepsSafeLinks(t *testing.T) {
	got := renderRichText(t, `<a href="https://example.com/page">link</a>`)
	if !strings.Contains(got, `href="https://example.com/page"`) {
		t.Errorf("safe href lost: %q", got)
	}
	if !strings.Contains(got, `rel="noopener noreferrer"`) {
		t.Errorf("rel attribute missing: %q", got)
	}

	got = renderRichText(t, `<img src="/uploads/pic.jpg" alt="pic">`)
	if !strings.Contains(got, `src="/uploads/pic.jpg"`) || !strings.Contains(got, `alt="pic"`) {
		t.Errorf("relative img lost: %q", got)
	}
}

func TestRichTextStripsEventAttributes(t *testing.T) {
	got := renderRichText(t, `<a href="https://example.com" onmouseover="evil()">x</a>`)
	if strings.Contains(got, "onmouseover") {
		t.Errorf("event attribute survived: %q", got)
	}
}

func TestRichTextEscapesPlainText(t *testing.T) {
	got := renderRichText(t, `a < b & c`)
	if !strings.Contains(got, "&lt; b &amp; c") {
		t.Errorf("text not escaped: %q", got)
	}
}
