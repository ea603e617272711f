package views

import (
	"bytes"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

// Rich-text content arrives from an external editor widget and is stored
// verbatim. Previews pass it through this sanitizer: only a fixed set of
// formatting tags survives, URL attributes are restricted to safe schemes,
// and script/style bodies are dropped entirely.

var (
	reTag  = regexp.MustCompile(`^<\s*(/?)\s*([a-zA-Z][a-zA-Z0-9]*)((?:[^>"']|"[^"]*"|'[^']*')*)/?\s*>$`)
	reAttr = regexp.MustCompile(`([a-zA-Z-]+)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

var allowedTags = map[string]bool{
	"p": true, "br": true, "hr": true,
	"strong": true, "em": true, "b": true, "i": true, "u": true, "s": true,
	"h1": true, "h2": true, "h3": true, "h4": true,
	"ul": true, "ol": true, "li": true,
	"blockquote": true, "pre": true, "code": true,
	"a": true, "img": true,
	"table": true, "thead": true, "tbody": true, "tr": true, "th": true, "td": true,
}

// allowedAttrs maps tag -> attributes that survive sanitizing.
var allowedAttrs = map[string][]string{
	"a":   {"href"},
	"img": {"src", "alt", "width", "height"},
}

// RichText returns a component rendering sanitized rich-text HTML.
func RichText(content string) templ.Component {
	return component(func(b *bytes.Buffer) {
		writeRichText(b, content)
	})
}

func writeRichText(b *bytes.Buffer, content string) {
	s := content
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			b.WriteString(escText(s))
			return
		}
		if lt > 0 {
			b.WriteString(escText(s[:lt]))
			s = s[lt:]
		}
		gt := strings.Index(s, ">")
		if gt < 0 {
			// Dangling "<" with no closing bracket: treat as text.
			b.WriteString(escText(s))
			return
		}
		tag := s[:gt+1]
		s = s[gt+1:]

		m := reTag.FindStringSubmatch(tag)
		if m == nil {
			continue // malformed or comment, drop
		}
		closing := m[1] == "/"
		name := strings.ToLower(m[2])

		// Script and style lose their bodies, not just their tags.
		if !closing && (name == "script" || name == "style") {
			if end := strings.Index(strings.ToLower(s), "</"+name); end >= 0 {
				s = s[end:]
				if gt := strings.Index(s, ">"); gt >= 0 {
					s = s[gt+1:]
				} else {
					s = ""
				}
			} else {
				s = ""
			}
			continue
		}

		if !allowedTags[name] {
			continue
		}
		if closing {
			b.WriteString("</" + name + ">")
			continue
		}
		b.WriteString("<" + name)
		for _, attr := range allowedAttrs[name] {
			val, ok := attrValue(m[3], attr)
			if !ok {
				continue
			}
			if attr == "href" || attr == "src" {
				val = safeURL(val)
				if val == "" {
					continue
				}
			} else {
				val = html.EscapeString(val)
			}
			b.WriteString(` ` + attr + `="` + val + `"`)
		}
		if name == "a" {
			b.WriteString(` rel="noopener noreferrer"`)
		}
		b.WriteString(">")
	}
}

// escText escapes a text segment, normalizing any entities it already holds
// so stored content is never double-escaped.
func escText(s string) string {
	return html.EscapeString(html.UnescapeString(s))
}

func attrValue(attrs, name string) (string, bool) {
	for _, m := range reAttr.FindAllStringSubmatch(attrs, -1) {
		if strings.EqualFold(m[1], name) {
			if m[2] != "" {
				return m[2], true
			}
			return m[3], true
		}
	}
	return "", false
}

// safeURL admits relative paths, fragments, and http/https/mailto/tel
// absolute URLs; everything else (javascript:, data:, ...) is rejected.
func safeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
