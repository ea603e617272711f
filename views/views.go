// Package views holds the default templ components for the pubadmin console.
// Components are hand-rendered into a buffer and exposed through
// pubadmin.ViewFuncs, so a site can swap any page for its own.
package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/pubadmin"
)

// Site carries the site-wide values templates need.
type Site struct {
	Name string // sidebar header
}

// Views renders the default console pages for one site.
type Views struct {
	site Site
}

// New creates the default view set.
func New(site Site) *Views {
	if site.Name == "" {
		site.Name = "Admin Panel"
	}
	return &Views{site: site}
}

// Funcs wires the default pages into a pubadmin.ViewFuncs.
func (v *Views) Funcs() pubadmin.ViewFuncs {
	return pubadmin.ViewFuncs{
		Login:        v.Login,
		Dashboard:    v.Dashboard,
		BlogList:     v.BlogList,
		BlogForm:     v.BlogForm,
		BlogNotFound: v.BlogNotFound,
		Subscribers:  v.Subscribers,
		FormList:     v.FormList,
		FormDetail:   v.FormDetail,
		Assets:       v.Assets,
		NotFound:     v.NotFound,
		ServerError:  v.ServerError,
	}
}

// component adapts a buffer-writing function into a templ.Component.
func component(fn func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// fmtDate renders a timestamp the way the console lists do.
func fmtDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

// fmtDateTime renders a timestamp with seconds, for detail views.
func fmtDateTime(t time.Time) string {
	return t.Format("Jan 02, 2006 15:04:05")
}

func csrfField(b *bytes.Buffer, token string) {
	b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(token) + `"/>`)
}
