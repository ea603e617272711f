package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// NotFound is the styled 404 page.
func (v *Views) NotFound() templ.Component {
	return v.statusPage("Page Not Found", "The page you are looking for does not exist.")
}

// ServerError is the styled 500 page.
func (v *Views) ServerError() templ.Component {
	return v.statusPage("Something Went Wrong", "An unexpected error occurred. Please try again.")
}

func (v *Views) statusPage(title, detail string) templ.Component {
	return component(func(b *bytes.Buffer) {
		v.head(b, title)
		b.WriteString(`<div class="login"><h1>` + esc(title) + `</h1>`)
		b.WriteString(`<p>` + esc(detail) + `</p>`)
		b.WriteString(`<p><a href="/">Back to the console</a></p></div></body></html>`)
	})
}
