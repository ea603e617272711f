package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// Login renders the password form. showError flags a rejected attempt.
func (v *Views) Login(showError bool, csrfToken string) templ.Component {
	return component(func(b *bytes.Buffer) {
		v.head(b, "Login")
		b.WriteString(`<div class="login"><h1>` + esc(v.site.Name) + `</h1>`)
		if showError {
			b.WriteString(`<p class="error">Invalid password.</p>`)
		}
		b.WriteString(`<form method="post" action="/login/">`)
		csrfField(b, csrfToken)
		b.WriteString(`<label for="password">Password</label>`)
		b.WriteString(`<input type="password" id="password" name="password" required autofocus/>`)
		b.WriteString(`<button type="submit" class="primary">Sign in</button>`)
		b.WriteString(`</form></div></body></html>`)
	})
}
