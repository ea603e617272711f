package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/eringen/pubadmin"
)

// Dashboard renders the four summary tiles.
func (v *Views) Dashboard(stats pubadmin.DashboardStats, csrfToken string) templ.Component {
	return component(func(b *bytes.Buffer) {
		v.layout(b, "Dashboard", "/dashboard/", csrfToken, func(b *bytes.Buffer) {
			b.WriteString(`<h1>Dashboard</h1><div class="tiles">`)
			tile(b, "Total Blogs", stats.Blogs)
			tile(b, "Subscribers", stats.Subscribers)
			tile(b, "Form Submissions", stats.Forms)
			tile(b, "Visitors", stats.Visitors)
			b.WriteString(`</div>`)
		})
	})
}

func tile(b *bytes.Buffer, label string, value int) {
	b.WriteString(`<div class="tile"><h2>` + esc(label) + `</h2><p>` + itoa(value) + `</p></div>`)
}
