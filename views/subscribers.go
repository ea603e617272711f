package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/eringen/pubadmin"
)

// Subscribers renders the subscriber table. A subscriber without a stored
// subscribedAt shows "N/A" rather than failing the render.
func (v *Views) Subscribers(subs []pubadmin.Subscriber, csrfToken string) templ.Component {
	return component(func(b *bytes.Buffer) {
		v.layout(b, "Subscribers", "/subscribers/", csrfToken, func(b *bytes.Buffer) {
			b.WriteString(`<h1>Subscribers</h1>`)
			b.WriteString(`<div class="panel"><table><thead><tr>`)
			b.WriteString(`<th>Email</th><th>Subscribed At</th><th>Actions</th>`)
			b.WriteString(`</tr></thead><tbody>`)
			for _, sub := range subs {
				subscribedAt := "N/A"
				if sub.SubscribedAt != nil {
					subscribedAt = fmtDateTime(*sub.SubscribedAt)
				}
				b.WriteString(`<tr><td>` + esc(sub.Email) + `</td>`)
				b.WriteString(`<td>` + subscribedAt + `</td><td>`)
				deleteForm(b, "/subscribers/delete/"+sub.ID+"/", "Are you sure you want to delete this subscriber?", csrfToken)
				b.WriteString(`</td></tr>`)
			}
			b.WriteString(`</tbody></table></div>`)
		})
	})
}
