package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/eringen/pubadmin"
)

// FormList renders the contact-form submissions table.
func (v *Views) FormList(subs []pubadmin.FormSubmission, csrfToken string) templ.Component {
	return component(func(b *bytes.Buffer) {
		v.layout(b, "Form Submissions", "/forms/", csrfToken, func(b *bytes.Buffer) {
			b.WriteString(`<h1>Form Submissions</h1>`)
			b.WriteString(`<div class="panel"><table><thead><tr>`)
			b.WriteString(`<th>Name</th><th>Email</th><th>Submitted At</th><th>Status</th><th>Actions</th>`)
			b.WriteString(`</tr></thead><tbody>`)
			for _, sub := range subs {
				b.WriteString(`<tr><td>` + esc(sub.Name) + `</td>`)
				b.WriteString(`<td>` + esc(sub.Email) + `</td>`)
				b.WriteString(`<td>` + fmtDate(sub.CreatedAt) + `</td>`)
				b.WriteString(`<td>` + esc(sub.Status) + `</td><td>`)
				b.WriteString(`<a href="/forms/` + esc(sub.ID) + `/">View</a> `)
				deleteForm(b, "/forms/delete/"+sub.ID+"/", "Are you sure you want to delete this submission?", csrfToken)
				b.WriteString(`</td></tr>`)
			}
			b.WriteString(`</tbody></table></div>`)
		})
	})
}

// FormDetail renders one submission with the status selector.
func (v *Views) FormDetail(sub pubadmin.FormSubmission, csrfToken string) templ.Component {
	return component(func(b *bytes.Buffer) {
		v.layout(b, "Form Submission Details", "/forms/", csrfToken, func(b *bytes.Buffer) {
			b.WriteString(`<h1>Form Submission Details</h1><div class="panel" style="padding:1.5rem">`)
			detailRow(b, "Name", sub.Name)
			detailRow(b, "Email", sub.Email)
			b.WriteString(`<label>Message</label><p class="message">` + esc(sub.Message) + `</p>`)
			detailRow(b, "Submitted At", fmtDateTime(sub.CreatedAt))
			detailRow(b, "Status", sub.Status)

			b.WriteString(`<form method="post" action="/forms/` + esc(sub.ID) + `/status/">`)
			csrfField(b, csrfToken)
			b.WriteString(`<label for="status">Change Status</label><select id="status" name="status">`)
			for _, status := range []string{pubadmin.StatusPending, pubadmin.StatusProcessed, pubadmin.StatusCompleted} {
				selected := ""
				if status == sub.Status {
					selected = ` selected`
				}
				b.WriteString(`<option value="` + status + `"` + selected + `>` + status + `</option>`)
			}
			b.WriteString(`</select>`)
			b.WriteString(`<button type="submit" class="primary">Update</button>`)
			b.WriteString(`</form>`)
			b.WriteString(`<p><a href="/forms/">Close</a></p></div>`)
		})
	})
}

func detailRow(b *bytes.Buffer, label, value string) {
	b.WriteString(`<label>` + esc(label) + `</label><p>` + esc(value) + `</p>`)
}
