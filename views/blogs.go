package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/eringen/pubadmin"
)

// BlogList renders the blogs table sorted by createdAt descending.
func (v *Views) BlogList(blogs []pubadmin.BlogPost, csrfToken string) templ.Component {
	return component(func(b *bytes.Buffer) {
		v.layout(b, "Blogs", "/blogs/", csrfToken, func(b *bytes.Buffer) {
			b.WriteString(`<h1>Blogs</h1>`)
			b.WriteString(`<p><a class="button" href="/blogs/create/">New Blog</a></p>`)
			b.WriteString(`<div class="panel"><table><thead><tr>`)
			b.WriteString(`<th>Title</th><th>Author</th><th>Created At</th><th>Actions</th>`)
			b.WriteString(`</tr></thead><tbody>`)
			for _, blog := range blogs {
				b.WriteString(`<tr><td>` + esc(blog.Title) + `</td>`)
				b.WriteString(`<td>` + esc(blog.Author) + `</td>`)
				b.WriteString(`<td>` + fmtDate(blog.CreatedAt) + `</td><td>`)
				b.WriteString(`<a href="/blogs/edit/` + esc(blog.ID) + `/">Edit</a> `)
				deleteForm(b, "/blogs/delete/"+blog.ID+"/", "Are you sure you want to delete this blog?", csrfToken)
				b.WriteString(`</td></tr>`)
			}
			b.WriteString(`</tbody></table></div>`)
		})
	})
}

// deleteForm writes an inline single-button form with a confirmation guard.
func deleteForm(b *bytes.Buffer, action, confirm, csrfToken string) {
	b.WriteString(`<form class="inline" method="post" action="` + esc(action) + `" onsubmit="return confirm('` + esc(confirm) + `')">`)
	csrfField(b, csrfToken)
	b.WriteString(`<button type="submit" class="danger">Delete</button></form>`)
}
