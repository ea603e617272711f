package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/eringen/pubadmin"
)

// BlogForm renders the create/edit form. The whole draft round-trips through
// the form so tag add/remove actions can re-render it without persisting.
func (v *Views) BlogForm(form pubadmin.BlogForm, csrfToken string) templ.Component {
	title := "Create Blog"
	action := "/blogs/create/"
	if form.ID != "" {
		title = "Edit Blog"
		action = "/blogs/edit/" + form.ID + "/"
	}
	d := form.Draft
	return component(func(b *bytes.Buffer) {
		v.layout(b, title, "/blogs/", csrfToken, func(b *bytes.Buffer) {
			b.WriteString(`<h1>` + title + `</h1>`)
			b.WriteString(`<form method="post" action="` + esc(action) + `">`)
			csrfField(b, csrfToken)
			// First submit button in the form, so Enter in the tag input
			// adds a tag instead of saving.
			b.WriteString(`<button type="submit" name="action" value="add-tag" hidden aria-hidden="true"></button>`)

			textInput(b, "title", "Title", d.Title, true)
			b.WriteString(`<label for="content">Content</label>`)
			b.WriteString(`<textarea id="content" name="content">` + esc(d.Content) + `</textarea>`)
			textInput(b, "imageUrl", "Image URL", d.ImageURL, false)
			textInput(b, "author", "Author", d.Author, true)
			textInput(b, "authorImageUrl", "Author Image URL", d.AuthorImageURL, false)
			textInput(b, "authorDescription", "Author Description", d.AuthorDescription, false)

			b.WriteString(`<label for="tagInput">Tags</label>`)
			b.WriteString(`<input type="text" id="tagInput" name="tagInput" value="` + esc(d.TagInput) + `" placeholder="Add a tag and press Enter"/>`)
			b.WriteString(`<ul class="tags">`)
			for i, tag := range d.Tags {
				b.WriteString(`<li>` + esc(tag))
				b.WriteString(`<input type="hidden" name="tags" value="` + esc(tag) + `"/>`)
				b.WriteString(` <button type="submit" class="plain" name="action" value="remove-tag-` + itoa(i) + `" aria-label="Remove tag">&times;</button>`)
				b.WriteString(`</li>`)
			}
			b.WriteString(`</ul>`)

			b.WriteString(`<button type="submit" class="primary" name="action" value="save">Save</button>`)
			b.WriteString(` <a href="/blogs/">Cancel</a>`)
			b.WriteString(`</form>`)

			if form.ID != "" && d.Content != "" {
				b.WriteString(`<h2>Preview</h2><div class="preview">`)
				writeRichText(b, d.Content)
				b.WriteString(`</div>`)
			}
		})
	})
}

// BlogNotFound is the explicit state for editing a document that no longer
// exists — never a blank, submittable form.
func (v *Views) BlogNotFound() templ.Component {
	return component(func(b *bytes.Buffer) {
		v.head(b, "Post Not Found")
		b.WriteString(`<div class="login"><h1>Post not found</h1>`)
		b.WriteString(`<p>This blog post does not exist or has been deleted.</p>`)
		b.WriteString(`<p><a href="/blogs/">Back to blogs</a></p></div></body></html>`)
	})
}

func textInput(b *bytes.Buffer, name, label, value string, required bool) {
	b.WriteString(`<label for="` + name + `">` + esc(label) + `</label>`)
	b.WriteString(`<input type="text" id="` + name + `" name="` + name + `" value="` + esc(value) + `"`)
	if required {
		b.WriteString(` required`)
	}
	b.WriteString(`/>`)
}
