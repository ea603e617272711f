package views

import "bytes"

type navItem struct {
	href  string
	label string
}

var navItems = []navItem{
	{"/dashboard/", "Dashboard"},
	{"/blogs/", "Blogs"},
	{"/subscribers/", "Subscribers"},
	{"/forms/", "Forms"},
	{"/assets/", "Assets"},
}

// layout writes the persistent navigation frame around a page body. active is
// the href of the current destination; csrfToken feeds the logout form.
func (v *Views) layout(b *bytes.Buffer, title, active, csrfToken string, body func(*bytes.Buffer)) {
	v.head(b, title)
	b.WriteString(`<div class="shell">`)

	b.WriteString(`<aside class="sidebar"><h1>` + esc(v.site.Name) + `</h1><nav>`)
	for _, item := range navItems {
		class := ""
		if item.href == active {
			class = ` class="active"`
		}
		b.WriteString(`<a href="` + item.href + `"` + class + `>` + item.label + `</a>`)
	}
	b.WriteString(`</nav>`)
	b.WriteString(`<div class="logout"><form method="post" action="/logout/">`)
	csrfField(b, csrfToken)
	b.WriteString(`<button type="submit">Logout</button></form></div>`)
	b.WriteString(`</aside>`)

	b.WriteString(`<main class="content">`)
	body(b)
	b.WriteString(`</main></div></body></html>`)
}

// head writes the document head shared by every page, framed or not.
func (v *Views) head(b *bytes.Buffer, title string) {
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	b.WriteString(`<title>` + esc(title) + ` | ` + esc(v.site.Name) + `</title>`)
	b.WriteString(`<link rel="stylesheet" href="/public/admin.css"/>`)
	b.WriteString(`</head><body>`)
}
