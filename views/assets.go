package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/eringen/pubadmin"
)

// Assets renders the upload form and the asset table. message carries upload
// feedback ("uploaded", "failed", missing inputs) between requests.
func (v *Views) Assets(assets []pubadmin.Asset, message, csrfToken string) templ.Component {
	return component(func(b *bytes.Buffer) {
		v.layout(b, "Assets", "/assets/", csrfToken, func(b *bytes.Buffer) {
			b.WriteString(`<h1>Assets</h1>`)
			if message != "" {
				b.WriteString(`<div class="notice">` + esc(message) + `</div>`)
			}

			b.WriteString(`<h2>Upload a new asset</h2>`)
			// The submit button disables itself so a slow upload cannot be
			// double-submitted.
			b.WriteString(`<form method="post" action="/assets/upload/" enctype="multipart/form-data"` +
				` onsubmit="document.getElementById('upload-btn').disabled=true">`)
			csrfField(b, csrfToken)
			b.WriteString(`<label for="fileName">File Name</label>`)
			b.WriteString(`<input type="text" id="fileName" name="fileName" placeholder="Enter asset file name"/>`)
			b.WriteString(`<label for="file">Select File</label>`)
			b.WriteString(`<input type="file" id="file" name="file"/>`)
			b.WriteString(`<button type="submit" class="primary" id="upload-btn">Upload Asset</button>`)
			b.WriteString(`</form>`)

			b.WriteString(`<h2>Uploaded Assets</h2>`)
			b.WriteString(`<div class="panel"><table><thead><tr>`)
			b.WriteString(`<th>File Name</th><th>File URL</th><th>Download</th><th>Uploaded At</th><th>Actions</th>`)
			b.WriteString(`</tr></thead><tbody>`)
			for _, asset := range assets {
				b.WriteString(`<tr><td>` + esc(asset.FileName) + `</td>`)
				b.WriteString(`<td>` + esc(asset.FileURL) + `</td>`)
				b.WriteString(`<td><a href="` + esc(asset.FileURL) + `" target="_blank" rel="noopener noreferrer">View</a></td>`)
				b.WriteString(`<td>` + fmtDate(asset.UploadedAt) + `</td><td>`)
				deleteForm(b, "/assets/delete/"+asset.ID+"/", "Are you sure you want to delete this asset?", csrfToken)
				b.WriteString(`</td></tr>`)
			}
			b.WriteString(`</tbody></table></div>`)
		})
	})
}
