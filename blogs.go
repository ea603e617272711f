package pubadmin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// BlogDraft mirrors the blog form's fields: the BlogPost shape minus
// identifiers and timestamps, plus the pending tag input.
type BlogDraft struct {
	Title             string
	Content           string
	ImageURL          string
	Author            string
	AuthorImageURL    string
	AuthorDescription string
	Tags              []string
	TagInput          string
}

// BlogForm is the state round-tripped through the create/edit form.
// An empty ID means create; otherwise the id comes from the route and is
// immutable for the lifetime of the page.
type BlogForm struct {
	ID    string
	Draft BlogDraft
}

// fields encodes the draft as a document field map. Empty optional URL
// fields are stored as null, as the original console did.
func (d BlogDraft) fields() map[string]any {
	var imageURL, authorImageURL any
	if d.ImageURL != "" {
		imageURL = d.ImageURL
	}
	if d.AuthorImageURL != "" {
		authorImageURL = d.AuthorImageURL
	}
	return map[string]any{
		"title":             d.Title,
		"content":           d.Content,
		"imageUrl":          imageURL,
		"author":            d.Author,
		"authorImageUrl":    authorImageURL,
		"authorDescription": d.AuthorDescription,
		"tags":              d.Tags,
	}
}

// draftFromPost seeds an edit form from a stored post.
func draftFromPost(p BlogPost) BlogDraft {
	return BlogDraft{
		Title:             p.Title,
		Content:           p.Content,
		ImageURL:          p.ImageURL,
		Author:            p.Author,
		AuthorImageURL:    p.AuthorImageURL,
		AuthorDescription: p.AuthorDescription,
		Tags:              p.Tags,
	}
}

func draftFromForm(c echo.Context) BlogDraft {
	return BlogDraft{
		Title:             c.FormValue("title"),
		Content:           c.FormValue("content"),
		ImageURL:          c.FormValue("imageUrl"),
		Author:            c.FormValue("author"),
		AuthorImageURL:    c.FormValue("authorImageUrl"),
		AuthorDescription: c.FormValue("authorDescription"),
		Tags:              FilterEmpty(c.Request().Form["tags"]),
		TagInput:          c.FormValue("tagInput"),
	}
}

// applyTagAction mutates the draft's tag list for the add-tag and
// remove-tag-<i> form actions and reports whether it handled the action.
// Duplicate tags are allowed; removal is positional.
func applyTagAction(d *BlogDraft, c echo.Context) bool {
	action := c.FormValue("action")
	switch {
	case action == "add-tag":
		d.Tags = AppendTag(d.Tags, d.TagInput)
		d.TagInput = ""
		return true
	case strings.HasPrefix(action, "remove-tag-"):
		if i, err := strconv.Atoi(strings.TrimPrefix(action, "remove-tag-")); err == nil {
			d.Tags = RemoveTagAt(d.Tags, i)
		}
		return true
	}
	return false
}

func (a *App) handleBlogList(c echo.Context) error {
	docs, err := a.Store.List(c.Request().Context(), ColBlogs)
	if err != nil {
		return err
	}
	return Render(c, a.Views.BlogList(BlogsFromDocs(docs), CsrfToken(c)))
}

func (a *App) handleBlogCreatePage(c echo.Context) error {
	return Render(c, a.Views.BlogForm(BlogForm{}, CsrfToken(c)))
}

func (a *App) handleBlogCreate(c echo.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	draft := draftFromForm(c)
	if applyTagAction(&draft, c) {
		return Render(c, a.Views.BlogForm(BlogForm{Draft: draft}, CsrfToken(c)))
	}

	now := timestamp(time.Now())
	fields := draft.fields()
	fields["createdAt"] = now
	fields["updatedAt"] = now
	if _, err := a.Store.Create(c.Request().Context(), ColBlogs, fields); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/blogs/")
}

func (a *App) handleBlogEditPage(c echo.Context) error {
	doc, err := a.Store.Get(c.Request().Context(), ColBlogs, c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return RenderStatus(c, http.StatusNotFound, a.Views.BlogNotFound())
	}
	if err != nil {
		return err
	}
	form := BlogForm{ID: doc.ID, Draft: draftFromPost(BlogFromDoc(doc))}
	return Render(c, a.Views.BlogForm(form, CsrfToken(c)))
}

func (a *App) handleBlogEdit(c echo.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	id := c.Param("id")
	draft := draftFromForm(c)
	if applyTagAction(&draft, c) {
		return Render(c, a.Views.BlogForm(BlogForm{ID: id, Draft: draft}, CsrfToken(c)))
	}

	// Partial merge: every form field plus a fresh updatedAt. The original
	// createdAt is never part of the patch, so it survives unchanged.
	patch := draft.fields()
	patch["updatedAt"] = timestamp(time.Now())
	err := a.Store.Update(c.Request().Context(), ColBlogs, id, patch)
	if errors.Is(err, ErrNotFound) {
		return RenderStatus(c, http.StatusNotFound, a.Views.BlogNotFound())
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/blogs/")
}

func (a *App) handleBlogDelete(c echo.Context) error {
	if err := a.Store.Delete(c.Request().Context(), ColBlogs, c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/blogs/")
}
