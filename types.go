package pubadmin

import (
	"sort"
	"time"
)

// Collection names in the document store.
const (
	ColBlogs        = "blogs"
	ColSubscribers  = "subscribers"
	ColForms        = "forms"
	ColAssets       = "assets"
	ColVisitorCount = "visitor_count"
)

// visitorCounterID is the key of the singleton visitor counter document.
const visitorCounterID = "counter"

// Form submission status values. Status is the only mutable field of a
// submission after creation.
const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the known submission statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusProcessed || s == StatusCompleted
}

// BlogPost is a post document. CreatedAt is set once at creation; UpdatedAt
// is refreshed on every edit.
type BlogPost struct {
	ID                string
	Title             string
	Content           string // rich-text HTML, stored verbatim
	ImageURL          string // optional
	Author            string
	AuthorImageURL    string // optional
	AuthorDescription string
	Tags              []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Subscriber is a newsletter subscriber. SubscribedAt is optional in the
// store; nil values render as "N/A" and sort as "now" — the stored record is
// never rewritten to fill the gap.
type Subscriber struct {
	ID           string
	Email        string
	SubscribedAt *time.Time
}

// FormSubmission is a contact-form submission.
type FormSubmission struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
	Status    string
}

// Asset is an uploaded file's metadata. The file itself lives behind the
// upload endpoint; the console only keeps the returned URL.
type Asset struct {
	ID         string
	FileName   string
	FileURL    string
	UploadedAt time.Time
}

// DashboardStats holds the four dashboard tile values.
type DashboardStats struct {
	Blogs       int
	Subscribers int
	Forms       int
	Visitors    int
}

// --- Defensive field-map decoding ---
//
// The store is schemaless, so every accessor tolerates missing or malformed
// fields: strings default to "", times to zero, tag lists to nil. A bad
// document must never fail a page render.

// timestamp encodes a time for storage in a field map. Nanosecond precision
// keeps createdAt/updatedAt strictly ordered across edits within one second.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func fieldString(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func fieldTime(m map[string]any, key string) time.Time {
	s, ok := m[key].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func fieldTimePtr(m map[string]any, key string) *time.Time {
	t := fieldTime(m, key)
	if t.IsZero() {
		return nil
	}
	return &t
}

func fieldTags(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	var tags []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}

func fieldInt(m map[string]any, key string) int {
	// JSON numbers decode as float64.
	if f, ok := m[key].(float64); ok {
		return int(f)
	}
	return 0
}

// BlogFromDoc decodes a blog document.
func BlogFromDoc(d Document) BlogPost {
	return BlogPost{
		ID:                d.ID,
		Title:             fieldString(d.Fields, "title"),
		Content:           fieldString(d.Fields, "content"),
		ImageURL:          fieldString(d.Fields, "imageUrl"),
		Author:            fieldString(d.Fields, "author"),
		AuthorImageURL:    fieldString(d.Fields, "authorImageUrl"),
		AuthorDescription: fieldString(d.Fields, "authorDescription"),
		Tags:              fieldTags(d.Fields, "tags"),
		CreatedAt:         fieldTime(d.Fields, "createdAt"),
		UpdatedAt:         fieldTime(d.Fields, "updatedAt"),
	}
}

// SubscriberFromDoc decodes a subscriber document.
func SubscriberFromDoc(d Document) Subscriber {
	return Subscriber{
		ID:           d.ID,
		Email:        fieldString(d.Fields, "email"),
		SubscribedAt: fieldTimePtr(d.Fields, "subscribedAt"),
	}
}

// SubmissionFromDoc decodes a form-submission document.
func SubmissionFromDoc(d Document) FormSubmission {
	return FormSubmission{
		ID:        d.ID,
		Name:      fieldString(d.Fields, "name"),
		Email:     fieldString(d.Fields, "email"),
		Message:   fieldString(d.Fields, "message"),
		CreatedAt: fieldTime(d.Fields, "createdAt"),
		Status:    fieldString(d.Fields, "status"),
	}
}

// AssetFromDoc decodes an asset document.
func AssetFromDoc(d Document) Asset {
	return Asset{
		ID:         d.ID,
		FileName:   fieldString(d.Fields, "fileName"),
		FileURL:    fieldString(d.Fields, "fileUrl"),
		UploadedAt: fieldTime(d.Fields, "uploadedAt"),
	}
}

// --- Collection mappers ---
//
// Each decodes a whole collection and sorts strictly descending by the
// designated timestamp field. Ties are unordered.

// BlogsFromDocs maps blog documents sorted by createdAt descending.
func BlogsFromDocs(docs []Document) []BlogPost {
	blogs := make([]BlogPost, 0, len(docs))
	for _, d := range docs {
		blogs = append(blogs, BlogFromDoc(d))
	}
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
	return blogs
}

// SubscribersFromDocs maps subscriber documents sorted by subscribedAt
// descending. A missing subscribedAt sorts as the current time, so recent
// unstamped signups surface at the top; the stored record is unaffected.
func SubscribersFromDocs(docs []Document) []Subscriber {
	now := time.Now()
	key := func(s Subscriber) time.Time {
		if s.SubscribedAt == nil {
			return now
		}
		return *s.SubscribedAt
	}
	subs := make([]Subscriber, 0, len(docs))
	for _, d := range docs {
		subs = append(subs, SubscriberFromDoc(d))
	}
	sort.Slice(subs, func(i, j int) bool {
		return key(subs[i]).After(key(subs[j]))
	})
	return subs
}

// SubmissionsFromDocs maps form documents sorted by createdAt descending.
func SubmissionsFromDocs(docs []Document) []FormSubmission {
	subs := make([]FormSubmission, 0, len(docs))
	for _, d := range docs {
		subs = append(subs, SubmissionFromDoc(d))
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	return subs
}

// AssetsFromDocs maps asset documents sorted by uploadedAt descending.
func AssetsFromDocs(docs []Document) []Asset {
	assets := make([]Asset, 0, len(docs))
	for _, d := range docs {
		assets = append(assets, AssetFromDoc(d))
	}
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].UploadedAt.After(assets[j].UploadedAt)
	})
	return assets
}
