package pubadmin

import (
	"testing"
	"time"
)

func TestBlogFromDoc(t *testing.T) {
	doc := Document{
		ID: "abc",
		Fields: map[string]any{
			"title":             "First Post",
			"content":           "<p>hello</p>",
			"imageUrl":          "https://cdn.example.com/a.jpg",
			"author":            "Ada",
			"authorImageUrl":    "https://cdn.example.com/ada.jpg",
			"authorDescription": "Writer",
			"tags":              []any{"go", "web"},
			"createdAt":         "2026-01-02T10:00:00.5Z",
			"updatedAt":         "2026-01-03T10:00:00Z",
		},
	}

	b := BlogFromDoc(doc)
	if b.ID != "abc" || b.Title != "First Post" || b.Author != "Ada" {
		t.Errorf("unexpected decode: %+v", b)
	}
	if len(b.Tags) != 2 || b.Tags[0] != "go" || b.Tags[1] != "web" {
		t.Errorf("Tags = %v, want [go web]", b.Tags)
	}
	want := time.Date(2026, 1, 2, 10, 0, 0, 500_000_000, time.UTC)
	if !b.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", b.CreatedAt, want)
	}
	if !b.UpdatedAt.After(b.CreatedAt) {
		t.Errorf("UpdatedAt %v not after CreatedAt %v", b.UpdatedAt, b.CreatedAt)
	}
}

func TestBlogFromDocToleratesMalformedFields(t *testing.T) {
	doc := Document{
		ID: "bad",
		Fields: map[string]any{
			"title":     42,
			"tags":      "not-a-list",
			"createdAt": "yesterday",
		},
	}

	b := BlogFromDoc(doc)
	if b.Title != "" {
		t.Errorf("Title = %q, want empty for non-string field", b.Title)
	}
	if b.Tags != nil {
		t.Errorf("Tags = %v, want nil for non-list field", b.Tags)
	}
	if !b.CreatedAt.IsZero() {
		t.Errorf("CreatedAt = %v, want zero for unparsable field", b.CreatedAt)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	now := time.Now()
	fields := map[string]any{"createdAt": timestamp(now)}
	got := fieldTime(fields, "createdAt")
	if !got.Equal(now) {
		t.Errorf("round trip lost precision: got %v, want %v", got, now)
	}
}

func TestSubscriberFromDocOptionalTimestamp(t *testing.T) {
	withTS := SubscriberFromDoc(Document{ID: "1", Fields: map[string]any{
		"email":        "a@example.com",
		"subscribedAt": "2026-02-01T00:00:00Z",
	}})
	if withTS.SubscribedAt == nil {
		t.Fatal("SubscribedAt = nil, want parsed time")
	}

	without := SubscriberFromDoc(Document{ID: "2", Fields: map[string]any{
		"email": "b@example.com",
	}})
	if without.SubscribedAt != nil {
		t.Errorf("SubscribedAt = %v, want nil for missing field", without.SubscribedAt)
	}
}

func TestBlogsFromDocsSortsNewestFirst(t *testing.T) {
	docs := []Document{
		{ID: "old", Fields: map[string]any{"createdAt": "2026-01-01T00:00:00Z"}},
		{ID: "new", Fields: map[string]any{"createdAt": "2026-03-01T00:00:00Z"}},
		{ID: "mid", Fields: map[string]any{"createdAt": "2026-02-01T00:00:00Z"}},
	}

	blogs := BlogsFromDocs(docs)
	if blogs[0].ID != "new" || blogs[1].ID != "mid" || blogs[2].ID != "old" {
		t.Errorf("order = %s %s %s, want new mid old", blogs[0].ID, blogs[1].ID, blogs[2].ID)
	}
}

func TestSubscribersFromDocsMissingTimestampSortsFirst(t *testing.T) {
	docs := []Document{
		{ID: "dated", Fields: map[string]any{"email": "a@example.com", "subscribedAt": "2026-01-01T00:00:00Z"}},
		{ID: "undated", Fields: map[string]any{"email": "b@example.com"}},
	}

	subs := SubscribersFromDocs(docs)
	if subs[0].ID != "undated" {
		t.Errorf("first = %s, want undated (missing subscribedAt sorts as now)", subs[0].ID)
	}
	// The stored record keeps its gap: the decoded value stays nil.
	if subs[0].SubscribedAt != nil {
		t.Errorf("SubscribedAt = %v, want nil", subs[0].SubscribedAt)
	}
}

func TestSubmissionsFromDocsSortsNewestFirst(t *testing.T) {
	docs := []Document{
		{ID: "a", Fields: map[string]any{"createdAt": "2026-01-01T00:00:00Z", "status": "pending"}},
		{ID: "b", Fields: map[string]any{"createdAt": "2026-01-02T00:00:00Z", "status": "completed"}},
	}

	subs := SubmissionsFromDocs(docs)
	if subs[0].ID != "b" {
		t.Errorf("first = %s, want b", subs[0].ID)
	}
}

func TestAssetsFromDocsSortsNewestFirst(t *testing.T) {
	docs := []Document{
		{ID: "a", Fields: map[string]any{"uploadedAt": "2026-01-01T00:00:00Z"}},
		{ID: "b", Fields: map[string]any{"uploadedAt": "2026-01-02T00:00:00Z"}},
	}

	assets := AssetsFromDocs(docs)
	if assets[0].ID != "b" {
		t.Errorf("first = %s, want b", assets[0].ID)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "processed", "completed"} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "done", "PENDING"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestFieldInt(t *testing.T) {
	// JSON numbers decode as float64.
	if got := fieldInt(map[string]any{"count": float64(42)}, "count"); got != 42 {
		t.Errorf("fieldInt = %d, want 42", got)
	}
	if got := fieldInt(map[string]any{"count": "42"}, "count"); got != 0 {
		t.Errorf("fieldInt = %d, want 0 for non-numeric field", got)
	}
	if got := fieldInt(map[string]any{}, "count"); got != 0 {
		t.Errorf("fieldInt = %d, want 0 for missing field", got)
	}
}
