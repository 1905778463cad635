package newsfeed

import (
	"context"
	"testing"

	"github.com/baivab22/ictforumFrontend/internal/backend"
	"github.com/baivab22/ictforumFrontend/internal/models"
)

type fakeLister struct {
	got  backend.Query
	list *backend.PostList
	err  error
}

func (f *fakeLister) ListPosts(ctx context.Context, q backend.Query) (*backend.PostList, error) {
	f.got = q
	return f.list, f.err
}

func TestLoadPassesQueryThrough(t *testing.T) {
	f := &fakeLister{list: &backend.PostList{}}
	c := NewController(f)

	q := Query{Page: 3, Category: "policy", Search: "broadband"}
	c.Load(context.Background(), q, models.LangNepali)

	if f.got.Page != 3 || f.got.Category != "policy" || f.got.Search != "broadband" {
		t.Fatalf("query not forwarded: %+v", f.got)
	}
	if f.got.Limit != PageSize {
		t.Fatalf("limit should be the fixed page size, got %d", f.got.Limit)
	}
	if f.got.Language != models.LangNepali {
		t.Fatalf("language not forwarded: %q", f.got.Language)
	}
}

// A failed fetch keeps the error and the exact query for retry; no results
// are fabricated and no stale data is shown.
func TestLoadFailure(t *testing.T) {
	f := &fakeLister{err: &backend.Error{Status: 503, Message: "Service unavailable"}}
	c := NewController(f)

	q := Query{Page: 2, Category: "events", Search: "expo"}
	view := c.Load(context.Background(), q, models.LangEnglish)

	if view.Err == "" {
		t.Fatal("expected error message in view")
	}
	if len(view.Posts) != 0 {
		t.Fatalf("failed load must not carry posts: %d", len(view.Posts))
	}
	if view.RetryURL != q.URL() {
		t.Fatalf("retry URL must re-issue the failed query: got %q, want %q", view.RetryURL, q.URL())
	}
	if view.Empty {
		t.Fatal("failure is not the empty state")
	}
}

func TestLoadEmptyResult(t *testing.T) {
	f := &fakeLister{list: &backend.PostList{Total: 0}}
	c := NewController(f)

	view := c.Load(context.Background(), DefaultQuery(), models.LangEnglish)
	if !view.Empty {
		t.Fatal("zero results should mark the view empty")
	}
	if view.Err != "" {
		t.Fatalf("empty is not an error: %q", view.Err)
	}
}

func TestLoadRangeMath(t *testing.T) {
	posts := make([]models.Post, 9)
	f := &fakeLister{list: &backend.PostList{Posts: posts, Total: 25, Pages: 3}}
	c := NewController(f)

	view := c.Load(context.Background(), Query{Page: 2}, models.LangEnglish)
	if view.Start != 10 || view.End != 18 {
		t.Fatalf("got range %d-%d, want 10-18", view.Start, view.End)
	}
	if view.TotalPages != 3 {
		t.Fatalf("got %d pages, want 3", view.TotalPages)
	}
}

// When the backend omits the pagination block the page count is derived
// from the total.
func TestLoadDerivesPages(t *testing.T) {
	f := &fakeLister{list: &backend.PostList{Posts: make([]models.Post, 9), Total: 20}}
	c := NewController(f)

	view := c.Load(context.Background(), DefaultQuery(), models.LangEnglish)
	if view.TotalPages != 3 {
		t.Fatalf("got %d pages, want 3", view.TotalPages)
	}
}
