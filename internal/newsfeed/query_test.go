package newsfeed

import (
	"net/url"
	"testing"

	"github.com/baivab22/ictforumFrontend/internal/models"
)

func TestParseQueryDefaults(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Query
	}{
		{"empty", "", Query{Page: 1, Category: "all", View: ViewGrid}},
		{"page", "page=3", Query{Page: 3, Category: "all", View: ViewGrid}},
		{"page zero", "page=0", Query{Page: 1, Category: "all", View: ViewGrid}},
		{"page garbage", "page=abc", Query{Page: 1, Category: "all", View: ViewGrid}},
		{"negative page", "page=-2", Query{Page: 1, Category: "all", View: ViewGrid}},
		{"category", "category=events", Query{Page: 1, Category: "events", View: ViewGrid}},
		{"bad category", "category=bogus", Query{Page: 1, Category: "all", View: ViewGrid}},
		{"search trimmed", "search=+nepal+", Query{Page: 1, Category: "all", Search: "nepal", View: ViewGrid}},
		{"combined", "page=2&category=policy&search=act", Query{Page: 2, Category: "policy", Search: "act", View: ViewGrid}},
		{"list view", "view=list", Query{Page: 1, Category: "all", View: ViewList}},
		{"unknown view", "view=tiles", Query{Page: 1, Category: "all", View: ViewGrid}},
	}
	for _, c := range cases {
		v, err := url.ParseQuery(c.raw)
		if err != nil {
			t.Fatalf("%s: bad test query: %v", c.name, err)
		}
		got := ParseQuery(v)
		if got != c.want {
			t.Fatalf("%s: got %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestValuesOmitsDefaults(t *testing.T) {
	cases := []struct {
		name string
		q    Query
		want string
	}{
		{"all defaults", DefaultQuery(), ""},
		{"page one omitted", Query{Page: 1, Category: "all"}, ""},
		{"page two", Query{Page: 2, Category: "all"}, "page=2"},
		{"category all omitted", Query{Page: 1, Category: models.CategoryAll}, ""},
		{"category kept", Query{Page: 1, Category: "startups"}, "category=startups"},
		{"search kept", Query{Page: 1, Category: "all", Search: "ict"}, "search=ict"},
		{"everything", Query{Page: 4, Category: "education", Search: "digital"}, "category=education&page=4&search=digital"},
	}
	for _, c := range cases {
		if got := c.q.Encode(); got != c.want {
			t.Fatalf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

// View mode never reaches the URL, whatever the rest of the state is.
func TestViewNeverSerialized(t *testing.T) {
	q := Query{Page: 3, Category: "events", Search: "expo", View: ViewList}
	if enc := q.Encode(); enc != "category=events&page=3&search=expo" {
		t.Fatalf("view leaked into URL: %q", enc)
	}
}

// Round-trip: any state that Values produces parses back to itself.
func TestParseEncodeRoundTrip(t *testing.T) {
	states := []Query{
		DefaultQuery(),
		{Page: 2, Category: "all", View: ViewGrid},
		{Page: 5, Category: "technology", Search: "ai", View: ViewGrid},
		{Page: 1, Category: "socialJustice", Search: "", View: ViewGrid},
	}
	for _, q := range states {
		back := ParseQuery(q.Values())
		if back != q {
			t.Fatalf("round trip changed state: %+v -> %+v", q, back)
		}
	}
}

func TestFilterChangesResetPage(t *testing.T) {
	q := Query{Page: 7, Category: "all", View: ViewGrid}

	if got := q.WithCategory("events"); got.Page != 1 || got.Category != "events" {
		t.Fatalf("WithCategory: got %+v", got)
	}
	if got := q.WithSearch("broadband"); got.Page != 1 || got.Search != "broadband" {
		t.Fatalf("WithSearch: got %+v", got)
	}
	if got := q.WithCategory("nonsense"); got.Category != models.CategoryAll {
		t.Fatalf("invalid category should fall back to all: %+v", got)
	}
	if got := q.WithPage(0); got.Page != 1 {
		t.Fatalf("WithPage(0) should clamp to 1: %+v", got)
	}
}

func TestRange(t *testing.T) {
	cases := []struct {
		page, total      int
		start, end, want int
	}{
		{1, 0, 0, 0, 0},
		{1, 5, 1, 5, 1},
		{1, 9, 1, 9, 1},
		{2, 25, 10, 18, 3},
		{3, 25, 19, 25, 3},
		{4, 25, 0, 0, 3}, // out of range page shows nothing
	}
	for _, c := range cases {
		q := Query{Page: c.page}
		start, end := q.Range(c.total)
		if start != c.start || end != c.end {
			t.Fatalf("page %d total %d: got range %d-%d, want %d-%d",
				c.page, c.total, start, end, c.start, c.end)
		}
		if pages := q.Pages(c.total); pages != c.want {
			t.Fatalf("total %d: got %d pages, want %d", c.total, pages, c.want)
		}
	}
}
