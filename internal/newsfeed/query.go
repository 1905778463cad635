package newsfeed

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/baivab22/ictforumFrontend/internal/models"
)

// PageSize is fixed: the listing always requests 9 posts per page.
const PageSize = 9

const (
	ViewGrid = "grid"
	ViewList = "list"
)

// Query is the complete state of the news listing that a URL can carry:
// search text, category filter and 1-based page number. View mode rides
// along for rendering but is deliberately kept out of the URL.
type Query struct {
	Page     int
	Category string
	Search   string
	View     string
}

// DefaultQuery is the state of /news with no parameters.
func DefaultQuery() Query {
	return Query{Page: 1, Category: models.CategoryAll, View: ViewGrid}
}

// ParseQuery seeds listing state from URL query parameters. Absent or
// invalid values fall back to defaults, so any URL parses to a valid state.
func ParseQuery(v url.Values) Query {
	q := DefaultQuery()

	if page, err := strconv.Atoi(v.Get("page")); err == nil && page > 1 {
		q.Page = page
	}
	if c := v.Get("category"); models.ValidCategory(c) {
		q.Category = c
	}
	q.Search = strings.TrimSpace(v.Get("search"))
	if v.Get("view") == ViewList {
		q.View = ViewList
	}
	return q
}

// Values serializes the state back to URL query parameters, omitting
// defaults: page when 1, category when "all", search when empty. View mode
// is never serialized. Values is the inverse of ParseQuery.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Category != "" && q.Category != models.CategoryAll {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

// Encode returns the canonical query string for this state.
func (q Query) Encode() string {
	return q.Values().Encode()
}

// URL returns the listing URL for this state.
func (q Query) URL() string {
	if enc := q.Encode(); enc != "" {
		return "/news?" + enc
	}
	return "/news"
}

// WithPage returns the state on another page.
func (q Query) WithPage(page int) Query {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

// WithCategory returns the state with a new category filter. The page
// resets to 1 so a narrower filter cannot land on an out-of-range page.
func (q Query) WithCategory(category string) Query {
	if !models.ValidCategory(category) {
		category = models.CategoryAll
	}
	q.Category = category
	q.Page = 1
	return q
}

// WithSearch returns the state with new search text, resetting the page.
func (q Query) WithSearch(search string) Query {
	q.Search = strings.TrimSpace(search)
	q.Page = 1
	return q
}

// Range computes the 1-based "showing X-Y of Z" bounds for this page
// against the server-reported total. An empty result yields (0, 0).
func (q Query) Range(total int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	start = (q.Page-1)*PageSize + 1
	end = q.Page * PageSize
	if end > total {
		end = total
	}
	if start > total {
		return 0, 0
	}
	return start, end
}

// Pages computes the page count for the server-reported total.
func (q Query) Pages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}
