package newsfeed

import (
	"context"

	"github.com/baivab22/ictforumFrontend/internal/backend"
	"github.com/baivab22/ictforumFrontend/internal/models"
)

// PostLister is the slice of the backend client the listing needs.
type PostLister interface {
	ListPosts(ctx context.Context, q backend.Query) (*backend.PostList, error)
}

// Controller turns a listing query into a renderable view: it owns the
// fetch, the range math and the error/empty state distinction.
type Controller struct {
	api PostLister
}

func NewController(api PostLister) *Controller {
	return &Controller{api: api}
}

// View is everything the news page template needs for one request.
// Exactly one of three states holds: Err != "" (error panel with retry),
// Empty (request succeeded, nothing matched), or Posts is non-empty.
type View struct {
	Query      Query
	Posts      []models.Post
	Total      int
	TotalPages int
	Start, End int // 1-based "showing X-Y of Z" bounds

	Err      string
	RetryURL string // re-issues the identical query that failed
	Empty    bool
}

// Load fetches one page of posts for the query and language. On failure the
// view carries the normalized error message and a retry URL equal to the
// query that failed; no results are fabricated.
func (c *Controller) Load(ctx context.Context, q Query, language string) View {
	view := View{Query: q}

	list, err := c.api.ListPosts(ctx, backend.Query{
		Page:     q.Page,
		Limit:    PageSize,
		Category: q.Category,
		Search:   q.Search,
		Language: language,
	})
	if err != nil {
		view.Err = backend.Message(err)
		view.RetryURL = q.URL()
		return view
	}

	view.Posts = list.Posts
	view.Total = list.Total
	view.TotalPages = list.Pages
	if view.TotalPages == 0 {
		view.TotalPages = q.Pages(list.Total)
	}
	view.Start, view.End = q.Range(list.Total)
	view.Empty = len(list.Posts) == 0
	return view
}
