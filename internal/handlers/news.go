package handlers

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/baivab22/ictforumFrontend/internal/backend"
	"github.com/baivab22/ictforumFrontend/internal/models"
	"github.com/baivab22/ictforumFrontend/internal/newsfeed"
	"github.com/baivab22/ictforumFrontend/internal/session"
)

// NewsPage is the template model for the listing page.
type NewsPage struct {
	View       newsfeed.View
	Cards      []Card
	Categories []CategoryOption
	PageLinks  []PageLink
	PrevURL    string
	NextURL    string
	ListURL    string
	GridURL    string
}

type CategoryOption struct {
	Value    string
	Label    string
	Selected bool
}

type PageLink struct {
	Num      int
	URL      string
	Current  bool
	Ellipsis bool
}

const viewCookie = "news_view"

// NewsHandler renders the news listing. Listing state lives in the URL
// query string (category, search, page); any change lands on the canonical
// encoding of that state so a copied URL reproduces the view exactly.
func NewsHandler(w http.ResponseWriter, r *http.Request) {
	lang := currentLang(r)
	q := newsfeed.ParseQuery(r.URL.Query())

	// The grid/list toggle is URL-exempt state: persist it in a cookie and
	// drop it from the address bar.
	if mode := r.URL.Query().Get("view"); mode != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookie,
			Value:    q.View,
			Path:     "/news",
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, q.URL(), http.StatusFound)
		return
	}
	if c, err := r.Cookie(viewCookie); err == nil && c.Value == newsfeed.ViewList {
		q.View = newsfeed.ViewList
	}

	// Canonicalize: rewrite the URL to mirror the parsed state (page
	// omitted when 1, category when "all", search when empty).
	if raw := r.URL.Query(); raw.Has("lang") {
		// lang is handled by its own cookie redirect flow; leave it alone.
	} else if r.URL.RawQuery != q.Encode() {
		http.Redirect(w, r, q.URL(), http.StatusFound)
		return
	}

	view := newsController.Load(r.Context(), q, lang)

	page := &NewsPage{
		View:    view,
		Cards:   buildCards(view.Posts, lang),
		ListURL: q.URL() + viewParam(q, newsfeed.ViewList),
		GridURL: q.URL() + viewParam(q, newsfeed.ViewGrid),
	}

	page.Categories = append(page.Categories, CategoryOption{
		Value:    models.CategoryAll,
		Label:    categoryLabel(models.CategoryAll),
		Selected: q.Category == models.CategoryAll,
	})
	for _, c := range models.Categories {
		page.Categories = append(page.Categories, CategoryOption{
			Value:    c,
			Label:    categoryLabel(c),
			Selected: q.Category == c,
		})
	}

	page.PageLinks = buildPageLinks(q, view.TotalPages)
	if q.Page > 1 {
		page.PrevURL = q.WithPage(q.Page - 1).URL()
	}
	if q.Page < view.TotalPages {
		page.NextURL = q.WithPage(q.Page + 1).URL()
	}

	renderTemplate(w, r, "news_page.html", TemplateData{
		User:  currentUser(r),
		Lang:  lang,
		Title: "News & Updates",
		News:  page,
	})
}

func viewParam(q newsfeed.Query, mode string) string {
	if len(q.Values()) == 0 {
		return "?view=" + mode
	}
	return "&view=" + mode
}

// buildPageLinks renders a window of up to five page numbers around the
// current page, with first/last pages and ellipses at the edges.
func buildPageLinks(q newsfeed.Query, totalPages int) []PageLink {
	if totalPages <= 1 {
		return nil
	}

	const maxVisible = 5
	start := q.Page - maxVisible/2
	if start < 1 {
		start = 1
	}
	end := start + maxVisible - 1
	if end > totalPages {
		end = totalPages
		if start > end-maxVisible+1 {
			start = end - maxVisible + 1
			if start < 1 {
				start = 1
			}
		}
	}

	var links []PageLink
	if start > 1 {
		links = append(links, PageLink{Num: 1, URL: q.WithPage(1).URL(), Current: q.Page == 1})
		if start > 2 {
			links = append(links, PageLink{Ellipsis: true})
		}
	}
	for page := start; page <= end; page++ {
		links = append(links, PageLink{Num: page, URL: q.WithPage(page).URL(), Current: page == q.Page})
	}
	if end < totalPages {
		if end < totalPages-1 {
			links = append(links, PageLink{Ellipsis: true})
		}
		links = append(links, PageLink{Num: totalPages, URL: q.WithPage(totalPages).URL(), Current: q.Page == totalPages})
	}
	return links
}

// NewsSuggestHandler backs the live search box. Each keystroke hits this
// endpoint; the debouncer lets only the final input of a burst through, so
// the backend sees exactly one search per pause in typing. Superseded
// inputs answer 204 and the page ignores them.
func NewsSuggestHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"suggestions":[]}`))
		return
	}

	if !searchDebounce.Settle(r.Context(), suggestKey(r)) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	list, err := api.ListPosts(r.Context(), backend.Query{
		Search:   q,
		Limit:    5,
		Language: currentLang(r),
	})
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"error": backend.Message(err)})
		return
	}

	type suggestion struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	lang := currentLang(r)
	suggestions := make([]suggestion, 0, len(list.Posts))
	for _, p := range list.Posts {
		suggestions = append(suggestions, suggestion{ID: p.ID, Title: p.Title(lang)})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"suggestions": suggestions})
}

// suggestKey scopes the debouncer: one burst per session, falling back to
// the client IP for anonymous visitors.
func suggestKey(r *http.Request) string {
	if sess := session.FromContext(r.Context()); sess != nil {
		return sess.UUID
	}
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}
	return r.RemoteAddr
}
