package handlers

import (
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/baivab22/ictforumFrontend/internal/backend"
	"github.com/baivab22/ictforumFrontend/internal/models"
	"github.com/baivab22/ictforumFrontend/internal/sanitize"
	"github.com/baivab22/ictforumFrontend/internal/share"
)

// PostPage is the template model for the post detail page.
type PostPage struct {
	Card
	Content  template.HTML
	Tags     []string
	Comments []models.Comment
	Share    []share.Link
	Related  []Card
	LikeURL  string
	RetryURL string
	BackURL  string
}

// PostDetailHandler resolves one post by id and active language. It
// distinguishes three failure-free states (loading has no server-side
// equivalent): success, not-found (the id resolved to no data) and error
// (message plus retry plus a way back to the listing).
func PostDetailHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		Render404(w, r)
		return
	}
	lang := currentLang(r)

	post, err := api.GetPost(r.Context(), id, lang)
	if err != nil {
		if backend.IsNotFound(err) {
			renderTemplate(w, r, "post_missing.html", TemplateData{
				User:  currentUser(r),
				Lang:  lang,
				Title: "Post not found",
			})
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		renderTemplate(w, r, "post_error.html", TemplateData{
			User:  currentUser(r),
			Lang:  lang,
			Title: "Something went wrong",
			Error: backend.Message(err),
			Post:  &PostPage{RetryURL: r.URL.String(), BackURL: "/news"},
		})
		return
	}

	page := &PostPage{
		Card: buildCard(*post, lang),
		// The body is backend-authored rich HTML; it passes through the
		// allowlist sanitizer before being marked safe for the template.
		Content:  template.HTML(sanitize.PostBody(post.Content(lang))),
		Tags:     post.Tags,
		Comments: post.Comments,
		LikeURL:  "/post/" + url.PathEscape(post.ID) + "/like",
		BackURL:  "/news",
	}
	page.Share = share.Links(absoluteURL(r, page.Card.URL), page.Card.Title)
	page.Related = relatedPosts(r, post, lang)

	renderTemplate(w, r, "post_page.html", TemplateData{
		User:   currentUser(r),
		Lang:   lang,
		Title:  page.Card.Title,
		Notice: r.URL.Query().Get("notice"),
		Post:   page,
	})
}

// relatedPosts fetches two more posts from the same category, best-effort.
func relatedPosts(r *http.Request, post *models.Post, lang string) []Card {
	list, err := api.ListPosts(r.Context(), backend.Query{
		Category: post.Category,
		Limit:    3,
		Language: lang,
	})
	if err != nil {
		log.Printf("Failed to load related posts for %s: %v", post.ID, err)
		return nil
	}
	var related []Card
	for _, p := range list.Posts {
		if p.ID == post.ID {
			continue
		}
		related = append(related, buildCard(p, lang))
		if len(related) == 2 {
			break
		}
	}
	return related
}

// LikePostHandler records a like with the backend and returns to the post.
func LikePostHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		Render404(w, r)
		return
	}

	postURL := "/post/" + url.PathEscape(id)
	if _, err := api.LikePost(r.Context(), id); err != nil {
		log.Printf("Failed to like post %s: %v", id, err)
		http.Redirect(w, r, postURL+"?notice="+url.QueryEscape(backend.Message(err)), http.StatusFound)
		return
	}
	http.Redirect(w, r, postURL, http.StatusFound)
}

// absoluteURL rebuilds the externally visible URL for share links.
func absoluteURL(r *http.Request, path string) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + r.Host + path
}
