package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/baivab22/ictforumFrontend/internal/admin"
	"github.com/baivab22/ictforumFrontend/internal/backend"
	"github.com/baivab22/ictforumFrontend/internal/models"
	"github.com/baivab22/ictforumFrontend/internal/newsfeed"
	"github.com/baivab22/ictforumFrontend/internal/session"
)

// Package-level wiring, set once by Init from the server.
var (
	templates      *template.Template
	api            *backend.Client
	sessions       *session.Store
	newsController *newsfeed.Controller
	searchDebounce *newsfeed.Debouncer
	dashboards     *admin.Registry
)

// Init wires the handlers to the backend client and session store and
// parses the templates. Call once at startup before serving.
func Init(client *backend.Client, store *session.Store) {
	api = client
	sessions = store
	newsController = newsfeed.NewController(client)
	searchDebounce = newsfeed.NewDebouncer(newsfeed.DebounceDelay)
	dashboards = admin.NewRegistry()

	var err error
	templates, err = template.New("").Funcs(template.FuncMap{
		"inc":           func(a int) int { return a + 1 },
		"dec":           func(a int) int { return a - 1 },
		"joinTags":      func(tags []string) string { return strings.Join(tags, ", ") },
		"formatDate":    formatDate,
		"categoryLabel": categoryLabel,
	}).ParseGlob("internal/templates/*.html")
	if err != nil {
		log.Fatalf("Error parsing templates: %v", err)
	}
}

// TemplateData holds data passed to HTML templates.
type TemplateData struct {
	User   *models.User
	Lang   string
	Title  string
	Error  string
	Notice string

	// home page
	Featured []Card
	Latest   []Card

	News  *NewsPage
	Post  *PostPage
	Admin *AdminPage

	ContactSent bool
}

// Card is the one consolidated card view-model used everywhere a post
// preview appears (home, listing grid and list, related posts).
type Card struct {
	ID          string
	Title       string
	Excerpt     string
	ImageURL    string
	Category    string
	Author      string
	PublishedAt string
	Featured    bool
	Views       int
	Likes       int
	URL         string
}

func buildCard(p models.Post, lang string) Card {
	return Card{
		ID:          p.ID,
		Title:       p.Title(lang),
		Excerpt:     p.Excerpt(lang),
		ImageURL:    api.ImageURL(p.Image),
		Category:    p.Category,
		Author:      p.Author.Name,
		PublishedAt: p.PublishedAt,
		Featured:    p.Featured,
		Views:       p.Views,
		Likes:       p.Likes,
		URL:         "/post/" + p.ID,
	}
}

func buildCards(posts []models.Post, lang string) []Card {
	cards := make([]Card, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, buildCard(p, lang))
	}
	return cards
}

// renderTemplate renders into a buffer first so a template error never
// sends a partial page.
func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data TemplateData) {
	var buf strings.Builder
	err := templates.ExecuteTemplate(&buf, templateName, data)
	if err != nil {
		log.Printf("Error rendering template %s: %v", templateName, err)
		if w.Header().Get("Content-Type") == "" {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(buf.String()))
}

// HTTP error pages.

func Render404(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	renderTemplate(w, r, "error.html", TemplateData{Lang: currentLang(r), Error: "404 Not Found"})
}

func Render405(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
	renderTemplate(w, r, "error.html", TemplateData{Lang: currentLang(r), Error: "405 Method Not Allowed"})
}

func Render500(w http.ResponseWriter, r *http.Request, message string) {
	log.Printf("Internal Server Error: %s", message)
	w.WriteHeader(http.StatusInternalServerError)
	renderTemplate(w, r, "error.html", TemplateData{Lang: currentLang(r), Error: "500 Internal Server Error: " + message})
}

// NotFoundHandler is the catch-all for unrecognized routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	Render404(w, r)
}

// currentUser returns the admin user when the request carries a session.
func currentUser(r *http.Request) *models.User {
	if sess := session.FromContext(r.Context()); sess != nil {
		return &sess.User
	}
	return nil
}

// currentLang resolves the active UI language: lang query parameter first,
// then the lang cookie, defaulting to English.
func currentLang(r *http.Request) string {
	if l := r.URL.Query().Get("lang"); l == models.LangEnglish || l == models.LangNepali {
		return l
	}
	if c, err := r.Cookie("lang"); err == nil && (c.Value == models.LangEnglish || c.Value == models.LangNepali) {
		return c.Value
	}
	return models.LangEnglish
}

// LangHandler switches the UI language: GET /lang?to=np&from=/news
func LangHandler(w http.ResponseWriter, r *http.Request) {
	to := r.URL.Query().Get("to")
	if to != models.LangEnglish && to != models.LangNepali {
		to = models.LangEnglish
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "lang",
		Value:    to,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})

	from := r.URL.Query().Get("from")
	// Only redirect within the site.
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") {
		from = "/"
	}
	http.Redirect(w, r, from, http.StatusFound)
}

var categoryLabels = map[string]string{
	models.CategoryTechnology:            "Technology",
	models.CategoryDigitalTransformation: "Digital Transformation",
	models.CategorySocialJustice:         "Social Justice",
	models.CategoryEvents:                "Events",
	models.CategoryInnovation:            "Innovation",
	models.CategoryPolicy:                "Policy",
	models.CategoryEducation:             "Education",
	models.CategoryStartups:              "Startups",
}

func categoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	if category == models.CategoryAll {
		return "All Categories"
	}
	return category
}

// formatDate renders a backend timestamp for display. The backend sends
// RFC 3339; plain dates appear on older posts.
func formatDate(value string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 02, 2006")
		}
	}
	return value
}
