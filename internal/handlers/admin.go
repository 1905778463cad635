package handlers

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/baivab22/ictforumFrontend/internal/admin"
	"github.com/baivab22/ictforumFrontend/internal/backend"
	"github.com/baivab22/ictforumFrontend/internal/models"
	"github.com/baivab22/ictforumFrontend/internal/session"
)

// AdminPage is the template model for the admin console.
type AdminPage struct {
	LoggedIn   bool
	LoginError string

	State      admin.StateView
	Rows       []AdminRow
	Categories []CategoryOption
	PageLinks  []PageLink
}

// AdminRow is one entry of the dashboard post table.
type AdminRow struct {
	Post     models.Post
	ImageURL string
	EditURL  string
}

// AdminHandler gates the console: a request without a valid session renders
// the login form, everything else gets the dashboard. The first dashboard
// request for a session validates the token against the backend profile
// endpoint and loads posts and stats concurrently.
func AdminHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		renderLogin(w, r, "")
		return
	}

	snap, existed := dashboards.Get(sess.UUID)
	page := pageParam(r)

	if !existed {
		// Validate the stored token before trusting the session. A 401
		// here clears the token as a side effect; the cookie and snapshot
		// follow it out.
		if _, err := api.Profile(r.Context()); err != nil {
			dashboards.Drop(sess.UUID)
			session.ClearSessionCookie(w)
			log.Printf("Profile check failed for session %s: %v", sess.UUID, err)
			renderLogin(w, r, "Your session has expired. Please log in again.")
			return
		}
		if err := loadDashboard(r.Context(), snap, page); err != "" {
			renderDashboard(w, r, snap, err)
			return
		}
	} else if page != snap.View().Page {
		if err := fetchPostsPage(r.Context(), snap, page); err != "" {
			renderDashboard(w, r, snap, err)
			return
		}
	}

	renderDashboard(w, r, snap, r.URL.Query().Get("error"))
}

func pageParam(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return page
}

// loadDashboard fetches the posts page and the stats concurrently, the way
// the console refreshes after login. A partial failure keeps whatever
// succeeded and reports the first error.
func loadDashboard(ctx context.Context, snap *admin.Snapshot, page int) string {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr string
	)
	record := func(msg string) {
		mu.Lock()
		if firstErr == "" {
			firstErr = msg
		}
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		if msg := fetchPostsPage(ctx, snap, page); msg != "" {
			record(msg)
		}
	}()
	go func() {
		defer wg.Done()
		stats, err := api.Stats(ctx)
		if err != nil {
			record("Failed to fetch stats: " + backend.Message(err))
			return
		}
		snap.SetStats(*stats)
	}()
	wg.Wait()
	return firstErr
}

func fetchPostsPage(ctx context.Context, snap *admin.Snapshot, page int) string {
	list, err := api.ListPosts(ctx, backend.Query{
		Page:     page,
		Limit:    admin.PostsPerPage,
		Language: models.LangEnglish,
	})
	if err != nil {
		return "Failed to fetch posts: " + backend.Message(err)
	}
	if list.Page == 0 {
		list.Page = page
	}
	snap.SetPosts(list)
	return ""
}

func renderLogin(w http.ResponseWriter, r *http.Request, loginError string) {
	renderTemplate(w, r, "admin_login.html", TemplateData{
		Lang:  currentLang(r),
		Title: "Admin Login",
		Admin: &AdminPage{LoginError: loginError},
	})
}

func renderDashboard(w http.ResponseWriter, r *http.Request, snap *admin.Snapshot, errMsg string) {
	state := snap.View()

	page := &AdminPage{
		LoggedIn: true,
		State:    state,
	}
	for _, p := range state.Posts {
		page.Rows = append(page.Rows, AdminRow{
			Post:     p,
			ImageURL: api.ImageURL(p.Image),
			EditURL:  "/admin/posts/" + url.PathEscape(p.ID),
		})
	}
	for _, c := range models.Categories {
		page.Categories = append(page.Categories, CategoryOption{Value: c, Label: categoryLabel(c)})
	}
	for num := 1; num <= state.TotalPages; num++ {
		page.PageLinks = append(page.PageLinks, PageLink{
			Num:     num,
			URL:     "/admin?page=" + strconv.Itoa(num),
			Current: num == state.Page,
		})
	}

	renderTemplate(w, r, "admin_dashboard.html", TemplateData{
		User:   currentUser(r),
		Lang:   currentLang(r),
		Title:  "Admin Dashboard",
		Error:  errMsg,
		Notice: r.URL.Query().Get("notice"),
		Admin:  page,
	})
}

// AdminLoginHandler verifies credentials with the backend and opens a
// session persisting the returned bearer token.
func AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		Render500(w, r, "Failed to parse form")
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || password == "" {
		renderLogin(w, r, "Email and password are required.")
		return
	}

	user, token, err := api.Login(r.Context(), email, password)
	if err != nil {
		renderLogin(w, r, backend.Message(err))
		return
	}

	sess, err := sessions.Create(*user, token)
	if err != nil {
		Render500(w, r, "Failed to create session: "+err.Error())
		return
	}
	session.SetSessionCookie(w, sess.UUID, sess.Expires)
	log.Printf("Admin %s logged in", user.Email)
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// AdminLogoutHandler revokes the token server-side (best effort) and
// always deletes the local session.
func AdminLogoutHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if err := api.Logout(r.Context()); err != nil {
		log.Printf("Backend logout failed: %v", err)
	}
	if sess != nil {
		if err := sessions.Delete(sess.UUID); err != nil {
			log.Printf("Failed to delete session %s: %v", sess.UUID, err)
		}
		dashboards.Drop(sess.UUID)
	}
	session.ClearSessionCookie(w)
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// AdminCreatePostHandler submits a new post. On success the dashboard list
// and counters update in place; there is no full refetch.
func AdminCreatePostHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		Render500(w, r, "Failed to parse form")
		return
	}

	input := models.CreatePostInput{
		TitleEN:   strings.TrimSpace(r.FormValue("title_en")),
		TitleNP:   strings.TrimSpace(r.FormValue("title_np")),
		ContentEN: r.FormValue("content_en"),
		ContentNP: r.FormValue("content_np"),
		ExcerptEN: strings.TrimSpace(r.FormValue("excerpt_en")),
		ExcerptNP: strings.TrimSpace(r.FormValue("excerpt_np")),
		Category:  r.FormValue("category"),
		Image:     strings.TrimSpace(r.FormValue("image")),
		Tags:      splitTags(r.FormValue("tags")),
		Featured:  r.FormValue("featured") == "on",
		Published: r.FormValue("published") == "on",
	}
	if input.TitleEN == "" || input.ContentEN == "" {
		redirectAdmin(w, r, "", "English title and content are required.")
		return
	}
	if !models.ValidCategory(input.Category) {
		redirectAdmin(w, r, "", "Unknown category.")
		return
	}

	post, err := api.CreatePost(r.Context(), input)
	if err != nil {
		redirectAdmin(w, r, "", "Failed to create post: "+backend.Message(err))
		return
	}

	snap, _ := dashboards.Get(sess.UUID)
	snap.ApplyCreate(*post)
	redirectAdmin(w, r, "Post created successfully.", "")
}

// AdminPostHandler handles PUT (edit) and DELETE for one post, reached via
// a POST form with method override.
func AdminPostHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		adminEditPost(w, r)
	case http.MethodDelete:
		adminDeletePost(w, r)
	default:
		Render405(w, r)
	}
}

func adminEditPost(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	id := r.PathValue("id")
	if id == "" {
		Render404(w, r)
		return
	}

	strField := func(name string) *string {
		v := r.FormValue(name)
		return &v
	}
	featured := r.FormValue("featured") == "on"
	published := r.FormValue("published") == "on"
	category := r.FormValue("category")
	if !models.ValidCategory(category) {
		redirectAdmin(w, r, "", "Unknown category.")
		return
	}

	input := models.UpdatePostInput{
		TitleEN:   strField("title_en"),
		TitleNP:   strField("title_np"),
		ContentEN: strField("content_en"),
		ContentNP: strField("content_np"),
		ExcerptEN: strField("excerpt_en"),
		ExcerptNP: strField("excerpt_np"),
		Category:  &category,
		Image:     strField("image"),
		Tags:      splitTags(r.FormValue("tags")),
		Featured:  &featured,
		Published: &published,
	}

	post, err := api.UpdatePost(r.Context(), id, input)
	if err != nil {
		redirectAdmin(w, r, "", "Failed to update post: "+backend.Message(err))
		return
	}

	snap, _ := dashboards.Get(sess.UUID)
	snap.ApplyUpdate(*post)
	redirectAdmin(w, r, "Post updated successfully.", "")
}

func adminDeletePost(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	id := r.PathValue("id")
	if id == "" {
		Render404(w, r)
		return
	}
	// The delete form carries an explicit confirmation set by the browser
	// confirm dialog; a bare request does not delete anything.
	if r.FormValue("confirm") != "yes" {
		redirectAdmin(w, r, "", "Deletion was not confirmed.")
		return
	}

	if err := api.DeletePost(r.Context(), id); err != nil {
		redirectAdmin(w, r, "", "Failed to delete post: "+backend.Message(err))
		return
	}

	snap, _ := dashboards.Get(sess.UUID)
	snap.ApplyDelete(id)
	redirectAdmin(w, r, "Post deleted successfully.", "")
}

// AdminRefreshHandler re-fetches the current posts page and the stats
// concurrently, discarding the locally maintained state.
func AdminRefreshHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	snap, _ := dashboards.Get(sess.UUID)

	if msg := loadDashboard(r.Context(), snap, snap.View().Page); msg != "" {
		redirectAdmin(w, r, "", msg)
		return
	}
	redirectAdmin(w, r, "Dashboard refreshed.", "")
}

// AdminMediaUploadHandler proxies one image upload to the backend and
// reports the assigned URL so it can be pasted into a post form.
func AdminMediaUploadHandler(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		redirectAdmin(w, r, "", "No image file selected.")
		return
	}
	defer file.Close()

	uploadedURL, err := api.UploadMedia(r.Context(), header.Filename, file)
	if err != nil {
		redirectAdmin(w, r, "", "Upload failed: "+backend.Message(err))
		return
	}
	redirectAdmin(w, r, "Uploaded: "+uploadedURL, "")
}

// AdminAnalyticsHandler returns the backend analytics rollup for the
// requested period as JSON for the dashboard chart.
func AdminAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	switch period {
	case "week", "month", "year":
	default:
		period = "month"
	}

	data, err := api.Analytics(r.Context(), period)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":` + strconv.Quote(backend.Message(err)) + `}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func redirectAdmin(w http.ResponseWriter, r *http.Request, notice, errMsg string) {
	v := url.Values{}
	if notice != "" {
		v.Set("notice", notice)
	}
	if errMsg != "" {
		v.Set("error", errMsg)
	}
	target := "/admin"
	if len(v) > 0 {
		target += "?" + v.Encode()
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
