package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/baivab22/ictforumFrontend/internal/models"
)

// TokenProvider supplies the bearer token for outgoing requests and is the
// only place the token can be cleared from. Public pages run without one.
type TokenProvider interface {
	Token(ctx context.Context) string
	Clear(ctx context.Context)
}

// Client is the single point of outbound communication with the backend
// REST API. Every method returns either typed data or a normalized *Error.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
}

// New builds a client for the given API base URL (e.g. "https://host/api").
// tokens may be nil for a client that never authenticates.
func New(baseURL string, timeout time.Duration, tokens TokenProvider) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// ImageURL resolves a post image reference. Absolute URLs are used verbatim;
// relative identifiers are composed into the backend media path.
func (c *Client) ImageURL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "//") {
		return ref
	}
	return c.baseURL + "/posts/images/" + url.PathEscape(ref)
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     []fieldError    `json:"errors"`
	Count      int             `json:"count"`
	Total      int             `json:"total"`
	Pagination *Pagination     `json:"pagination"`
	Likes      int             `json:"likes"`
}

type fieldError struct {
	Msg string `json:"msg"`
}

// Pagination mirrors the backend's pagination block on list responses.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// do issues one request and normalizes every failure path. A 401 clears the
// stored token as a side effect; it does not force navigation.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("backend: failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, networkError()
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError()
	}

	var env envelope
	// The body may be empty or non-JSON on some failures; decode best-effort.
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.tokens != nil {
			c.tokens.Clear(ctx)
		}
		return nil, c.serverError(resp.StatusCode, &env)
	}
	if resp.StatusCode >= 400 || (len(raw) > 0 && !env.Success) {
		return nil, c.serverError(resp.StatusCode, &env)
	}
	return &env, nil
}

// serverError converts a structured error body into the normalized shape,
// aggregating field-level validation messages when present.
func (c *Client) serverError(status int, env *envelope) *Error {
	msg := env.Message
	if msg == "" {
		msg = "An error occurred"
	}
	var fields []string
	for _, fe := range env.Errors {
		if fe.Msg != "" {
			fields = append(fields, fe.Msg)
		}
	}
	return &Error{Status: status, Message: msg, Fields: fields}
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload interface{}) (*envelope, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("backend: failed to encode payload: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, query, body, contentType)
}

// Query carries the filter/pagination/language parameters for ListPosts.
// Zero values are omitted from the request.
type Query struct {
	Page     int
	Limit    int
	Category string
	Featured bool
	Search   string
	Sort     string
	Language string
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" && q.Category != models.CategoryAll {
		v.Set("category", q.Category)
	}
	if q.Featured {
		v.Set("featured", "true")
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Language != "" {
		v.Set("language", q.Language)
	}
	return v
}

// PostList is the decoded result of GET /posts.
type PostList struct {
	Posts []models.Post
	Count int
	Total int
	Page  int
	Limit int
	Pages int
}

// ListPosts fetches one page of posts with filters applied server-side.
func (c *Client) ListPosts(ctx context.Context, q Query) (*PostList, error) {
	env, err := c.do(ctx, http.MethodGet, "/posts", q.values(), nil, "")
	if err != nil {
		return nil, err
	}
	list := &PostList{Count: env.Count, Total: env.Total}
	if err := json.Unmarshal(env.Data, &list.Posts); err != nil {
		return nil, fmt.Errorf("backend: failed to decode posts: %w", err)
	}
	if env.Pagination != nil {
		list.Page = env.Pagination.Page
		list.Limit = env.Pagination.Limit
		list.Pages = env.Pagination.Pages
	}
	return list, nil
}

// FeaturedPosts fetches up to six featured posts for the home page.
func (c *Client) FeaturedPosts(ctx context.Context, language string) ([]models.Post, error) {
	list, err := c.ListPosts(ctx, Query{Featured: true, Limit: 6, Language: language})
	if err != nil {
		return nil, err
	}
	return list.Posts, nil
}

// GetPost fetches one post by id in the given language. A backend 404
// surfaces as an error for which IsNotFound reports true.
func (c *Client) GetPost(ctx context.Context, id, language string) (*models.Post, error) {
	v := url.Values{}
	if language != "" {
		v.Set("language", language)
	}
	env, err := c.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(id), v, nil, "")
	if err != nil {
		return nil, err
	}
	var post models.Post
	if err := json.Unmarshal(env.Data, &post); err != nil {
		return nil, fmt.Errorf("backend: failed to decode post: %w", err)
	}
	return &post, nil
}

// CreatePost submits a new post and returns the created entity.
func (c *Client) CreatePost(ctx context.Context, in models.CreatePostInput) (*models.Post, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/posts", nil, in)
	if err != nil {
		return nil, err
	}
	var post models.Post
	if err := json.Unmarshal(env.Data, &post); err != nil {
		return nil, fmt.Errorf("backend: failed to decode created post: %w", err)
	}
	return &post, nil
}

// UpdatePost submits changed fields for one post and returns the updated entity.
func (c *Client) UpdatePost(ctx context.Context, id string, in models.UpdatePostInput) (*models.Post, error) {
	env, err := c.doJSON(ctx, http.MethodPut, "/posts/"+url.PathEscape(id), nil, in)
	if err != nil {
		return nil, err
	}
	var post models.Post
	if err := json.Unmarshal(env.Data, &post); err != nil {
		return nil, fmt.Errorf("backend: failed to decode updated post: %w", err)
	}
	return &post, nil
}

// DeletePost removes one post. There is no undo.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), nil, nil, "")
	return err
}

// LikePost toggles a like and returns the new like count.
func (c *Client) LikePost(ctx context.Context, id string) (int, error) {
	env, err := c.do(ctx, http.MethodPut, "/posts/"+url.PathEscape(id)+"/like", nil, nil, "")
	if err != nil {
		return 0, err
	}
	return env.Likes, nil
}

// AddComment posts a comment on behalf of the current session.
func (c *Client) AddComment(ctx context.Context, id, text string) (*models.Comment, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/posts/"+url.PathEscape(id)+"/comments", nil, map[string]string{"text": text})
	if err != nil {
		return nil, err
	}
	var comment models.Comment
	if err := json.Unmarshal(env.Data, &comment); err != nil {
		return nil, fmt.Errorf("backend: failed to decode comment: %w", err)
	}
	return &comment, nil
}

// Stats fetches the aggregate dashboard counters.
func (c *Client) Stats(ctx context.Context) (*models.Stats, error) {
	env, err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, "")
	if err != nil {
		return nil, err
	}
	var stats models.Stats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		return nil, fmt.Errorf("backend: failed to decode stats: %w", err)
	}
	return &stats, nil
}

// Analytics fetches rollup data for the given period (week, month or year).
// The shape is backend-defined, so the raw JSON is returned for display.
func (c *Client) Analytics(ctx context.Context, period string) (json.RawMessage, error) {
	v := url.Values{}
	v.Set("period", period)
	env, err := c.do(ctx, http.MethodGet, "/admin/analytics", v, nil, "")
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Login verifies credentials with the backend and returns the user plus the
// bearer token to persist for the session.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	payload := map[string]string{"email": email, "password": password}
	env, err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, payload)
	if err != nil {
		return nil, "", err
	}
	var data struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, "", fmt.Errorf("backend: failed to decode login response: %w", err)
	}
	return &data.User, data.Token, nil
}

// Profile fetches the current user for the session token.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, "")
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return nil, fmt.Errorf("backend: failed to decode profile: %w", err)
	}
	return &user, nil
}

// Logout invalidates the token server-side. Callers delete the local
// session regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, "")
	return err
}

// UploadMedia streams one file as multipart form data and returns the
// URL the backend assigned to it.
func (c *Client) UploadMedia(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("backend: failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("backend: failed to read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("backend: failed to finish upload form: %w", err)
	}

	env, err := c.do(ctx, http.MethodPost, "/media/upload", nil, &buf, mw.FormDataContentType())
	if err != nil {
		return "", err
	}
	var data struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("backend: failed to decode upload response: %w", err)
	}
	return data.URL, nil
}

// ListMedia fetches the uploaded media files.
func (c *Client) ListMedia(ctx context.Context) ([]models.MediaFile, error) {
	env, err := c.do(ctx, http.MethodGet, "/media", nil, nil, "")
	if err != nil {
		return nil, err
	}
	var files []models.MediaFile
	if err := json.Unmarshal(env.Data, &files); err != nil {
		return nil, fmt.Errorf("backend: failed to decode media list: %w", err)
	}
	return files, nil
}

// DeleteMedia removes one uploaded file.
func (c *Client) DeleteMedia(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/media/"+url.PathEscape(id), nil, nil, "")
	return err
}
