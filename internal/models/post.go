package models

// Post categories are a fixed backend enum. "all" is a filter value only and
// never a valid category on a post.
const (
	CategoryAll = "all"

	CategoryTechnology            = "technology"
	CategoryDigitalTransformation = "digitalTransformation"
	CategorySocialJustice         = "socialJustice"
	CategoryEvents                = "events"
	CategoryInnovation            = "innovation"
	CategoryPolicy                = "policy"
	CategoryEducation             = "education"
	CategoryStartups              = "startups"
)

// Categories lists the valid post categories in display order.
var Categories = []string{
	CategoryTechnology,
	CategoryDigitalTransformation,
	CategorySocialJustice,
	CategoryEvents,
	CategoryInnovation,
	CategoryPolicy,
	CategoryEducation,
	CategoryStartups,
}

// ValidCategory reports whether c is one of the fixed post categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Post is the render-only copy of a backend post. Bilingual fields may be
// independently empty; language selection falls back to English.
type Post struct {
	ID          string    `json:"id"`
	TitleEN     string    `json:"title_en"`
	TitleNP     string    `json:"title_np"`
	ContentEN   string    `json:"content_en"`
	ContentNP   string    `json:"content_np"`
	ExcerptEN   string    `json:"excerpt_en"`
	ExcerptNP   string    `json:"excerpt_np"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Author      User      `json:"author"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	Comments    []Comment `json:"comments"`
	PublishedAt string    `json:"publishedAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

// Title returns the title in the given language ("en" or "np"),
// falling back to English when the variant is empty.
func (p Post) Title(lang string) string {
	if lang == LangNepali && p.TitleNP != "" {
		return p.TitleNP
	}
	return p.TitleEN
}

// Content returns the body in the given language with English fallback.
func (p Post) Content(lang string) string {
	if lang == LangNepali && p.ContentNP != "" {
		return p.ContentNP
	}
	return p.ContentEN
}

// Excerpt returns the excerpt in the given language with English fallback.
func (p Post) Excerpt(lang string) string {
	if lang == LangNepali && p.ExcerptNP != "" {
		return p.ExcerptNP
	}
	return p.ExcerptEN
}

// Comment is read-only in this frontend; the backend owns creation.
type Comment struct {
	ID        string `json:"id"`
	User      User   `json:"user"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// CreatePostInput is the payload for POST /posts.
type CreatePostInput struct {
	TitleEN   string   `json:"title_en"`
	TitleNP   string   `json:"title_np"`
	ContentEN string   `json:"content_en"`
	ContentNP string   `json:"content_np"`
	ExcerptEN string   `json:"excerpt_en,omitempty"`
	ExcerptNP string   `json:"excerpt_np,omitempty"`
	Category  string   `json:"category"`
	Image     string   `json:"image"`
	Tags      []string `json:"tags"`
	Featured  bool     `json:"featured"`
	Published bool     `json:"published"`
}

// UpdatePostInput carries only the fields being changed for PUT /posts/:id.
type UpdatePostInput struct {
	TitleEN   *string  `json:"title_en,omitempty"`
	TitleNP   *string  `json:"title_np,omitempty"`
	ContentEN *string  `json:"content_en,omitempty"`
	ContentNP *string  `json:"content_np,omitempty"`
	ExcerptEN *string  `json:"excerpt_en,omitempty"`
	ExcerptNP *string  `json:"excerpt_np,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Image     *string  `json:"image,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Featured  *bool    `json:"featured,omitempty"`
	Published *bool    `json:"published,omitempty"`
}
