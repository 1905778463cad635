package models

// Stats is the read-only dashboard snapshot from GET /admin/stats.
// It is refreshed on demand and never persisted locally.
type Stats struct {
	TotalPosts     int `json:"totalPosts"`
	TotalUsers     int `json:"totalUsers"`
	TotalViews     int `json:"totalViews"`
	FeaturedPosts  int `json:"featuredPosts"`
	PublishedPosts int `json:"publishedPosts"`
	DraftPosts     int `json:"draftPosts"`
	MonthlyViews   int `json:"monthlyViews"`
	MonthlyPosts   int `json:"monthlyPosts"`
}

// MediaFile describes an entry from GET /media.
type MediaFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
