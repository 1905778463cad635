package admin

import (
	"testing"

	"github.com/baivab22/ictforumFrontend/internal/backend"
	"github.com/baivab22/ictforumFrontend/internal/models"
)

func seeded() *Snapshot {
	s := NewSnapshot()
	s.SetPosts(&backend.PostList{
		Posts: []models.Post{
			{ID: "a", TitleEN: "First", Featured: true},
			{ID: "b", TitleEN: "Second"},
			{ID: "c", TitleEN: "Third"},
		},
		Page:  1,
		Pages: 1,
		Total: 3,
	})
	s.SetStats(models.Stats{TotalPosts: 3, FeaturedPosts: 1})
	return s
}

func TestApplyCreate(t *testing.T) {
	s := seeded()
	s.ApplyCreate(models.Post{ID: "d", TitleEN: "Fourth", Featured: true})

	v := s.View()
	if len(v.Posts) != 4 || v.Posts[0].ID != "d" {
		t.Fatalf("created post should be prepended: %+v", v.Posts)
	}
	if v.Stats.TotalPosts != 4 {
		t.Fatalf("total should be 4, got %d", v.Stats.TotalPosts)
	}
	if v.Stats.FeaturedPosts != 2 {
		t.Fatalf("featured should be 2, got %d", v.Stats.FeaturedPosts)
	}

	s.ApplyCreate(models.Post{ID: "e", TitleEN: "Plain"})
	if got := s.View().Stats.FeaturedPosts; got != 2 {
		t.Fatalf("non-featured create must not move the featured counter: %d", got)
	}
}

func TestApplyUpdateInPlace(t *testing.T) {
	s := seeded()
	s.ApplyUpdate(models.Post{ID: "b", TitleEN: "Second, edited"})

	v := s.View()
	if v.Posts[1].TitleEN != "Second, edited" {
		t.Fatalf("update should replace in place: %+v", v.Posts[1])
	}
	if len(v.Posts) != 3 || v.Stats.TotalPosts != 3 {
		t.Fatalf("update must not change counts: %d posts, total %d", len(v.Posts), v.Stats.TotalPosts)
	}
}

func TestApplyUpdateFeaturedCounter(t *testing.T) {
	s := seeded()

	// b gains the flag: counter up.
	s.ApplyUpdate(models.Post{ID: "b", TitleEN: "Second", Featured: true})
	if got := s.View().Stats.FeaturedPosts; got != 2 {
		t.Fatalf("after featuring b: got %d, want 2", got)
	}

	// Edit without touching the flag: counter unchanged.
	s.ApplyUpdate(models.Post{ID: "b", TitleEN: "Second again", Featured: true})
	if got := s.View().Stats.FeaturedPosts; got != 2 {
		t.Fatalf("flag unchanged, counter moved: %d", got)
	}

	// a loses the flag: counter down.
	s.ApplyUpdate(models.Post{ID: "a", TitleEN: "First", Featured: false})
	if got := s.View().Stats.FeaturedPosts; got != 1 {
		t.Fatalf("after unfeaturing a: got %d, want 1", got)
	}
}

func TestApplyDelete(t *testing.T) {
	s := seeded()

	if !s.ApplyDelete("b") {
		t.Fatal("delete of existing id should report true")
	}
	v := s.View()
	if len(v.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(v.Posts))
	}
	for _, p := range v.Posts {
		if p.ID == "b" {
			t.Fatal("deleted post still present")
		}
	}
	if v.Posts[0].ID != "a" || v.Posts[1].ID != "c" {
		t.Fatalf("delete touched other entries: %+v", v.Posts)
	}
	if v.Stats.TotalPosts != 2 {
		t.Fatalf("total should be 2, got %d", v.Stats.TotalPosts)
	}

	// Deleting the featured post moves the featured counter.
	s.ApplyDelete("a")
	if got := s.View().Stats.FeaturedPosts; got != 0 {
		t.Fatalf("featured should be 0, got %d", got)
	}

	if s.ApplyDelete("nope") {
		t.Fatal("delete of unknown id should report false")
	}
}

func TestRegistryPerSession(t *testing.T) {
	r := NewRegistry()

	a, existed := r.Get("sess-a")
	if existed {
		t.Fatal("first Get should create the snapshot")
	}
	a.ApplyCreate(models.Post{ID: "x"})

	b, _ := r.Get("sess-b")
	if got := len(b.View().Posts); got != 0 {
		t.Fatalf("sessions must not share state: %d posts", got)
	}

	again, existed := r.Get("sess-a")
	if !existed || again != a {
		t.Fatal("second Get should return the same snapshot")
	}

	r.Drop("sess-a")
	if _, existed := r.Get("sess-a"); existed {
		t.Fatal("dropped snapshot should be recreated fresh")
	}
}
