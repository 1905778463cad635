package admin

import (
	"sync"

	"github.com/baivab22/ictforumFrontend/internal/backend"
	"github.com/baivab22/ictforumFrontend/internal/models"
)

// PostsPerPage is the admin post table page size.
const PostsPerPage = 12

// Snapshot is the per-admin-session dashboard state: the current page of
// posts plus the stats counters. Mutations update it in place after the
// backend confirms them, so the dashboard stays consistent without a full
// refetch; on failure the snapshot is left untouched.
type Snapshot struct {
	mu sync.Mutex

	posts      []models.Post
	stats      models.Stats
	page       int
	totalPages int
	totalPosts int
}

func NewSnapshot() *Snapshot {
	return &Snapshot{page: 1}
}

// SetPosts replaces the post page from a fresh listing fetch.
func (s *Snapshot) SetPosts(list *backend.PostList) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.Post(nil), list.Posts...)
	s.page = list.Page
	if s.page < 1 {
		s.page = 1
	}
	s.totalPages = list.Pages
	s.totalPosts = list.Total
}

// SetStats replaces the stats counters from a fresh fetch.
func (s *Snapshot) SetStats(stats models.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
}

// ApplyCreate prepends the created post and bumps the counters: total
// always, featured only when the new post is featured.
func (s *Snapshot) ApplyCreate(post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.Post{post}, s.posts...)
	s.totalPosts++
	s.stats.TotalPosts++
	if post.Featured {
		s.stats.FeaturedPosts++
	}
}

// ApplyUpdate replaces the matching entry in place. The featured counter
// moves only when the flag actually changed.
func (s *Snapshot) ApplyUpdate(post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != post.ID {
			continue
		}
		if post.Featured != s.posts[i].Featured {
			if post.Featured {
				s.stats.FeaturedPosts++
			} else {
				s.stats.FeaturedPosts--
			}
		}
		s.posts[i] = post
		return
	}
}

// ApplyDelete removes exactly the post with the given id and decrements the
// counters. Other entries are untouched. It reports whether the id was found.
func (s *Snapshot) ApplyDelete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		featured := s.posts[i].Featured
		s.posts = append(s.posts[:i], s.posts[i+1:]...)
		s.totalPosts--
		s.stats.TotalPosts--
		if featured {
			s.stats.FeaturedPosts--
		}
		return true
	}
	return false
}

// Find returns a copy of the post with the given id, if present.
func (s *Snapshot) Find(id string) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// StateView is a consistent copy of the snapshot for rendering.
type StateView struct {
	Posts      []models.Post
	Stats      models.Stats
	Page       int
	TotalPages int
	TotalPosts int
}

// View returns a copy safe to read while other requests mutate the snapshot.
func (s *Snapshot) View() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StateView{
		Posts:      append([]models.Post(nil), s.posts...),
		Stats:      s.stats,
		Page:       s.page,
		TotalPages: s.totalPages,
		TotalPosts: s.totalPosts,
	}
}

// Registry tracks one snapshot per admin session UUID.
type Registry struct {
	mu        sync.Mutex
	snapshots map[string]*Snapshot
}

func NewRegistry() *Registry {
	return &Registry{snapshots: make(map[string]*Snapshot)}
}

// Get returns the snapshot for a session, creating it on first use.
// The second result reports whether the snapshot already existed.
func (r *Registry) Get(sessionUUID string) (*Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap, ok := r.snapshots[sessionUUID]
	if !ok {
		snap = NewSnapshot()
		r.snapshots[sessionUUID] = snap
	}
	return snap, ok
}

// Drop forgets the snapshot for a session (logout, auth failure).
func (r *Registry) Drop(sessionUUID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snapshots, sessionUUID)
}
