package frontpage

import (
	"database/sql"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// PostSource supplies published posts sorted newest first.
type PostSource interface {
	ListPosts() ([]Post, error)
}

// PostCache is an in-memory TTL cache of the published post snapshot.
// Callers must treat returned slices as read-only; they are shared.
type PostCache struct {
	mu      sync.RWMutex
	posts   []Post
	bySlug  map[string]int
	fetched time.Time
	ttl     time.Duration
	source  PostSource
}

// NewPostCache creates a PostCache backed by src.
func NewPostCache(src PostSource, ttl time.Duration) *PostCache {
	return &PostCache{source: src, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.bySlug = nil
	c.mu.Unlock()
}

func (c *PostCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.source.ListPosts()
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []Post{}
	}
	bySlug := make(map[string]int, len(posts))
	for i, p := range posts {
		bySlug[p.Slug] = i
	}
	c.posts = posts
	c.bySlug = bySlug
	c.fetched = time.Now()
	return nil
}

// snapshot returns the cached posts after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) snapshot() ([]Post, map[string]int, error) {
	c.mu.RLock()
	if c.valid() {
		posts, bySlug := c.posts, c.bySlug
		c.mu.RUnlock()
		return posts, bySlug, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.posts, c.bySlug, nil
}

// ListPosts returns the published posts, newest first.
func (c *PostCache) ListPosts() ([]Post, error) {
	posts, _, err := c.snapshot()
	return posts, err
}

// GetPost returns a single published post by slug from the cache.
func (c *PostCache) GetPost(slug string) (Post, error) {
	posts, bySlug, err := c.snapshot()
	if err != nil {
		return Post{}, err
	}
	i, ok := bySlug[slug]
	if !ok {
		return Post{}, ErrNotFound
	}
	return posts[i], nil
}
