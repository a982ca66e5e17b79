package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressroomdev/pressroom/internal/store"
)

// Post cache keys
const (
	keyPublishedAll    = "posts:published:all"
	keyPublishedLatest = "posts:published:latest:%d"
	keyBySlug          = "posts:slug:%s"
)

// PostCache caches published post listings and slug lookups on top of a
// byte-level Cache. The cache instance should be dedicated to posts, since
// Invalidate clears it wholesale.
type PostCache struct {
	cache Cache
	ttl   time.Duration
}

// NewPostCache creates a post cache with the given TTL.
func NewPostCache(c Cache, ttl time.Duration) *PostCache {
	return &PostCache{cache: c, ttl: ttl}
}

// GetPublished returns the cached published-post listing, if present.
func (p *PostCache) GetPublished(ctx context.Context) ([]store.Post, bool) {
	return p.getPosts(ctx, keyPublishedAll)
}

// SetPublished caches the published-post listing.
func (p *PostCache) SetPublished(ctx context.Context, posts []store.Post) {
	p.setPosts(ctx, keyPublishedAll, posts)
}

// GetLatest returns the cached latest-published listing for the given limit.
func (p *PostCache) GetLatest(ctx context.Context, limit int64) ([]store.Post, bool) {
	return p.getPosts(ctx, fmt.Sprintf(keyPublishedLatest, limit))
}

// SetLatest caches the latest-published listing for the given limit.
func (p *PostCache) SetLatest(ctx context.Context, limit int64, posts []store.Post) {
	p.setPosts(ctx, fmt.Sprintf(keyPublishedLatest, limit), posts)
}

// GetBySlug returns a cached published post by slug, if present.
func (p *PostCache) GetBySlug(ctx context.Context, slug string) (store.Post, bool) {
	if p == nil {
		return store.Post{}, false
	}
	data, err := p.cache.Get(ctx, fmt.Sprintf(keyBySlug, slug))
	if err != nil {
		return store.Post{}, false
	}
	var post store.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return store.Post{}, false
	}
	return post, true
}

// SetBySlug caches a published post under its slug.
func (p *PostCache) SetBySlug(ctx context.Context, slug string, post store.Post) {
	if p == nil {
		return
	}
	data, err := json.Marshal(post)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, fmt.Sprintf(keyBySlug, slug), data, p.ttl); err != nil {
		slog.Debug("post cache set failed", "slug", slug, "error", err)
	}
}

// Invalidate drops all cached post data. Called after any post mutation and
// after a sweep that promoted at least one post.
func (p *PostCache) Invalidate(ctx context.Context) {
	if p == nil {
		return
	}
	if err := p.cache.Clear(ctx); err != nil {
		slog.Warn("post cache invalidation failed", "error", err)
	}
}

func (p *PostCache) getPosts(ctx context.Context, key string) ([]store.Post, bool) {
	if p == nil {
		return nil, false
	}
	data, err := p.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	var posts []store.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, false
	}
	return posts, true
}

func (p *PostCache) setPosts(ctx context.Context, key string, posts []store.Post) {
	if p == nil {
		return
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
		slog.Debug("post cache set failed", "key", key, "error", err)
	}
}
