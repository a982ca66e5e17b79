package cache

import (
	"context"
	"testing"
	"time"

	"github.com/pressroomdev/pressroom/internal/store"
)

func newTestPostCache(t *testing.T) *PostCache {
	t.Helper()
	mem := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = mem.Close() })
	return NewPostCache(mem, time.Minute)
}

func TestPostCache_PublishedRoundTrip(t *testing.T) {
	pc := newTestPostCache(t)
	ctx := context.Background()

	if _, ok := pc.GetPublished(ctx); ok {
		t.Error("empty cache should miss")
	}

	posts := []store.Post{{ID: 1, Title: "One", Slug: "one", Status: "published"}}
	pc.SetPublished(ctx, posts)

	got, ok := pc.GetPublished(ctx)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].Slug != "one" {
		t.Errorf("got %+v, want cached post", got)
	}
}

func TestPostCache_BySlug(t *testing.T) {
	pc := newTestPostCache(t)
	ctx := context.Background()

	pc.SetBySlug(ctx, "hello", store.Post{ID: 2, Slug: "hello"})

	got, ok := pc.GetBySlug(ctx, "hello")
	if !ok || got.ID != 2 {
		t.Errorf("GetBySlug = %+v, %v; want ID 2 hit", got, ok)
	}
}

func TestPostCache_Invalidate(t *testing.T) {
	pc := newTestPostCache(t)
	ctx := context.Background()

	pc.SetPublished(ctx, []store.Post{{ID: 1}})
	pc.SetBySlug(ctx, "x", store.Post{ID: 1, Slug: "x"})

	pc.Invalidate(ctx)

	if _, ok := pc.GetPublished(ctx); ok {
		t.Error("published listing should be invalidated")
	}
	if _, ok := pc.GetBySlug(ctx, "x"); ok {
		t.Error("slug entry should be invalidated")
	}
}

func TestPostCache_NilSafe(t *testing.T) {
	var pc *PostCache
	ctx := context.Background()

	if _, ok := pc.GetPublished(ctx); ok {
		t.Error("nil cache should miss")
	}
	pc.SetPublished(ctx, nil)
	pc.Invalidate(ctx)
}
