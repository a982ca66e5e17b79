package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer c.Close()

	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer c.Close()

	if _, err := c.Get(context.Background(), "missing"); err != ErrCacheMiss {
		t.Errorf("Get(missing) = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer c.Close()

	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := c.Get(ctx, "key"); err != ErrCacheMiss {
		t.Errorf("Get(expired) = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer c.Close()

	ctx := context.Background()

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, "a"); err != ErrCacheMiss {
		t.Errorf("Get after Delete = %v, want ErrCacheMiss", err)
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := c.Get(ctx, "b"); err != ErrCacheMiss {
		t.Errorf("Get after Clear = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Closed(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	_ = c.Close()

	if _, err := c.Get(context.Background(), "key"); err != ErrCacheClosed {
		t.Errorf("Get on closed cache = %v, want ErrCacheClosed", err)
	}
	if err := c.Set(context.Background(), "key", nil, 0); err != ErrCacheClosed {
		t.Errorf("Set on closed cache = %v, want ErrCacheClosed", err)
	}
}

func TestMemoryCache_CopyOnGet(t *testing.T) {
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	defer c.Close()

	ctx := context.Background()
	_ = c.Set(ctx, "key", []byte("abc"), 0)

	got, _ := c.Get(ctx, "key")
	got[0] = 'z'

	again, _ := c.Get(ctx, "key")
	if string(again) != "abc" {
		t.Errorf("cached value mutated through returned slice: %q", again)
	}
}
