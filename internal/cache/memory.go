package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MemoryCache is a thread-safe in-memory cache implementation.
type MemoryCache struct {
	data       sync.Map
	defaultTTL time.Duration
	maxSize    int
	entries    atomic.Int64
	stopCh     chan struct{}
	closed     atomic.Bool
}

// memoryCacheEntry holds a cached value with its expiration time.
type memoryCacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCacheOptions configures the memory cache.
type MemoryCacheOptions struct {
	DefaultTTL      time.Duration
	MaxSize         int           // Maximum number of entries (0 = unlimited)
	CleanupInterval time.Duration // Interval for expired entry cleanup (0 = no cleanup)
}

// NewMemoryCache creates a new memory cache with the given options.
func NewMemoryCache(opts MemoryCacheOptions) *MemoryCache {
	c := &MemoryCache{
		defaultTTL: opts.DefaultTTL,
		maxSize:    opts.MaxSize,
		stopCh:     make(chan struct{}),
	}

	if opts.CleanupInterval > 0 {
		go c.cleanupLoop(opts.CleanupInterval)
	}

	return c
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrCacheClosed
	}

	val, ok := c.data.Load(key)
	if !ok {
		return nil, ErrCacheMiss
	}

	entry := val.(*memoryCacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.deleteEntry(key)
		return nil, ErrCacheMiss
	}

	// Return a copy to prevent mutation
	result := make([]byte, len(entry.value))
	copy(result, entry.value)
	return result, nil
}

// Set stores a value in the cache.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if c.maxSize > 0 && c.entries.Load() >= int64(c.maxSize) {
		if _, exists := c.data.Load(key); !exists {
			c.evictOne()
		}
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if _, loaded := c.data.Swap(key, &memoryCacheEntry{
		value:     stored,
		expiresAt: time.Now().Add(ttl),
	}); !loaded {
		c.entries.Add(1)
	}

	return nil
}

// Delete removes a key from the cache.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	c.deleteEntry(key)
	return nil
}

// Clear removes all entries from the cache.
func (c *MemoryCache) Clear(_ context.Context) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	c.data.Range(func(key, _ any) bool {
		c.deleteEntry(key.(string))
		return true
	})
	return nil
}

// Close stops the cleanup goroutine and marks the cache as closed.
func (c *MemoryCache) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		close(c.stopCh)
	}
	return nil
}

func (c *MemoryCache) deleteEntry(key string) {
	if _, loaded := c.data.LoadAndDelete(key); loaded {
		c.entries.Add(-1)
	}
}

// evictOne removes an arbitrary entry, preferring expired ones.
func (c *MemoryCache) evictOne() {
	now := time.Now()
	var fallback string
	var found bool
	c.data.Range(func(key, val any) bool {
		entry := val.(*memoryCacheEntry)
		if now.After(entry.expiresAt) {
			c.deleteEntry(key.(string))
			found = true
			return false
		}
		fallback = key.(string)
		return true
	})
	if !found && fallback != "" {
		c.deleteEntry(fallback)
	}
}

func (c *MemoryCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			now := time.Now()
			c.data.Range(func(key, val any) bool {
				entry := val.(*memoryCacheEntry)
				if now.After(entry.expiresAt) {
					c.deleteEntry(key.(string))
				}
				return true
			})
		}
	}
}
