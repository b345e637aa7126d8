package registryapi

import (
	"sync"
	"time"

	"github.com/Commands-com/claude-stacks/internal/stack"
)

// Cache provides in-memory caching with TTL for fetched manifests.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	manifest  *stack.Manifest
	expiresAt time.Time
}

// NewCache creates a cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached manifest for ref if still valid.
func (c *Cache) Get(ref string) (*stack.Manifest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[ref]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.manifest, true
}

// Set caches a manifest under ref.
func (c *Cache) Set(ref string, m *stack.Manifest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[ref] = cacheEntry{
		manifest:  m,
		expiresAt: time.Now().Add(c.ttl),
	}
}
