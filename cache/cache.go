// Package cache provides an in-memory TTL cache for extraction results,
// keyed by hashed URL.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// DefaultTTL is how long an extraction result stays fresh.
const DefaultTTL = time.Hour

// Stats reports cache effectiveness counters.
type Stats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

type entry struct {
	content   string
	expiresAt time.Time
}

// Cache is a concurrency-safe in-memory cache with per-entry expiry.
// Expired entries are dropped lazily on lookup.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	hits    int64
	misses  int64

	// now is replaceable in tests.
	now func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the default entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// New returns an empty cache with the default TTL.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached content for a URL and whether it was present
// and still fresh.
func (c *Cache) Get(url string) (string, bool) {
	key := hashKey(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return "", false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		c.misses++
		return "", false
	}
	c.hits++
	return e.content, true
}

// Set stores content for a URL, replacing any previous entry.
func (c *Cache) Set(url, content string) {
	key := hashKey(url)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		content:   content,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Clear drops every entry and returns how many were removed. The hit
// and miss counters are preserved.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]entry)
	return n
}

// Stats returns a snapshot of the current counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// hashKey hashes a URL with xxhash so keys stay short regardless of URL
// length.
func hashKey(url string) string {
	h := xxhash.Sum64String(url)
	return fmt.Sprintf("%x", h)
}
