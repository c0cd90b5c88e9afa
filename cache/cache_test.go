package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Parallel()

	t.Run("returns stored content before expiry", func(t *testing.T) {
		t.Parallel()

		c := New()
		c.Set("https://news.example.com/a", "<p>body</p>")

		content, ok := c.Get("https://news.example.com/a")
		require.True(t, ok)
		assert.Equal(t, "<p>body</p>", content)
	})

	t.Run("misses on unknown URL", func(t *testing.T) {
		t.Parallel()

		c := New()
		_, ok := c.Get("https://news.example.com/missing")
		assert.False(t, ok)
	})

	t.Run("expires entries after the TTL", func(t *testing.T) {
		t.Parallel()

		c := New(WithTTL(time.Minute))
		clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return clock }

		c.Set("https://news.example.com/a", "<p>body</p>")

		clock = clock.Add(59 * time.Second)
		_, ok := c.Get("https://news.example.com/a")
		assert.True(t, ok)

		clock = clock.Add(2 * time.Second)
		_, ok = c.Get("https://news.example.com/a")
		assert.False(t, ok)

		// The expired entry is gone, not just hidden.
		assert.Equal(t, 0, c.Stats().Entries)
	})

	t.Run("set replaces an existing entry", func(t *testing.T) {
		t.Parallel()

		c := New()
		c.Set("https://news.example.com/a", "old")
		c.Set("https://news.example.com/a", "new")

		content, ok := c.Get("https://news.example.com/a")
		require.True(t, ok)
		assert.Equal(t, "new", content)
		assert.Equal(t, 1, c.Stats().Entries)
	})

	t.Run("clear removes entries but keeps counters", func(t *testing.T) {
		t.Parallel()

		c := New()
		c.Set("https://news.example.com/a", "x")
		c.Set("https://news.example.com/b", "y")
		c.Get("https://news.example.com/a")
		c.Get("https://news.example.com/missing")

		assert.Equal(t, 2, c.Clear())

		stats := c.Stats()
		assert.Equal(t, 0, stats.Entries)
		assert.Equal(t, int64(1), stats.Hits)
		assert.Equal(t, int64(1), stats.Misses)
	})

	t.Run("stats count hits and misses", func(t *testing.T) {
		t.Parallel()

		c := New()
		c.Set("https://news.example.com/a", "x")
		c.Get("https://news.example.com/a")
		c.Get("https://news.example.com/a")
		c.Get("https://news.example.com/missing")

		stats := c.Stats()
		assert.Equal(t, 1, stats.Entries)
		assert.Equal(t, int64(2), stats.Hits)
		assert.Equal(t, int64(1), stats.Misses)
	})
}
