package khabar_test

import (
	"testing"

	"github.com/gujnews/khabar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(name string) *khabar.DomainConfig {
	return &khabar.DomainConfig{
		DomainName:               name,
		ArticleContainerSelector: ".story",
		AllowedTags:              khabar.DefaultAllowedTags(),
		MinTextLength:            khabar.DefaultMinTextLength,
		WaitTimeout:              khabar.DefaultWaitTimeout,
		ClickTimeout:             khabar.DefaultClickTimeout,
		PageLoadTimeout:          khabar.DefaultPageLoadTimeout,
		WaitUntil:                khabar.WaitDOMContentLoaded,
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("binds domain name as hostname when none given", func(t *testing.T) {
		t.Parallel()

		r := khabar.NewRegistry()
		require.NoError(t, r.Register(testConfig("example.com")))

		got := r.ResolveByURL("https://example.com/news/story-1")

		require.NotNil(t, got)
		assert.Equal(t, "example.com", got.DomainName)
	})

	t.Run("rejects empty domain name", func(t *testing.T) {
		t.Parallel()

		r := khabar.NewRegistry()
		err := r.Register(&khabar.DomainConfig{})

		require.Error(t, err)
		assert.Equal(t, khabar.EINVALID, khabar.ErrorCode(err))
	})

	t.Run("duplicate names silently replace", func(t *testing.T) {
		t.Parallel()

		r := khabar.NewRegistry()
		first := testConfig("site")
		second := testConfig("site")
		second.MinTextLength = 99

		require.NoError(t, r.Register(first, "site.com"))
		require.NoError(t, r.Register(second, "site.com"))

		got := r.ResolveByName("site")
		require.NotNil(t, got)
		assert.Equal(t, 99, got.MinTextLength)
		assert.Equal(t, []string{"site"}, r.Names())
	})
}

func TestRegistry_ResolveByName(t *testing.T) {
	t.Parallel()

	t.Run("returns configuration whose name matches", func(t *testing.T) {
		t.Parallel()

		r := khabar.NewRegistry()
		require.NoError(t, khabar.RegisterBuiltins(r))

		for _, name := range r.Names() {
			got := r.ResolveByName(name)
			require.NotNil(t, got, "name %q", name)
			assert.Equal(t, name, got.DomainName)
		}
	})

	t.Run("returns nil for unregistered name", func(t *testing.T) {
		t.Parallel()

		r := khabar.NewRegistry()

		assert.Nil(t, r.ResolveByName("nonexistent"))
	})
}

func TestRegistry_ResolveByURL(t *testing.T) {
	t.Parallel()

	t.Run("matches host case-insensitively", func(t *testing.T) {
		t.Parallel()

		r := khabar.NewRegistry()
		require.NoError(t, r.Register(testConfig("sandesh"), "sandesh.com", "www.sandesh.com"))

		got := r.ResolveByURL("https://WWW.Sandesh.COM/crime/news/some-story")

		require.NotNil(t, got)
		assert.Equal(t, "sandesh", got.DomainName)
	})

	t.Run("registering bare and www variants makes both resolve identically", func(t *testing.T) {
		t.Parallel()

		r := khabar.NewRegistry()
		require.NoError(t, r.Register(testConfig("sandesh"), "sandesh.com", "www.sandesh.com"))

		bare := r.ResolveByURL("https://sandesh.com/a")
		www := r.ResolveByURL("https://www.sandesh.com/a")

		require.NotNil(t, bare)
		require.NotNil(t, www)
		assert.Same(t, bare, www)
	})

	t.Run("ignores port", func(t *testing.T) {
		t.Parallel()

		r := khabar.NewRegistry()
		require.NoError(t, r.Register(testConfig("local"), "localhost"))

		got := r.ResolveByURL("http://localhost:8080/story")

		require.NotNil(t, got)
		assert.Equal(t, "local", got.DomainName)
	})

	t.Run("returns nil for unregistered host", func(t *testing.T) {
		t.Parallel()

		r := khabar.NewRegistry()
		require.NoError(t, khabar.RegisterBuiltins(r))

		assert.Nil(t, r.ResolveByURL("https://unknown.example.org/story"))
	})

	t.Run("returns nil for unparseable URL", func(t *testing.T) {
		t.Parallel()

		r := khabar.NewRegistry()

		assert.Nil(t, r.ResolveByURL("::not a url::"))
	})
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	t.Run("preserves registration order", func(t *testing.T) {
		t.Parallel()

		r := khabar.NewRegistry()
		require.NoError(t, r.Register(testConfig("c")))
		require.NoError(t, r.Register(testConfig("a")))
		require.NoError(t, r.Register(testConfig("b")))

		assert.Equal(t, []string{"c", "a", "b"}, r.Names())
	})
}

func TestRegisterBuiltins(t *testing.T) {
	t.Parallel()

	r := khabar.NewRegistry()
	require.NoError(t, khabar.RegisterBuiltins(r))

	assert.Equal(t, []string{"sandesh", "tv9gujarati", "gujaratsamachar", "aajtak"}, r.Names())

	for _, name := range r.Names() {
		config := r.ResolveByName(name)
		require.NotNil(t, config)
		assert.NoError(t, config.Validate(), "builtin %q must validate", name)
	}
}
