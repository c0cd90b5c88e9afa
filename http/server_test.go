package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gujnews/khabar"
	"github.com/gujnews/khabar/cache"
	"github.com/gujnews/khabar/generate"
	khhttp "github.com/gujnews/khabar/http"
	"github.com/gujnews/khabar/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *khhttp.Server {
	s := khhttp.NewServer()
	s.Registry = khabar.NewRegistry()
	return s
}

func doJSON(t *testing.T, s *khhttp.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns content with metadata", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		s.Extractor = &mock.ArticleExtractor{
			ExtractArticleFn: func(ctx context.Context, req khabar.ExtractRequest) (string, error) {
				assert.Equal(t, "https://news.example.com/a", req.URL)
				assert.Equal(t, "sandesh", req.DomainName)
				return "<p>body</p>", nil
			},
		}

		rec := doJSON(t, s, http.MethodPost, "/extract",
			`{"url": "https://news.example.com/a", "domain_name": "sandesh"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success  bool   `json:"success"`
			Content  string `json:"content"`
			Metadata struct {
				DomainName    string `json:"domain_name"`
				ContentLength int    `json:"content_length"`
				Cached        bool   `json:"cached"`
			} `json:"metadata"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "<p>body</p>", resp.Content)
		assert.Equal(t, "sandesh", resp.Metadata.DomainName)
		assert.Equal(t, len("<p>body</p>"), resp.Metadata.ContentLength)
		assert.False(t, resp.Metadata.Cached)
	})

	t.Run("rejects non-http URLs", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		rec := doJSON(t, s, http.MethodPost, "/extract", `{"url": "ftp://example.com/a"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown domain maps to 404", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		s.Extractor = &mock.ArticleExtractor{
			ExtractArticleFn: func(ctx context.Context, req khabar.ExtractRequest) (string, error) {
				return "", khabar.Errorf(khabar.EUNKNOWNDOMAIN, "no configuration registered for domain %q", req.DomainName)
			},
		}

		rec := doJSON(t, s, http.MethodPost, "/extract",
			`{"url": "https://news.example.com/a", "domain_name": "missing"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty content maps to 404", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		s.Extractor = &mock.ArticleExtractor{
			ExtractArticleFn: func(ctx context.Context, req khabar.ExtractRequest) (string, error) {
				return "", nil
			},
		}

		rec := doJSON(t, s, http.MethodPost, "/extract", `{"url": "https://news.example.com/a"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "No content extracted", resp.Error)
	})

	t.Run("internal errors map to 500", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		s.Extractor = &mock.ArticleExtractor{
			ExtractArticleFn: func(ctx context.Context, req khabar.ExtractRequest) (string, error) {
				return "", khabar.Errorf(khabar.EINTERNAL, "browser crashed")
			},
		}

		rec := doJSON(t, s, http.MethodPost, "/extract", `{"url": "https://news.example.com/a"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("second request is served from cache", func(t *testing.T) {
		t.Parallel()

		calls := 0
		s := newTestServer()
		s.Cache = cache.New()
		s.Extractor = &mock.ArticleExtractor{
			ExtractArticleFn: func(ctx context.Context, req khabar.ExtractRequest) (string, error) {
				calls++
				return "<p>body</p>", nil
			},
		}

		rec := doJSON(t, s, http.MethodPost, "/extract", `{"url": "https://news.example.com/a"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, s, http.MethodPost, "/extract", `{"url": "https://news.example.com/a"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Metadata struct {
				Cached bool `json:"cached"`
			} `json:"metadata"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Metadata.Cached)
		assert.Equal(t, 1, calls)
	})
}

func TestServer_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns the generated article", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		s.Generator = &generate.Service{
			Extractor: &mock.ArticleExtractor{
				ExtractArticleFn: func(ctx context.Context, req khabar.ExtractRequest) (string, error) {
					return "<p>source</p>", nil
				},
			},
			OpenAI: &mock.Generator{
				GenerateArticleFn: func(ctx context.Context, keypoints, sourceContext string) (*khabar.GeneratedArticle, error) {
					return &khabar.GeneratedArticle{Title: "t", Content: "<p>c</p>"}, nil
				},
			},
		}

		rec := doJSON(t, s, http.MethodPost, "/generate",
			`{"keypoints": "rain", "source_urls": ["https://news.example.com/a"]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool   `json:"success"`
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "t", resp.Title)
		assert.Equal(t, "<p>c</p>", resp.Content)
	})

	t.Run("requires keypoints", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		s.Generator = &generate.Service{}

		rec := doJSON(t, s, http.MethodPost, "/generate", `{"source_urls": []}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("without a generator returns an error", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		rec := doJSON(t, s, http.MethodPost, "/generate", `{"keypoints": "rain"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_Domains(t *testing.T) {
	t.Parallel()

	t.Run("lists registered domains in order", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		require.NoError(t, khabar.RegisterBuiltins(s.Registry))

		rec := doJSON(t, s, http.MethodGet, "/domains", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool     `json:"success"`
			Count   int      `json:"count"`
			Domains []string `json:"domains"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 4, resp.Count)
		assert.Equal(t, []string{"sandesh", "tv9gujarati", "gujaratsamachar", "aajtak"}, resp.Domains)
	})

	t.Run("include_details adds configuration summaries", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		require.NoError(t, khabar.RegisterBuiltins(s.Registry))

		rec := doJSON(t, s, http.MethodGet, "/domains?include_details=true", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Details []struct {
				DomainName               string `json:"domain_name"`
				ArticleContainerSelector string `json:"article_container_selector"`
				HasLoadMore              bool   `json:"has_load_more"`
				WaitStrategy             string `json:"wait_strategy"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Details, 4)
		assert.Equal(t, "sandesh", resp.Details[0].DomainName)
		assert.True(t, resp.Details[0].HasLoadMore)
		assert.NotEmpty(t, resp.Details[0].ArticleContainerSelector)
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	rec := doJSON(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, khhttp.APIVersion, resp["version"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestServer_Cache(t *testing.T) {
	t.Parallel()

	t.Run("stats report counters", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		s.Cache = cache.New()
		s.Cache.Set("https://news.example.com/a:auto-detected", "<p>x</p>")

		rec := doJSON(t, s, http.MethodGet, "/cache/stats", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Enabled   bool `json:"enabled"`
			CacheSize int  `json:"cache_size"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Enabled)
		assert.Equal(t, 1, resp.CacheSize)
	})

	t.Run("clear empties the cache", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		s.Cache = cache.New()
		s.Cache.Set("https://news.example.com/a:auto-detected", "<p>x</p>")

		rec := doJSON(t, s, http.MethodPost, "/cache/clear", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, s.Cache.Stats().Entries)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "Removed 1 entries")
	})

	t.Run("stats without a cache report disabled", func(t *testing.T) {
		t.Parallel()

		s := newTestServer()
		rec := doJSON(t, s, http.MethodGet, "/cache/stats", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Enabled bool `json:"enabled"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Enabled)
	})
}

func TestServer_CORS(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	req := httptest.NewRequest(http.MethodOptions, "/extract", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
