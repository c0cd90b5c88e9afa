// Package http provides the plain-HTTP fetcher used by the generic
// fallback path and the JSON API server for the extraction service.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gujnews/khabar"
)

// DefaultFetchTimeout is the default timeout for fallback HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// defaultUserAgent is sent with fallback fetches; some news sites refuse
// requests with Go's default agent string.
const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

// Ensure Fetcher implements khabar.Fetcher at compile time.
var _ khabar.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML over plain HTTP without browser rendering.
// It is used when a page has no configuration or the render failed.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new plain-HTTP Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", khabar.Errorf(khabar.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
