package khabar

import "context"

// Fetcher retrieves raw HTML over plain HTTP, without browser rendering.
// The generic fallback path uses it when the configured render fails or
// no configuration exists for a URL.
type Fetcher interface {
	// Fetch retrieves the document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
