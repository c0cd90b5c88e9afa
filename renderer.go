package khabar

import "context"

// Renderer produces fully-rendered HTML for a URL under a domain
// configuration. Implementations use browser automation to simulate a
// human-loaded page: they honor the configuration's readiness criterion
// and timeouts, and perform the optional load-more interaction.
type Renderer interface {
	// Render navigates to the URL in an isolated browsing context and
	// returns the document HTML as currently rendered. The context
	// controls cancellation on top of the configuration's timeouts.
	// The browsing context is released on every exit path.
	Render(ctx context.Context, url string, config *DomainConfig) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}
