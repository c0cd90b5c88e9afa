package khabar

import "context"

// ExtractRequest identifies what to extract and how to resolve the
// configuration. Resolution order: Config wins outright; else DomainName
// is resolved by name and fails with EUNKNOWNDOMAIN when unregistered;
// else the URL host is resolved, falling back to generic extraction for
// unregistered hosts.
type ExtractRequest struct {
	// URL of the article to extract.
	URL string

	// Config, if set, is used as-is without registry resolution.
	Config *DomainConfig

	// DomainName, if set, selects a registered configuration by name.
	DomainName string
}

// ArticleExtractor is the single entry point for article extraction.
type ArticleExtractor interface {
	// ExtractArticle extracts normalized article markup for the request.
	// An empty string with a nil error means no content was found on
	// either the configured or the fallback path. The only hard failure
	// is EUNKNOWNDOMAIN for an explicitly named, unregistered domain;
	// render failures degrade to the generic fallback instead of
	// propagating.
	ExtractArticle(ctx context.Context, req ExtractRequest) (string, error)
}
