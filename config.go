package khabar

import (
	"strings"
	"time"
)

// WaitUntil selects the page-readiness criterion the renderer waits for
// before considering navigation complete.
type WaitUntil string

// Page readiness criteria.
const (
	WaitDOMContentLoaded WaitUntil = "domcontentloaded"
	WaitLoad             WaitUntil = "load"
	WaitNetworkIdle      WaitUntil = "networkidle"
	WaitCommit           WaitUntil = "commit"
)

// Default timeouts for domain configurations.
const (
	DefaultWaitTimeout     = 15 * time.Second
	DefaultClickTimeout    = 3 * time.Second
	DefaultPageLoadTimeout = 60 * time.Second
)

// DefaultMinTextLength is the minimum harvested block length when a
// configuration does not set one.
const DefaultMinTextLength = 25

// DomainConfig is the immutable rule set for extracting articles from
// one news site. A config is registered once and shared across requests;
// callers must not mutate it after registration.
type DomainConfig struct {
	// DomainName uniquely identifies this configuration (e.g. "sandesh").
	DomainName string

	// ArticleContainerSelector locates the primary article container in
	// the rendered DOM.
	ArticleContainerSelector string

	// ArticleIDPattern is an optional class-name prefix used to find
	// sibling blocks of the same story (a story split across multiple
	// containers sharing a generated id-class). Empty disables it.
	ArticleIDPattern string

	// LoadMoreSelector is an optional CSS or XPath ("//" prefix)
	// selector for a "load more" trigger. Empty means no interaction.
	LoadMoreSelector string

	// AllowedTags lists element tags eligible for text extraction.
	AllowedTags []string

	// NoiseKeywords are case-insensitive substrings that mark a text
	// block as unwanted.
	NoiseKeywords []string

	// ElementsToRemove are selectors whose subtrees are deleted from the
	// document before harvesting, in listed order.
	ElementsToRemove []string

	// MinTextLength is the minimum rune count (after trimming) for a
	// candidate block to be retained.
	MinTextLength int

	// WaitTimeout bounds the wait for the article container to appear.
	WaitTimeout time.Duration

	// ClickTimeout bounds the best-effort load-more click.
	ClickTimeout time.Duration

	// PageLoadTimeout bounds navigation.
	PageLoadTimeout time.Duration

	// WaitUntil is the page-readiness criterion for navigation.
	WaitUntil WaitUntil
}

// DefaultAllowedTags returns the tag set used when a configuration does
// not specify one.
func DefaultAllowedTags() []string {
	return []string{"h1", "h2", "h3", "h4", "h5", "h6", "p", "b", "strong", "li"}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *DomainConfig) Validate() error {
	if c.DomainName == "" {
		return Errorf(EINVALID, "domain name required")
	}
	if c.ArticleContainerSelector == "" {
		return Errorf(EINVALID, "article container selector required")
	}
	if c.MinTextLength < 0 {
		return Errorf(EINVALID, "min text length must be non-negative")
	}
	if c.WaitTimeout <= 0 || c.ClickTimeout <= 0 || c.PageLoadTimeout <= 0 {
		return Errorf(EINVALID, "timeouts must be positive")
	}
	switch c.WaitUntil {
	case WaitDOMContentLoaded, WaitLoad, WaitNetworkIdle, WaitCommit:
	default:
		return Errorf(EINVALID, "unknown wait criterion %q", c.WaitUntil)
	}
	return nil
}

// AllowsTag reports whether tag is eligible for extraction.
func (c *DomainConfig) AllowsTag(tag string) bool {
	for _, t := range c.AllowedTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// IsNoise reports whether text contains any of the keywords,
// case-insensitively. A nil or empty keyword list matches nothing.
func IsNoise(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	t := strings.ToLower(text)
	for _, k := range keywords {
		if k == "" {
			continue
		}
		if strings.Contains(t, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
