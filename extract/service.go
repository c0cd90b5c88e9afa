// Package extract provides the article extraction façade. It resolves a
// request to a domain configuration, drives the renderer and the
// extraction engine, and degrades to generic fallback extraction when
// the configured path fails.
package extract

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/gujnews/khabar"
)

// Ensure Service implements khabar.ArticleExtractor at compile time.
var _ khabar.ArticleExtractor = (*Service)(nil)

// Service is the single entry point for article extraction.
//
// The zero value is not usable; Registry, Renderer and Engine must be
// set. Fetcher and Generic enable the fallback path, Limiter and Logger
// are optional.
type Service struct {
	Registry *khabar.Registry
	Renderer khabar.Renderer
	Engine   khabar.Extractor

	// Fetcher and Generic serve the fallback path: a plain fetch plus
	// boilerplate-stripping extraction, used when no configuration
	// matches or the configured path produced nothing.
	Fetcher khabar.Fetcher
	Generic khabar.GenericExtractor

	// Limiter, if set, rate-limits outbound renders per domain.
	Limiter khabar.DomainLimiter

	Logger *slog.Logger
}

// ExtractArticle resolves the request to a configuration and extracts
// article markup.
//
// Resolution order: an explicit Config wins outright; an explicit
// DomainName must resolve or the call fails with EUNKNOWNDOMAIN; else
// the URL host is looked up, and unregistered hosts go straight to the
// generic fallback since auto-detection failure is expected for
// unconfigured sites. Render and engine failures degrade to the
// fallback rather than propagating, so extraction over many URLs never
// aborts on one bad site. An empty result with nil error means no
// content was found anywhere.
func (s *Service) ExtractArticle(ctx context.Context, req khabar.ExtractRequest) (string, error) {
	config := req.Config
	if config == nil && req.DomainName != "" {
		config = s.Registry.ResolveByName(req.DomainName)
		if config == nil {
			return "", khabar.Errorf(khabar.EUNKNOWNDOMAIN, "no configuration registered for domain %q", req.DomainName)
		}
	}
	if config == nil {
		config = s.Registry.ResolveByURL(req.URL)
		if config == nil {
			return s.fallback(ctx, req.URL), nil
		}
	}

	if err := s.waitLimiter(ctx, req.URL); err != nil {
		return "", err
	}

	html, err := s.Renderer.Render(ctx, req.URL, config)
	if err != nil {
		s.logger().Warn("render failed, degrading to generic fallback",
			"url", req.URL,
			"domain", config.DomainName,
			"err", err,
		)
		return s.fallback(ctx, req.URL), nil
	}

	content, err := s.Engine.Extract(html, config)
	if err != nil {
		// A single malformed page must not fail an extraction batch.
		s.logger().Warn("engine failed, degrading to generic fallback",
			"url", req.URL,
			"domain", config.DomainName,
			"err", err,
		)
		return s.fallback(ctx, req.URL), nil
	}
	if content == "" {
		return s.fallback(ctx, req.URL), nil
	}

	return content, nil
}

// fallback fetches the page without a browser and runs the generic
// extractor. Every failure on this path resolves to "no content".
func (s *Service) fallback(ctx context.Context, rawURL string) string {
	if s.Fetcher == nil || s.Generic == nil {
		return ""
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		s.logger().Debug("fallback fetch failed", "url", rawURL, "err", err)
		return ""
	}

	content, err := s.Generic.ExtractGeneric(html)
	if err != nil {
		s.logger().Debug("fallback extraction failed", "url", rawURL, "err", err)
		return ""
	}
	return content
}

func (s *Service) waitLimiter(ctx context.Context, rawURL string) error {
	if s.Limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return s.Limiter.Wait(ctx, u.Hostname())
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
