// Package generate turns keypoints and source article URLs into a
// finished Gujarati news report via an LLM.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gujnews/khabar"
	"golang.org/x/sync/errgroup"
)

// DefaultScrapeConcurrency bounds how many source URLs are scraped at
// once when building model context.
const DefaultScrapeConcurrency = 3

// Service orchestrates article generation: it scrapes the source URLs,
// converts them into model context, and dispatches to a provider based
// on the requested model name.
type Service struct {
	Extractor khabar.ArticleExtractor

	// Converter, if set, turns extracted HTML into Markdown before it
	// enters the prompt. Without it the raw HTML is used.
	Converter khabar.Converter

	// OpenAI serves OpenAI-compatible models including local Ollama.
	// Gemini serves Google models; it is picked whenever the requested
	// model name contains "gemini".
	OpenAI khabar.Generator
	Gemini khabar.Generator

	Logger *slog.Logger
}

// GenerateFromURLs scrapes the source URLs, assembles the combined
// context, and generates an article with the provider matching the
// model name. Individual scrape failures are logged and skipped, so a
// dead source URL degrades the context instead of failing the request.
func (s *Service) GenerateFromURLs(ctx context.Context, keypoints string, sourceURLs []string, model string) (*khabar.GeneratedArticle, error) {
	gen := s.OpenAI
	if strings.Contains(strings.ToLower(model), "gemini") {
		gen = s.Gemini
	}
	if gen == nil {
		return nil, khabar.Errorf(khabar.EINVALID, "no generator configured for model %q", model)
	}

	sourceContext := s.buildContext(ctx, sourceURLs)
	return gen.GenerateArticle(ctx, keypoints, sourceContext)
}

// buildContext scrapes every source URL concurrently and joins the
// results in input order, each prefixed with its origin.
func (s *Service) buildContext(ctx context.Context, sourceURLs []string) string {
	sections := make([]string, len(sourceURLs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultScrapeConcurrency)
	for i, url := range sourceURLs {
		g.Go(func() error {
			content, err := s.Extractor.ExtractArticle(gctx, khabar.ExtractRequest{URL: url})
			if err != nil {
				s.logger().Warn("failed to scrape source", "url", url, "err", err)
				return nil
			}
			if content == "" {
				s.logger().Warn("no content found in source", "url", url)
				return nil
			}
			sections[i] = fmt.Sprintf("Source: %s\n%s", url, s.toMarkdown(content))
			return nil
		})
	}
	g.Wait()

	var nonEmpty []string
	for _, section := range sections {
		if section != "" {
			nonEmpty = append(nonEmpty, section)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

func (s *Service) toMarkdown(html string) string {
	if s.Converter == nil {
		return html
	}
	md, err := s.Converter.Convert(html)
	if err != nil {
		return html
	}
	return md
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
