// Package slog provides logging decorators for khabar service
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/gujnews/khabar"
)

// Ensure LoggingArticleExtractor implements khabar.ArticleExtractor.
var _ khabar.ArticleExtractor = (*LoggingArticleExtractor)(nil)

// LoggingArticleExtractor wraps an ArticleExtractor with request logging.
type LoggingArticleExtractor struct {
	next   khabar.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingArticleExtractor creates a new LoggingArticleExtractor.
func NewLoggingArticleExtractor(next khabar.ArticleExtractor, logger *slog.Logger) *LoggingArticleExtractor {
	return &LoggingArticleExtractor{next: next, logger: logger}
}

// ExtractArticle delegates to the wrapped extractor and logs the outcome.
func (e *LoggingArticleExtractor) ExtractArticle(ctx context.Context, req khabar.ExtractRequest) (string, error) {
	begin := time.Now()
	content, err := e.next.ExtractArticle(ctx, req)

	attrs := []any{
		"url", req.URL,
		"domain", req.DomainName,
		"bytes", len(content),
		"duration", time.Since(begin),
	}
	switch {
	case err != nil:
		e.logger.Error("article extraction failed", append(attrs, "err", err)...)
	case content == "":
		e.logger.Info("article extraction found no content", attrs...)
	default:
		e.logger.Info("article extraction", attrs...)
	}

	return content, err
}
