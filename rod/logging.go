package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/gujnews/khabar"
)

// Ensure LoggingRenderer implements khabar.Renderer.
var _ khabar.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   khabar.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next khabar.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render logs the render and delegates to the wrapped renderer.
func (r *LoggingRenderer) Render(ctx context.Context, url string, config *khabar.DomainConfig) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render",
			"url", url,
			"domain", config.DomainName,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, url, config)
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}
