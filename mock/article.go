package mock

import (
	"context"

	"github.com/gujnews/khabar"
)

var _ khabar.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of khabar.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(ctx context.Context, req khabar.ExtractRequest) (string, error)
}

func (e *ArticleExtractor) ExtractArticle(ctx context.Context, req khabar.ExtractRequest) (string, error) {
	return e.ExtractArticleFn(ctx, req)
}
