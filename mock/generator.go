package mock

import (
	"context"

	"github.com/gujnews/khabar"
)

var _ khabar.Generator = (*Generator)(nil)

// Generator is a mock implementation of khabar.Generator.
type Generator struct {
	GenerateArticleFn func(ctx context.Context, keypoints, sourceContext string) (*khabar.GeneratedArticle, error)
}

func (g *Generator) GenerateArticle(ctx context.Context, keypoints, sourceContext string) (*khabar.GeneratedArticle, error) {
	return g.GenerateArticleFn(ctx, keypoints, sourceContext)
}
