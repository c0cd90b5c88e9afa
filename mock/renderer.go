package mock

import (
	"context"

	"github.com/gujnews/khabar"
)

var _ khabar.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of khabar.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string, config *khabar.DomainConfig) (string, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url string, config *khabar.DomainConfig) (string, error) {
	return r.RenderFn(ctx, url, config)
}

func (r *Renderer) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}
