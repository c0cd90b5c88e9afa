package mock

import (
	"context"

	"github.com/gujnews/khabar"
)

var _ khabar.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of khabar.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
