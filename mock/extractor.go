package mock

import "github.com/gujnews/khabar"

var _ khabar.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of khabar.Extractor.
type Extractor struct {
	ExtractFn func(html string, config *khabar.DomainConfig) (string, error)
}

func (e *Extractor) Extract(html string, config *khabar.DomainConfig) (string, error) {
	return e.ExtractFn(html, config)
}

var _ khabar.GenericExtractor = (*GenericExtractor)(nil)

// GenericExtractor is a mock implementation of khabar.GenericExtractor.
type GenericExtractor struct {
	ExtractGenericFn func(html string) (string, error)
}

func (e *GenericExtractor) ExtractGeneric(html string) (string, error) {
	return e.ExtractGenericFn(html)
}
