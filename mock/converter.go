package mock

import "github.com/gujnews/khabar"

var _ khabar.Converter = (*Converter)(nil)

// Converter is a mock implementation of khabar.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
