// Package trafilatura provides the generic fallback extractor on top of
// go-trafilatura's main-content density detection.
package trafilatura

import (
	"strings"

	"github.com/gujnews/khabar"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements khabar.GenericExtractor at compile time.
var _ khabar.GenericExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to strip boilerplate from arbitrary
// pages. It knows nothing about domain configurations; it is the
// best-effort last resort when no configured path produced content.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractGeneric runs boilerplate removal over the raw HTML and returns
// the detected main content with each paragraph wrapped in a minimal
// paragraph tag. Returns an empty string when nothing is detected.
func (e *Extractor) ExtractGeneric(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", khabar.Errorf(khabar.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	var blocks []khabar.Block
	for _, line := range strings.Split(result.ContentText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		blocks = append(blocks, khabar.Block{Tag: "p", Text: line})
	}

	return khabar.RenderBlocks(blocks), nil
}
