package khabar

import (
	"fmt"
	"strings"
)

// Block is one harvested content unit: an allowed tag and its trimmed
// visible text.
type Block struct {
	Tag  string
	Text string
}

// RenderBlocks renders harvested blocks as a flat markup fragment,
// one <tag>text</tag> per block separated by blank lines. The fragment
// carries no attributes and is safe for any downstream renderer.
func RenderBlocks(blocks []Block) string {
	if len(blocks) == 0 {
		return ""
	}
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, fmt.Sprintf("<%s>%s</%s>", b.Tag, b.Text, b.Tag))
	}
	return strings.Join(parts, "\n\n")
}

// Extractor turns rendered HTML plus a domain configuration into
// normalized article markup. An empty result with a nil error means the
// configured path found no content; the caller decides whether to fall
// back. Extractors never raise for "no content".
type Extractor interface {
	Extract(html string, config *DomainConfig) (string, error)
}

// GenericExtractor is the last-resort content extractor for pages with
// no usable configuration. It runs a general-purpose boilerplate-removal
// heuristic and intentionally ignores allowed-tag and noise-keyword
// rules.
type GenericExtractor interface {
	ExtractGeneric(html string) (string, error)
}
