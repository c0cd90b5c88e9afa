// Package goquery implements the configured extraction engine on top of
// CSS-selector DOM queries.
package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/gujnews/khabar"
	"golang.org/x/net/html"
)

// Ensure Extractor implements khabar.Extractor at compile time.
var _ khabar.Extractor = (*Extractor)(nil)

// noiseParentTextLimit bounds the size of a container removed for
// containing a noise keyword. Larger ancestors that merely mention a
// noise phrase once are structural and must survive.
const noiseParentTextLimit = 200

// relatedClassPattern marks related-content widgets whose link-list
// headings masquerade as article structure.
var relatedClassPattern = regexp.MustCompile(`related|also`)

// secondaryHeadings are heading levels that related-content widgets use
// for their link lists.
var secondaryHeadings = map[string]bool{"h3": true, "h4": true}

// smallContainers are the tags eligible for noise-keyword subtree
// removal. Removing anything else risks deleting article structure.
var smallContainers = map[string]bool{
	"div":    true,
	"span":   true,
	"aside":  true,
	"footer": true,
	"nav":    true,
}

// Extractor harvests article blocks from rendered HTML per a domain
// configuration. It is stateless and safe for concurrent use; the
// per-request dedup set lives on the stack of each Extract call.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML, cleans it per the configuration, and returns
// the harvested blocks as flat markup. An empty result with a nil error
// means the configured container was missing, empty, or produced no
// surviving candidates.
func (e *Extractor) Extract(rawHTML string, config *khabar.DomainConfig) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", khabar.Errorf(khabar.EINVALID, "parse HTML: %v", err)
	}

	first := doc.Find(config.ArticleContainerSelector).First()
	if first.Length() == 0 || strings.TrimSpace(first.Text()) == "" {
		return "", nil
	}

	// A story split across sibling containers shares a generated
	// id-class; expand the block set to every container carrying it.
	blocks := first
	if config.ArticleIDPattern != "" {
		if idClass := classWithPrefix(first, config.ArticleIDPattern); idClass != "" {
			blocks = doc.Find("div.story." + idClass)
		}
	}

	// Structural removals apply to the whole document, not just the
	// block set, and run before any text-based filtering.
	for _, selector := range config.ElementsToRemove {
		doc.Find(selector).Remove()
	}

	removeNoiseContainers(doc, config.NoiseKeywords)

	seen := make(map[string]struct{})
	var out []khabar.Block
	blocks.Each(func(_ int, block *goquery.Selection) {
		for _, n := range block.Nodes {
			// Remove only detaches nodes; a block whose ancestor was
			// removed still holds its subtree and must not be harvested.
			if !attached(n) {
				continue
			}
			harvest(n, config, seen, &out)
		}
	})

	return khabar.RenderBlocks(out), nil
}

// attached reports whether n is still reachable from the document root.
func attached(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p.Type == html.DocumentNode {
			return true
		}
	}
	return false
}

// harvest walks n's descendants depth-first in document order, emitting
// every allowed-tag element that survives the filters.
func harvest(n *html.Node, config *khabar.DomainConfig, seen map[string]struct{}, out *[]khabar.Block) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if config.AllowsTag(c.Data) {
			consider(c, config, seen, out)
		}
		harvest(c, config, seen, out)
	}
}

// consider applies the candidate filters to a single allowed-tag element.
func consider(n *html.Node, config *khabar.DomainConfig, seen map[string]struct{}, out *[]khabar.Block) {
	text := strippedText(n)

	if utf8.RuneCountInString(text) < config.MinTextLength {
		return
	}
	if khabar.IsNoise(text, config.NoiseKeywords) {
		return
	}
	// Link-list headings inside related-content widgets are not article
	// structure.
	if secondaryHeadings[n.Data] && hasRelatedAncestor(n) {
		return
	}
	// The same teaser text can appear in multiple DOM locations.
	if _, ok := seen[text]; ok {
		return
	}
	seen[text] = struct{}{}

	*out = append(*out, khabar.Block{Tag: n.Data, Text: text})
}

// removeNoiseContainers deletes small containers whose text mentions a
// noise keyword. The size bound keeps the rule conservative: a large
// structural ancestor that happens to mention a noise phrase stays.
func removeNoiseContainers(doc *goquery.Document, keywords []string) {
	if len(keywords) == 0 {
		return
	}

	// Collect first, remove after, so removal does not disturb the walk.
	marked := make(map[*html.Node]bool)
	var victims []*html.Node

	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			if !khabar.IsNoise(n.Data, keywords) {
				return
			}
			parent := n.Parent
			if parent == nil || parent.Type != html.ElementNode || !smallContainers[parent.Data] {
				return
			}
			if marked[parent] {
				return
			}
			if utf8.RuneCountInString(strippedText(parent)) < noiseParentTextLimit {
				marked[parent] = true
				victims = append(victims, parent)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for _, root := range doc.Selection.Nodes {
		visit(root)
	}

	for _, v := range victims {
		if v.Parent != nil {
			v.Parent.RemoveChild(v)
		}
	}
}

// strippedText returns the element's visible text with each text node
// trimmed and the pieces concatenated without separators.
func strippedText(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			sb.WriteString(strings.TrimSpace(cur.Data))
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

// classWithPrefix returns the first class on the selection's first node
// that starts with prefix, or "".
func classWithPrefix(sel *goquery.Selection, prefix string) string {
	for _, class := range strings.Fields(sel.AttrOr("class", "")) {
		if strings.HasPrefix(class, prefix) {
			return class
		}
	}
	return ""
}

// hasRelatedAncestor reports whether any ancestor's class attribute
// matches the related-content pattern.
func hasRelatedAncestor(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		for _, attr := range p.Attr {
			if attr.Key == "class" && relatedClassPattern.MatchString(attr.Val) {
				return true
			}
		}
	}
	return false
}
