package generate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gujnews/khabar"
)

// Defaults substituted when the model returns JSON with a missing field.
const (
	defaultTitle   = "સમાચાર શીર્ષક"
	defaultContent = "<p>સામગ્રી જનરેટ કરવામાં નિષ્ફળ.</p>"
	rawTitle       = "જનરેટેડ આર્ટિકલ (Raw Output)"
)

// Field patterns for the regex fallback. The group matches a JSON
// string body including escaped quotes.
var (
	titlePattern   = regexp.MustCompile(`(?s)"title"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	contentPattern = regexp.MustCompile(`(?s)"content"\s*:\s*"((?:[^"\\]|\\.)*)"`)
)

// ParseResponse turns raw model output into a GeneratedArticle. Models
// routinely wrap JSON in markdown fences or emit slightly broken JSON,
// so parsing is lenient: strict JSON first, then a regex salvage of the
// title and content fields, then the raw text preformatted. It never
// fails; a response that resists parsing still produces an article with
// a warning attached.
func ParseResponse(raw string) *khabar.GeneratedArticle {
	clean := stripFences(raw)

	var parsed struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(clean), &parsed); err == nil {
		if parsed.Title == "" {
			parsed.Title = defaultTitle
		}
		if parsed.Content == "" {
			parsed.Content = defaultContent
		}
		return &khabar.GeneratedArticle{Title: parsed.Title, Content: parsed.Content}
	}

	if article, ok := salvageFields(clean); ok {
		return article
	}

	return &khabar.GeneratedArticle{
		Title:   rawTitle,
		Content: fmt.Sprintf("<pre>%s</pre>", clean),
		Warning: "JSON Parse Error",
	}
}

// stripFences removes a surrounding markdown code block if present.
func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// salvageFields recovers the title and content fields from malformed
// JSON by matching them directly.
func salvageFields(clean string) (*khabar.GeneratedArticle, bool) {
	titleMatch := titlePattern.FindStringSubmatch(clean)
	contentMatch := contentPattern.FindStringSubmatch(clean)
	if titleMatch == nil && contentMatch == nil {
		return nil, false
	}

	title := "શીર્ષક ઉપલબ્ધ નથી"
	if titleMatch != nil {
		title = strings.TrimSpace(unescape(titleMatch[1]))
	}

	var content string
	if contentMatch != nil {
		content = strings.TrimSpace(strings.ReplaceAll(unescape(contentMatch[1]), "\\n", " "))
	}
	if content == "" {
		// The content field resisted matching; use whatever remains of
		// the response once the title is cut out.
		fallback := clean
		if titleMatch != nil {
			fallback = strings.Replace(fallback, titleMatch[0], "", 1)
		}
		content = strings.Trim(fallback, " {}\",\n")
	}

	if !strings.HasPrefix(content, "<p") {
		var sb strings.Builder
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			fmt.Fprintf(&sb, "<p>%s</p>", line)
		}
		content = sb.String()
	}

	return &khabar.GeneratedArticle{
		Title:   title,
		Content: content,
		Warning: "Parsed via Regex",
	}, true
}

func unescape(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}
