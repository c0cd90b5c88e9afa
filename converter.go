package khabar

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown. The input
	// should be clean markup (e.g., an extraction result); the output is
	// used as LLM grounding context.
	Convert(html string) (string, error)
}
