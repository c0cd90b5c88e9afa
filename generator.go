package khabar

import "context"

// GeneratedArticle is the output of LLM article generation.
type GeneratedArticle struct {
	Title   string `json:"title"`
	Content string `json:"content"`

	// Warning notes degraded parsing (e.g. the model's response needed
	// regex repair instead of clean JSON decoding). Empty on the happy
	// path.
	Warning string `json:"warning,omitempty"`
}

// Generator writes a news article from keypoints grounded in scraped
// source material.
type Generator interface {
	// GenerateArticle produces an article from the keypoints and the
	// combined source context. Implementations enforce the newsroom
	// editorial format through their prompt.
	GenerateArticle(ctx context.Context, keypoints, sourceContext string) (*GeneratedArticle, error)
}
