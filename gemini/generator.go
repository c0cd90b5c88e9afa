// Package gemini implements article generation using Google Gemini.
package gemini

import (
	"context"

	"github.com/gujnews/khabar"
	"github.com/gujnews/khabar/generate"
	"google.golang.org/genai"
)

// DefaultModel is tried first; fallbackModels are attempted in order
// when the requested model is unavailable or over quota.
const DefaultModel = "gemini-2.5-flash"

var fallbackModels = []string{"gemini-2.5-flash", "gemini-2.0-flash", "gemini-2.5-pro"}

// maxContextRunes caps source material in the prompt. Gemini context
// windows are large, so the cap is generous.
const maxContextRunes = 20000

// Ensure Generator implements khabar.Generator at compile time.
var _ khabar.Generator = (*Generator)(nil)

// Generator implements khabar.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a Generator that prompts the given model first.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// GenerateArticle produces a Gujarati news report from keypoints and
// scraped source material. If the requested model fails, the known
// fallback models are tried in order before giving up.
func (g *Generator) GenerateArticle(ctx context.Context, keypoints, sourceContext string) (*khabar.GeneratedArticle, error) {
	if keypoints == "" {
		return nil, khabar.Errorf(khabar.EINVALID, "keypoints required")
	}

	sourceContext = generate.TruncateContext(sourceContext, maxContextRunes)
	prompt := generate.BuildUserPrompt(keypoints, sourceContext)
	config := BuildConfig()

	text, err := g.generateWith(ctx, g.model, prompt, config)
	if err == nil {
		return generate.ParseResponse(text), nil
	}
	firstErr := err

	for _, model := range fallbackModels {
		if model == g.model {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		text, err = g.generateWith(ctx, model, prompt, config)
		if err == nil {
			return generate.ParseResponse(text), nil
		}
	}

	return nil, khabar.Errorf(khabar.EINTERNAL, "gemini generation failed: %v", firstErr)
}

func (g *Generator) generateWith(ctx context.Context, model, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", khabar.Errorf(khabar.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The JSON response MIME type keeps the model from wrapping its output
// in prose.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: generate.SystemPrompt}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}
