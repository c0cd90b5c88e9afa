// Package openai implements article generation against OpenAI-compatible
// chat APIs, including local Ollama instances.
package openai

import (
	"context"

	"github.com/gujnews/khabar"
	"github.com/gujnews/khabar/generate"
	openai "github.com/sashabaranov/go-openai"
)

// Generation parameters for the newsroom prompt. The context cap is in
// runes; small local models have tight context windows.
const (
	DefaultModel    = "llama3"
	DefaultBaseURL  = "http://localhost:11434/v1"
	maxContextRunes = 3000
	temperature     = 0.7
	maxTokens       = 800
)

// Client is the minimal chat-completion surface the generator needs.
// Any OpenAI-compatible backend can be adapted to it.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Ensure Generator implements khabar.Generator at compile time.
var _ khabar.Generator = (*Generator)(nil)

// Generator implements khabar.Generator using an OpenAI-compatible chat
// API.
type Generator struct {
	client Client
	model  string
}

// NewGenerator creates a Generator that prompts the given model.
func NewGenerator(client Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// NewClient builds an OpenAI-compatible client. An empty baseURL keeps
// the hosted OpenAI endpoint; point it at an Ollama /v1 URL for local
// models, where the API key is ignored but must be non-empty.
func NewClient(apiKey, baseURL string) *openai.Client {
	if apiKey == "" {
		apiKey = "ollama"
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// GenerateArticle produces a Gujarati news report from keypoints and
// scraped source material.
func (g *Generator) GenerateArticle(ctx context.Context, keypoints, sourceContext string) (*khabar.GeneratedArticle, error) {
	if keypoints == "" {
		return nil, khabar.Errorf(khabar.EINVALID, "keypoints required")
	}

	sourceContext = generate.TruncateContext(sourceContext, maxContextRunes)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: generate.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: generate.BuildUserPrompt(keypoints, sourceContext)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, khabar.Errorf(khabar.EINTERNAL, "chat completion failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, khabar.Errorf(khabar.EINTERNAL, "chat completion returned no choices")
	}

	return generate.ParseResponse(resp.Choices[0].Message.Content), nil
}
