package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/gujnews/khabar"
	"github.com/gujnews/khabar/cache"
	"github.com/gujnews/khabar/generate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Registry  *khabar.Registry
	Extractor khabar.ArticleExtractor
	Generator *generate.Service
	Cache     *cache.Cache
	Logger    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract  ExtractCmd  `cmd:"" help:"Extract article content from a URL"`
	Domains  DomainsCmd  `cmd:"" help:"List registered domain configurations"`
	Generate GenerateCmd `cmd:"" help:"Generate a news article from keypoints and source URLs"`
	Serve    ServeCmd    `cmd:"" help:"Run the JSON API server"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL    string `arg:"" help:"Article URL"`
	Domain string `short:"d" help:"Use a specific domain configuration instead of URL detection"`
}

// DomainsCmd is the "domains" subcommand.
type DomainsCmd struct {
	Details bool `help:"Show configuration details for each domain"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Keypoints string   `arg:"" help:"Key points for the article"`
	Source    []string `short:"s" name:"source" help:"Source URL to scrape (repeatable)"`
	Model     string   `short:"m" help:"Model name (names containing 'gemini' use the Gemini API)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8000" help:"Listen address"`
	RPS  float64 `name:"rps" default:"1.0" help:"Per-domain requests per second"`
}
