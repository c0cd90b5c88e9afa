package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gujnews/khabar"
	"github.com/gujnews/khabar/cache"
	"github.com/gujnews/khabar/extract"
	khgemini "github.com/gujnews/khabar/gemini"
	"github.com/gujnews/khabar/generate"
	"github.com/gujnews/khabar/goquery"
	"github.com/gujnews/khabar/htmltomarkdown"
	khhttp "github.com/gujnews/khabar/http"
	khopenai "github.com/gujnews/khabar/openai"
	"github.com/gujnews/khabar/rod"
	khslog "github.com/gujnews/khabar/slog"
	"github.com/gujnews/khabar/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Renderer owns the browser process. Set during Run for commands
	// that render pages.
	Renderer *rod.Renderer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Renderer != nil {
		return m.Renderer.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("khabar"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'khabar --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	deps.Logger = logger

	registry := khabar.NewRegistry()
	if err := khabar.RegisterBuiltins(registry); err != nil {
		return fmt.Errorf("failed to register builtin domains: %w", err)
	}
	deps.Registry = registry

	// Wire the browser-backed extraction pipeline only for commands
	// that render pages.
	if cmd == "extract" || cmd == "generate" || cmd == "serve" {
		rps := 1.0
		if cmd == "serve" {
			rps = cli.Serve.RPS
		}

		renderer := rod.NewRenderer(rod.NewBrowserManager(), rod.WithLogger(logger))
		m.Renderer = renderer
		defer m.Close()

		service := &extract.Service{
			Registry: registry,
			Renderer: rod.NewLoggingRenderer(renderer, logger),
			Engine:   goquery.NewExtractor(),
			Fetcher:  khhttp.NewFetcher(),
			Generic:  trafilatura.NewExtractor(),
			Limiter:  extract.NewDomainLimiter(rps),
			Logger:   logger,
		}
		deps.Extractor = khslog.NewLoggingArticleExtractor(service, logger)
	}

	if cmd == "generate" || cmd == "serve" {
		gen := &generate.Service{
			Extractor: deps.Extractor,
			Converter: htmltomarkdown.NewConverter(),
			OpenAI: khopenai.NewGenerator(
				khopenai.NewClient(os.Getenv("OPENAI_API_KEY"), llmBaseURL()),
				os.Getenv("LLM_MODEL"),
			),
			Logger: logger,
		}
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			gen.Gemini = khgemini.NewGenerator(client, "")
		}
		deps.Generator = gen
	}

	if cmd == "serve" {
		deps.Cache = cache.New()
	}

	return kongCtx.Run(deps)
}

// llmBaseURL returns the OpenAI-compatible endpoint, defaulting to a
// local Ollama instance.
func llmBaseURL() string {
	if url := os.Getenv("LLM_BASE_URL"); url != "" {
		return url
	}
	return khopenai.DefaultBaseURL
}
