package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gujnews/khabar"
	"github.com/gujnews/khabar/cache"
	"github.com/gujnews/khabar/generate"
	"golang.org/x/sync/semaphore"
)

// APIVersion is reported by the health endpoint.
const APIVersion = "1.1.0"

// DefaultMaxConcurrentExtractions bounds how many requests may drive
// the browser at once.
const DefaultMaxConcurrentExtractions = 4

// Server exposes article extraction and generation over a JSON API.
type Server struct {
	server *http.Server

	Addr string

	Extractor khabar.ArticleExtractor
	Registry  *khabar.Registry

	// Generator is optional; without it POST /generate returns an
	// error response.
	Generator *generate.Service

	// Cache is optional; without it every extraction hits the browser.
	Cache *cache.Cache

	Logger *slog.Logger

	sem *semaphore.Weighted
}

// NewServer creates a Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{},
		sem:    semaphore.NewWeighted(DefaultMaxConcurrentExtractions),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /domains", s.handleDomains)
	mux.HandleFunc("GET /cache/stats", s.handleCacheStats)
	mux.HandleFunc("POST /cache/clear", s.handleCacheClear)
	mux.HandleFunc("POST /extract", s.handleExtract)
	mux.HandleFunc("POST /generate", s.handleGenerate)
	s.server.Handler = cors(mux)

	return s
}

// Open begins listening on Addr. It returns once the listener is bound;
// serving continues on a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger().Error("http server", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for use in tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// cors allows browser UIs hosted elsewhere to call the API.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type extractRequest struct {
	URL        string `json:"url"`
	DomainName string `json:"domain_name,omitempty"`
}

type extractMetadata struct {
	URL           string `json:"url"`
	DomainName    string `json:"domain_name"`
	ExtractedAt   string `json:"extracted_at"`
	ContentLength int    `json:"content_length"`
	Cached        bool   `json:"cached"`
}

type extractResponse struct {
	Success  bool            `json:"success"`
	Content  string          `json:"content"`
	Metadata extractMetadata `json:"metadata"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		writeError(w, http.StatusBadRequest, "Invalid URL", "URL must start with http:// or https://")
		return
	}

	domainLabel := req.DomainName
	if domainLabel == "" {
		domainLabel = "auto-detected"
	}

	cacheKey := fmt.Sprintf("%s:%s", req.URL, domainLabel)
	if s.Cache != nil {
		if content, ok := s.Cache.Get(cacheKey); ok {
			writeJSON(w, http.StatusOK, extractResponse{
				Success: true,
				Content: content,
				Metadata: extractMetadata{
					URL:           req.URL,
					DomainName:    domainLabel,
					ExtractedAt:   time.Now().Format(time.RFC3339),
					ContentLength: len(content),
					Cached:        true,
				},
			})
			return
		}
	}

	if err := s.sem.Acquire(r.Context(), 1); err != nil {
		writeError(w, http.StatusServiceUnavailable, "Server busy", err.Error())
		return
	}
	content, err := s.Extractor.ExtractArticle(r.Context(), khabar.ExtractRequest{
		URL:        req.URL,
		DomainName: req.DomainName,
	})
	s.sem.Release(1)

	if err != nil {
		switch khabar.ErrorCode(err) {
		case khabar.EUNKNOWNDOMAIN, khabar.ENOTFOUND:
			writeError(w, http.StatusNotFound, "Domain configuration not found", khabar.ErrorMessage(err))
		case khabar.EINVALID:
			writeError(w, http.StatusBadRequest, "Invalid request", khabar.ErrorMessage(err))
		default:
			writeError(w, http.StatusInternalServerError, "Extraction failed", khabar.ErrorMessage(err))
		}
		return
	}
	if content == "" {
		writeError(w, http.StatusNotFound, "No content extracted",
			"The article container was not found or contained no valid content")
		return
	}

	if s.Cache != nil {
		s.Cache.Set(cacheKey, content)
	}

	writeJSON(w, http.StatusOK, extractResponse{
		Success: true,
		Content: content,
		Metadata: extractMetadata{
			URL:           req.URL,
			DomainName:    domainLabel,
			ExtractedAt:   time.Now().Format(time.RFC3339),
			ContentLength: len(content),
			Cached:        false,
		},
	})
}

type generateRequest struct {
	Keypoints  string   `json:"keypoints"`
	SourceURLs []string `json:"source_urls"`
	Model      string   `json:"model,omitempty"`
}

type generateResponse struct {
	Success bool   `json:"success"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Warning string `json:"warning,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if s.Generator == nil {
		writeError(w, http.StatusInternalServerError, "Generation unavailable", "no generator configured")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Keypoints == "" {
		writeError(w, http.StatusBadRequest, "Invalid request", "keypoints required")
		return
	}

	article, err := s.Generator.GenerateFromURLs(r.Context(), req.Keypoints, req.SourceURLs, req.Model)
	if err != nil {
		if khabar.ErrorCode(err) == khabar.EINVALID {
			writeError(w, http.StatusBadRequest, "Invalid request", khabar.ErrorMessage(err))
			return
		}
		writeError(w, http.StatusInternalServerError, "Generation failed", khabar.ErrorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Success: true,
		Title:   article.Title,
		Content: article.Content,
		Warning: article.Warning,
	})
}

type domainInfo struct {
	DomainName               string `json:"domain_name"`
	ArticleContainerSelector string `json:"article_container_selector"`
	HasLoadMore              bool   `json:"has_load_more"`
	WaitStrategy             string `json:"wait_strategy"`
}

type domainsResponse struct {
	Success bool         `json:"success"`
	Count   int          `json:"count"`
	Domains []string     `json:"domains"`
	Details []domainInfo `json:"details,omitempty"`
}

func (s *Server) handleDomains(w http.ResponseWriter, r *http.Request) {
	names := s.Registry.Names()
	resp := domainsResponse{
		Success: true,
		Count:   len(names),
		Domains: names,
	}

	if r.URL.Query().Get("include_details") == "true" {
		for _, name := range names {
			config := s.Registry.ResolveByName(name)
			if config == nil {
				continue
			}
			resp.Details = append(resp.Details, domainInfo{
				DomainName:               config.DomainName,
				ArticleContainerSelector: config.ArticleContainerSelector,
				HasLoadMore:              config.LoadMoreSelector != "",
				WaitStrategy:             string(config.WaitUntil),
			})
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   APIVersion,
	})
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	if s.Cache == nil {
		writeJSON(w, http.StatusOK, map[string]any{"enabled": false})
		return
	}
	stats := s.Cache.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"enabled":    true,
		"cache_size": stats.Entries,
		"hits":       stats.Hits,
		"misses":     stats.Misses,
	})
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	if s.Cache == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Cache disabled. Nothing to clear.",
		})
		return
	}
	n := s.Cache.Clear()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Cache cleared. Removed %d entries.", n),
	})
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
