package rod

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/gujnews/khabar"
)

// Ensure Renderer implements khabar.Renderer at compile time.
var _ khabar.Renderer = (*Renderer)(nil)

// Renderer renders pages in a shared headless Chrome browser. Each call
// gets its own incognito browsing context, so concurrent renders never
// observe each other's cookies or storage. Renderer is safe for
// concurrent use by multiple goroutines.
type Renderer struct {
	manager *BrowserManager
	logger  *slog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLogger sets the logger used for non-fatal render events (e.g. the
// container-wait timeout that does not abort extraction).
func WithLogger(logger *slog.Logger) RendererOption {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// NewRenderer creates a new Renderer on top of a BrowserManager.
// Close must be called when the Renderer is no longer needed.
func NewRenderer(manager *BrowserManager, opts ...RendererOption) *Renderer {
	r := &Renderer{
		manager: manager,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render navigates to the URL under the configuration's timeouts and
// returns the document HTML as currently rendered. The browsing context
// is closed on every exit path.
func (r *Renderer) Render(ctx context.Context, url string, config *khabar.DomainConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := r.manager.Browser()
	if err != nil {
		return "", err
	}

	// Isolated context per call: no cookie or storage leakage between
	// renders sharing the browser process.
	incognito, err := browser.Incognito()
	if err != nil {
		return "", err
	}

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = disposeContext(incognito)
		return "", err
	}
	defer func() {
		_ = page.Close()
		_ = disposeContext(incognito)
	}()

	page = page.Context(ctx)

	// Images, media, fonts and stylesheets cost bandwidth and time but
	// contribute nothing to text extraction.
	router := page.HijackRequests()
	if err := router.Add("*", "", blockHeavyResources); err != nil {
		return "", err
	}
	go router.Run()
	defer func() { _ = router.Stop() }()

	nav := page.Timeout(config.PageLoadTimeout)
	wait := nav.WaitNavigation(lifecycleEvent(config.WaitUntil))
	if err := nav.Navigate(url); err != nil {
		return "", err
	}
	wait()
	if err := nav.GetContext().Err(); err != nil {
		return "", khabar.Errorf(khabar.EINTERNAL, "navigation timeout after %s for %s", config.PageLoadTimeout, url)
	}

	// Wait only for the article container. Partial HTML may still be
	// usable, so a timeout here is logged and extraction continues.
	if _, err := page.Timeout(config.WaitTimeout).Element(config.ArticleContainerSelector); err != nil {
		r.logger.Warn("timeout waiting for article container",
			"url", url,
			"selector", config.ArticleContainerSelector,
			"timeout", config.WaitTimeout,
		)
	}

	// Exactly one best-effort click; element absent, covered, or slow is
	// never a hard failure.
	if config.LoadMoreSelector != "" {
		r.clickLoadMore(page, config)
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	r.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources.
func (r *Renderer) Close() error {
	return r.manager.Close()
}

// clickLoadMore clicks the first element matching the load-more
// selector, swallowing every failure.
func (r *Renderer) clickLoadMore(page *rod.Page, config *khabar.DomainConfig) {
	clickPage := page.Timeout(config.ClickTimeout)

	var el *rod.Element
	var err error
	if isXPath(config.LoadMoreSelector) {
		el, err = clickPage.ElementX(config.LoadMoreSelector)
	} else {
		el, err = clickPage.Element(config.LoadMoreSelector)
	}
	if err != nil || el == nil {
		return
	}

	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		r.logger.Debug("load-more click failed",
			"selector", config.LoadMoreSelector,
			"err", err,
		)
	}
}

// blockHeavyResources aborts requests for resource types that text
// extraction never needs.
func blockHeavyResources(h *rod.Hijack) {
	switch h.Request.Type() {
	case proto.NetworkResourceTypeImage,
		proto.NetworkResourceTypeMedia,
		proto.NetworkResourceTypeFont,
		proto.NetworkResourceTypeStylesheet:
		h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
	default:
		h.ContinueRequest(&proto.FetchContinueRequest{})
	}
}

// lifecycleEvent maps a readiness criterion to the corresponding page
// lifecycle event. Commit maps to the earliest event Chrome reports.
func lifecycleEvent(w khabar.WaitUntil) proto.PageLifecycleEventName {
	switch w {
	case khabar.WaitLoad:
		return proto.PageLifecycleEventNameLoad
	case khabar.WaitNetworkIdle:
		return proto.PageLifecycleEventNameNetworkIdle
	case khabar.WaitCommit:
		return proto.PageLifecycleEventNameInit
	default:
		return proto.PageLifecycleEventNameDOMContentLoaded
	}
}

// isXPath reports whether the selector is an XPath expression rather
// than a CSS selector.
func isXPath(selector string) bool {
	return strings.HasPrefix(selector, "//") || strings.HasPrefix(selector, "(")
}

// disposeContext tears down an incognito browser context.
func disposeContext(b *rod.Browser) error {
	if b.BrowserContextID == "" {
		return nil
	}
	return proto.TargetDisposeBrowserContext{BrowserContextID: b.BrowserContextID}.Call(b)
}
