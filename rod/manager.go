// Package rod implements the browser-backed page renderer using Chrome
// automation.
package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/gujnews/khabar"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// BrowserManager owns the single shared browser process. The browser is
// launched lazily on first use, its liveness is checked before every
// reuse (a crashed browser is relaunched transparently), and it is
// recycled after a page budget because Chrome accumulates memory over
// time even with proper page cleanup.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	closed    atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the maximum number of pages before the browser is
// recycled. Defaults to DefaultMaxPages if not specified.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager creates a new BrowserManager. No browser process is
// started until the first Browser call. Close must be called when the
// BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) *BrowserManager {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(bm)
	}
	return bm
}

// Browser returns a live browser instance, launching or relaunching one
// as needed. Callers should call IncrementPageCount after using the
// browser to process a page.
func (bm *BrowserManager) Browser() (*rod.Browser, error) {
	if bm.closed.Load() {
		return nil, khabar.Errorf(khabar.EINTERNAL, "browser manager is closed")
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	// A crashed browser poisons every in-flight render that shares it;
	// detect and replace it before handing it out again.
	if bm.browser != nil && !bm.alive() {
		_ = bm.closeBrowserLocked()
	}

	if bm.browser != nil && atomic.LoadInt64(&bm.pageCount) >= bm.maxPages {
		_ = bm.closeBrowserLocked()
	}

	if bm.browser == nil {
		if err := bm.launchLocked(); err != nil {
			return nil, err
		}
	}

	return bm.browser, nil
}

// IncrementPageCount increments the page counter. Call this after
// successfully processing a page to track progress toward the recycling
// threshold.
func (bm *BrowserManager) IncrementPageCount() {
	atomic.AddInt64(&bm.pageCount, 1)
}

// Close releases browser resources. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	return bm.closeBrowserLocked()
}

// alive probes the browser with a cheap CDP call.
// Must be called with mu held.
func (bm *BrowserManager) alive() bool {
	_, err := proto.BrowserGetVersion{}.Call(bm.browser)
	return err == nil
}

// launchLocked starts a new browser instance with stability flags.
// Must be called with mu held.
func (bm *BrowserManager) launchLocked() error {
	lnchr := launcher.New().
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Set("no-sandbox").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser = browser
	bm.launcher = lnchr
	atomic.StoreInt64(&bm.pageCount, 0)
	return nil
}

// closeBrowserLocked shuts down the current browser and launcher.
// Must be called with mu held.
func (bm *BrowserManager) closeBrowserLocked() error {
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher, or 0 when
// no browser is running. This method exists for testing purposes to
// verify proper cleanup.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}
