// Package rod provides a browser-based implementation of recipeclip.Fetcher
// for recipe sites that only render their metadata through JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/kspala/recipeclip"
)

// Ensure Fetcher implements recipeclip.Fetcher at compile time.
var _ recipeclip.Fetcher = (*Fetcher)(nil)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
//
// Chrome accumulates memory over long batch imports and the baseline never
// returns to initial levels even with proper page cleanup, so the browser
// is recycled after maxPages pages.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	mu        sync.Mutex
	closed    atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxPages sets the number of pages fetched before the browser is
// recycled. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launchBrowser(); err != nil {
		return nil, err
	}

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.currentBrowser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	// Wait for the page (and any JSON-LD injected on load) to settle
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	atomic.AddInt64(&f.pageCount, 1)
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closeBrowser()
}

// currentBrowser returns the browser instance, recycling it first if the
// page count has reached maxPages.
func (f *Fetcher) currentBrowser() *rod.Browser {
	f.mu.Lock()
	defer f.mu.Unlock()

	if atomic.LoadInt64(&f.pageCount) >= f.maxPages {
		f.recycleBrowser()
	}

	return f.browser
}

// launchBrowser starts a new browser instance with stability flags.
func (f *Fetcher) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (f *Fetcher) closeBrowser() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one.
// If launching the new browser fails, the old browser is kept.
// Must be called with mu held.
func (f *Fetcher) recycleBrowser() {
	oldBrowser := f.browser
	oldLauncher := f.launcher
	f.browser = nil
	f.launcher = nil

	if err := f.launchBrowser(); err != nil {
		f.browser = oldBrowser
		f.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&f.pageCount, 0)
}
