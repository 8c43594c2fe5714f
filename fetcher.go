package recipeclip

import "context"

// Fetcher retrieves the HTML of recipe pages.
// Implementations may use browser automation to handle JavaScript-rendered
// sites.
type Fetcher interface {
	// Fetch retrieves the page at the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter controls request rates per domain so batch imports do not
// hammer a single site.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain,
	// or the context is canceled.
	Wait(ctx context.Context, domain string) error
}
