// Package importer provides recipe import orchestration.
// It coordinates fetching, extraction, and storage of recipes clipped
// from cooking websites.
package importer

import (
	"context"
	"errors"
	"net/url"
	"sync/atomic"

	"github.com/kspala/recipeclip"
	"github.com/kspala/recipeclip/bloom"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for batch deduplication.
const (
	dedupeMinSize           = 1000
	dedupeFalsePositiveRate = 0.01
)

// Importer orchestrates importing recipes from URLs.
type Importer struct {
	Fetcher     recipeclip.Fetcher
	Extractor   recipeclip.Extractor
	Recipes     recipeclip.RecipeService
	RateLimiter recipeclip.DomainLimiter
	Concurrency int
}

// Result holds the outcome of a batch import.
type Result struct {
	Imported int
	Skipped  int
	Failed   int
}

// ProgressEvent reports progress during a batch import.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

// Import fetches a single URL, extracts the recipe it carries, and saves
// it through the configured RecipeService. When Recipes is nil the recipe
// is extracted but not persisted, which is how dry runs work.
//
// Returns EBADURL for malformed URLs, EUNREACHABLE when the page cannot
// be fetched, and passes through the extractor's EUNSUPPORTED and EPARSE.
func (im *Importer) Import(ctx context.Context, rawURL string) (*recipeclip.Recipe, error) {
	host, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	if im.RateLimiter != nil {
		if err := im.RateLimiter.Wait(ctx, host); err != nil {
			return nil, err
		}
	}

	// A single fetch attempt per import; failed imports are retried by
	// re-running the command, not by the pipeline.
	html, err := im.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, recipeclip.Errorf(recipeclip.EUNREACHABLE, "failed to reach %s: %v", rawURL, err)
	}

	recipe, err := im.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	if recipe.SourceURL == "" {
		recipe.SourceURL = rawURL
	}

	if im.Recipes != nil {
		if err := im.Recipes.CreateRecipe(ctx, recipe); err != nil {
			return nil, err
		}
	}

	return recipe, nil
}

// ImportAll imports a batch of URLs concurrently. Duplicate URLs within
// the batch are skipped. The progress callback, if provided, receives
// events as the import proceeds.
//
// Individual import failures do not abort the batch; they are counted in
// the result and reported through progress events.
func (im *Importer) ImportAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	// Deduplicate within the batch up front so the total reflects the
	// work actually attempted.
	seen := bloom.NewFilter(max(uint(len(urls)), dedupeMinSize), dedupeFalsePositiveRate)

	var result Result
	unique := make([]string, 0, len(urls))
	var dupes []string
	for _, u := range urls {
		if seen.TestAndAdd(u) {
			result.Skipped++
			dupes = append(dupes, u)
			continue
		}
		unique = append(unique, u)
	}

	total := len(unique)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
		for _, u := range dupes {
			progress(ProgressEvent{Type: ProgressSkipped, Total: total, URL: u})
		}
	}

	concurrency := im.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	type importOutcome struct {
		url string
		err error
	}
	outcomeCh := make(chan importOutcome, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range unique {
			g.Go(func() error {
				_, err := im.Import(gctx, u)
				outcomeCh <- importOutcome{url: u, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomeCh)
	}()

	var completed atomic.Int64
	for outcome := range outcomeCh {
		completed.Add(1)

		if outcome.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       outcome.url,
					Error:     outcome.err,
				})
			}
			continue
		}

		result.Imported++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       outcome.url,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

// ValidateURL checks that a raw URL is an absolute http or https URL and
// returns its host. Returns EBADURL otherwise.
func ValidateURL(rawURL string) (host string, err error) {
	u, parseErr := url.Parse(rawURL)
	if parseErr != nil {
		return "", recipeclip.Errorf(recipeclip.EBADURL, "invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", recipeclip.Errorf(recipeclip.EBADURL, "unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", recipeclip.Errorf(recipeclip.EBADURL, "URL %q has no host", rawURL)
	}
	return u.Host, nil
}
