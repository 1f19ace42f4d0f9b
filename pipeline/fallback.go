package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/scout"
)

// DefaultMinContent is the amount of extracted text, in bytes, below which a
// page is considered not rendered.
const DefaultMinContent = 500

// Ensure FallbackFetcher implements scout.Fetcher at compile time.
var _ scout.Fetcher = (*FallbackFetcher)(nil)

// FallbackFetcher fetches with a fast primary fetcher and renders the page
// with a secondary one when the primary result carries too little article
// text, as happens with pages built by JavaScript. Primary errors are
// returned as they are; the secondary fetcher never replaces a failed
// fetch.
type FallbackFetcher struct {
	primary    scout.Fetcher
	secondary  scout.Fetcher
	extractor  scout.Extractor
	minContent int
	timeout    time.Duration
}

// FallbackOption configures a FallbackFetcher.
type FallbackOption func(*FallbackFetcher)

// WithFallbackTimeout bounds a whole Fetch, both attempts included, by d.
// Zero leaves each fetcher to its own timeout.
func WithFallbackTimeout(d time.Duration) FallbackOption {
	return func(f *FallbackFetcher) {
		f.timeout = d
	}
}

// NewFallbackFetcher creates a new FallbackFetcher. extractor measures how
// much content each result carries.
func NewFallbackFetcher(primary, secondary scout.Fetcher, extractor scout.Extractor, opts ...FallbackOption) *FallbackFetcher {
	f := &FallbackFetcher{
		primary:    primary,
		secondary:  secondary,
		extractor:  extractor,
		minContent: DefaultMinContent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves url with the primary fetcher, falling back to the
// secondary when the page looks unrendered. When the deadline expires
// during the secondary fetch the primary page is returned.
func (f *FallbackFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	html, err := f.primary.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	primaryLen := f.contentLen(html)
	if primaryLen >= f.minContent {
		return html, nil
	}

	rendered, err := f.secondary.Fetch(ctx, url)
	if err != nil {
		return html, nil
	}

	// Prefer the rendered page only when it adds substantially more content.
	if float64(f.contentLen(rendered)) > float64(primaryLen)*1.5 {
		return rendered, nil
	}
	return html, nil
}

// Close releases both fetchers.
func (f *FallbackFetcher) Close() error {
	return errors.Join(f.primary.Close(), f.secondary.Close())
}

func (f *FallbackFetcher) contentLen(html string) int {
	result, err := f.extractor.Extract(html)
	if err != nil || result == nil {
		return 0
	}
	return max(len(strings.TrimSpace(result.Text)), len(strings.TrimSpace(result.ContentHTML)))
}
