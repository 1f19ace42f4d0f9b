package pipeline

import (
	"context"
	"strings"

	"github.com/fwojciec/scout"
)

// Ensure ArticleFetcher implements scout.Fetcher at compile time.
var _ scout.Fetcher = (*ArticleFetcher)(nil)

// ArticleFetcher fetches a page and reduces it to its main content before
// it reaches the language model. When extraction yields nothing usable the
// raw page is returned, since the fetch itself succeeded.
type ArticleFetcher struct {
	fetcher   scout.Fetcher
	extractor scout.Extractor
	converter scout.Converter
}

// NewArticleFetcher creates a new ArticleFetcher. converter may be nil, in
// which case the extractor's plain text is used.
func NewArticleFetcher(fetcher scout.Fetcher, extractor scout.Extractor, converter scout.Converter) *ArticleFetcher {
	return &ArticleFetcher{
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
	}
}

// Fetch retrieves url and returns its main content as Markdown or text.
func (f *ArticleFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	result, err := f.extractor.Extract(html)
	if err != nil || result == nil {
		return html, nil
	}

	if f.converter != nil && strings.TrimSpace(result.ContentHTML) != "" {
		md, err := f.converter.Convert(result.ContentHTML)
		if err == nil && strings.TrimSpace(md) != "" {
			return withTitle(result.Title, md), nil
		}
	}

	if text := strings.TrimSpace(result.Text); text != "" {
		return withTitle(result.Title, text), nil
	}

	return html, nil
}

// Close releases the wrapped fetcher.
func (f *ArticleFetcher) Close() error {
	return f.fetcher.Close()
}

func withTitle(title, body string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return body
	}
	return "# " + title + "\n\n" + body
}
