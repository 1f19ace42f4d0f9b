// Package readability implements scout.Extractor with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/scout"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements scout.Extractor at compile time.
var _ scout.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article body from a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article body.
func (e *Extractor) Extract(rawHTML string) (*scout.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, scout.Errorf(scout.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &scout.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Text:        article.TextContent,
	}, nil
}
