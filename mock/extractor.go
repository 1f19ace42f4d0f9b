package mock

import "github.com/fwojciec/scout"

var _ scout.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scout.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*scout.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*scout.ExtractResult, error) {
	return e.ExtractFn(html)
}
