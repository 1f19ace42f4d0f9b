package scout

import "context"

// Runner produces coordinates for the points of interest in the article
// at url.
type Runner interface {
	Run(ctx context.Context, url string) (*Result, error)
}
