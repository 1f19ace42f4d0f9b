package mock

import (
	"context"

	"github.com/fwojciec/scout"
)

var _ scout.Runner = (*Runner)(nil)

// Runner is a mock implementation of scout.Runner.
type Runner struct {
	RunFn func(ctx context.Context, url string) (*scout.Result, error)
}

func (r *Runner) Run(ctx context.Context, url string) (*scout.Result, error) {
	return r.RunFn(ctx, url)
}
