package scout

import "context"

// Fetcher retrieves the body of a web page.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its body as text.
	// Non-2xx responses, network failures, and timeouts are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
