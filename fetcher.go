package frontpage

import "context"

// Fetcher retrieves raw HTML from URLs.
// The core never inspects transport details beyond success or failure;
// implementations map transport errors to application error codes
// (ETIMEOUT, EUNAVAILABLE, ENOTFOUND, EINTERNAL).
type Fetcher interface {
	// Fetch performs a blocking GET and returns the page body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
