package sitecontact

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the decoded body.
	// Transport failures, timeouts, and non-2xx responses are returned
	// as EFETCH errors.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
