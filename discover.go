package sitecontact

import "context"

// SiteDiscoverer expands a seed URL into the same-domain pages reachable
// from it.
type SiteDiscoverer interface {
	// Discover crawls breadth-first from seedURL and returns at most
	// maxPages normalized URLs, seed first, in discovery order.
	// Unreachable pages are skipped; an unreachable seed yields only the seed.
	// Returns EINVALID if maxPages is less than 1.
	Discover(ctx context.Context, seedURL string, maxPages int) ([]string, error)
}

// LinkExtractor pulls crawlable references out of an HTML page.
type LinkExtractor interface {
	// ExtractLinks returns the normalized absolute URL of every anchor in
	// the page, resolved against pageURL, in document order without
	// duplicates. Rejected references are omitted.
	ExtractLinks(html, pageURL string) ([]string, error)
}
