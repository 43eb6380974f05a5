package mock

import (
	"context"

	"github.com/indigonode/sitecontact"
)

// Compile-time interface verification.
var (
	_ sitecontact.SiteDiscoverer = (*SiteDiscoverer)(nil)
	_ sitecontact.LinkExtractor  = (*LinkExtractor)(nil)
)

// SiteDiscoverer is a mock implementation of sitecontact.SiteDiscoverer.
type SiteDiscoverer struct {
	DiscoverFn func(ctx context.Context, seedURL string, maxPages int) ([]string, error)
}

func (d *SiteDiscoverer) Discover(ctx context.Context, seedURL string, maxPages int) ([]string, error) {
	return d.DiscoverFn(ctx, seedURL, maxPages)
}

// LinkExtractor is a mock implementation of sitecontact.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, pageURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html, pageURL string) ([]string, error) {
	return e.ExtractLinksFn(html, pageURL)
}
