package crawl

import (
	"context"

	"github.com/indigonode/sitecontact"
)

// Compile-time interface verification.
var _ sitecontact.SiteDiscoverer = (*Discoverer)(nil)

// DefaultMaxPages is the page budget used when callers have no preference.
const DefaultMaxPages = 50

// frontierFPRate is the false positive rate of the frontier's screening filter.
const frontierFPRate = 0.01

// Discoverer crawls a site breadth-first, one page at a time, collecting
// same-domain URLs until the page budget is reached.
type Discoverer struct {
	Fetcher sitecontact.Fetcher
	Links   sitecontact.LinkExtractor

	// Filter, if set, restricts which discovered URLs are collected and
	// followed. The seed is exempt.
	Filter *sitecontact.URLFilter
}

// Discover returns up to maxPages URLs reachable from seedURL, seed first,
// in breadth-first discovery order. Interior pages that fail to fetch are
// skipped without retry. A seed that does not normalize, or that cannot be
// fetched, yields nil.
//
// The returned error is EINVALID for maxPages < 1, or the context's error
// if ctx is done; in the latter case the URLs collected so far are returned.
func (d *Discoverer) Discover(ctx context.Context, seedURL string, maxPages int) ([]string, error) {
	if maxPages < 1 {
		return nil, sitecontact.Errorf(sitecontact.EINVALID, "max pages must be at least 1, got %d", maxPages)
	}

	seed := sitecontact.NormalizeURL(seedURL, seedURL)
	if seed == "" {
		return nil, nil
	}

	frontier := NewFrontier(uint(maxPages), frontierFPRate)
	frontier.Push(seed)
	collected := []string{seed}

	for frontier.Len() > 0 && len(collected) < maxPages {
		if err := ctx.Err(); err != nil {
			return collected, err
		}

		pageURL, _ := frontier.Pop()

		html, err := d.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return collected, ctxErr
			}
			if pageURL == seed {
				return nil, nil
			}
			continue
		}

		links, err := d.Links.ExtractLinks(html, pageURL)
		if err != nil {
			continue
		}

		for _, link := range links {
			if len(collected) >= maxPages {
				break
			}
			if !sitecontact.SameDomain(link, seed) || frontier.Seen(link) {
				continue
			}
			if !d.Filter.Match(link) {
				continue
			}
			frontier.Push(link)
			collected = append(collected, link)
		}
	}

	return collected, nil
}
