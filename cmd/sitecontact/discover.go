package main

import (
	"fmt"

	"github.com/indigonode/sitecontact"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	filter, err := sitecontact.NewURLFilter(c.Filter, c.Exclude)
	if err != nil {
		return err
	}

	var urls []string
	if c.Sitemap {
		if c.MaxPages < 1 {
			return sitecontact.Errorf(sitecontact.EINVALID, "max pages must be at least 1, got %d", c.MaxPages)
		}
		urls, err = deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, filter)
		if len(urls) > c.MaxPages {
			urls = urls[:c.MaxPages]
		}
	} else {
		urls, err = deps.NewDiscoverer(filter).Discover(deps.Ctx, c.URL, c.MaxPages)
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	if err != nil {
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintf(deps.Stderr, "No pages found for %s\n", c.URL)
	}
	return nil
}
