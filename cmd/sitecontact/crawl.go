package main

import (
	"fmt"

	"github.com/indigonode/sitecontact"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	filter, err := sitecontact.NewURLFilter(c.Filter, c.Exclude)
	if err != nil {
		return err
	}

	urls, err := deps.NewDiscoverer(filter).Discover(deps.Ctx, c.URL, c.MaxPages)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return sitecontact.Errorf(sitecontact.ENOTFOUND, "no pages discovered from %s", c.URL)
	}

	fmt.Fprintf(deps.Stderr, "Found %d pages\n", len(urls))

	records, err := deps.Extractor.ExtractBatch(deps.Ctx, urls, reportFailures(deps.Stderr))
	if err != nil {
		_ = emitRecords(deps, records, OutputFlags{JSON: c.JSON})
		return err
	}

	return emitRecords(deps, records, c.OutputFlags)
}
