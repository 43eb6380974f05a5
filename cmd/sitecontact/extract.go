package main

import (
	"fmt"

	"github.com/indigonode/sitecontact"
	"github.com/indigonode/sitecontact/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	urls := append([]string(nil), c.URLs...)
	if c.Input != "" {
		fromFile, err := fs.ReadURLs(c.Input)
		if err != nil {
			return err
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		return sitecontact.Errorf(sitecontact.EINVALID, "no URLs given. Pass URLs as arguments or use --input")
	}

	fmt.Fprintf(deps.Stderr, "Extracting %d URLs\n", len(urls))

	records, err := deps.Extractor.ExtractBatch(deps.Ctx, urls, reportFailures(deps.Stderr))
	if err != nil {
		_ = emitRecords(deps, records, OutputFlags{JSON: c.JSON})
		return err
	}

	return emitRecords(deps, records, c.OutputFlags)
}
