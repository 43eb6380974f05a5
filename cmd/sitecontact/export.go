package main

import (
	"fmt"

	"github.com/indigonode/sitecontact"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	var filter sitecontact.CompanyFilter
	if c.Search != "" {
		filter.Search = &c.Search
	}

	companies, err := deps.Companies.FindCompanies(deps.Ctx, filter)
	if err != nil {
		return err
	}

	records := make([]*sitecontact.ContactRecord, len(companies))
	for i, co := range companies {
		records[i] = &co.ContactRecord
	}

	if err := writeRecordFile(deps.Ctx, c.Path, records); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d companies to %s\n", len(records), c.Path)
	return nil
}
