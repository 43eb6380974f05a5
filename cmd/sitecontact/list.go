package main

import (
	"fmt"

	"github.com/indigonode/sitecontact"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := sitecontact.CompanyFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Search != "" {
		filter.Search = &c.Search
	}

	companies, err := deps.Companies.FindCompanies(deps.Ctx, filter)
	if err != nil {
		return err
	}

	if len(companies) == 0 {
		fmt.Fprintln(deps.Stdout, "No companies found. Use 'sitecontact extract --save' to add some.")
		return nil
	}

	for _, co := range companies {
		email := co.ContactEmail
		if email == "" {
			email = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", co.ID, co.CompanyName, email, co.SourceURL)
	}

	return nil
}
