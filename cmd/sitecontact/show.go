package main

import (
	"encoding/json"
	"fmt"
	"time"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	company, err := deps.Companies.FindCompanyByID(deps.Ctx, c.ID)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(company)
	}

	fmt.Fprintf(deps.Stdout, "ID:           %s\n", company.ID)
	fmt.Fprintf(deps.Stdout, "Company:      %s\n", company.CompanyName)
	fmt.Fprintf(deps.Stdout, "Source:       %s\n", company.SourceURL)
	fmt.Fprintf(deps.Stdout, "Scraped:      %s\n", company.ScrapedAt.Format(time.RFC3339))
	fmt.Fprintf(deps.Stdout, "Description:  %s\n", company.Description)
	fmt.Fprintf(deps.Stdout, "Email:        %s\n", company.ContactEmail)
	fmt.Fprintf(deps.Stdout, "Phone:        %s\n", company.ContactPhone)
	fmt.Fprintf(deps.Stdout, "Address:      %s\n", company.ContactAddress)
	fmt.Fprintf(deps.Stdout, "Contact form: %s\n", company.HasContactForm)
	return nil
}
