package main

import (
	"fmt"

	"github.com/indigonode/sitecontact"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		return sitecontact.Errorf(sitecontact.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Companies.DeleteCompany(deps.Ctx, c.ID); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted company %s\n", c.ID)
	return nil
}
