package main

import (
	"fmt"
	"strings"

	"github.com/indigonode/sitecontact"
)

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	upd, err := c.companyUpdate()
	if err != nil {
		return err
	}

	company, err := deps.Companies.UpdateCompany(deps.Ctx, c.ID, upd)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated company %s (%s)\n", company.CompanyName, company.ID)
	return nil
}

func (c *UpdateCmd) companyUpdate() (sitecontact.CompanyUpdate, error) {
	var upd sitecontact.CompanyUpdate
	changed := false

	set := func(dst **string, v string) {
		if v != "" {
			*dst = &v
			changed = true
		}
	}
	set(&upd.CompanyName, c.Name)
	set(&upd.Description, c.Description)
	set(&upd.ContactEmail, c.Email)
	set(&upd.ContactPhone, c.Phone)
	set(&upd.ContactAddress, c.Address)

	if c.Form != "" {
		var form sitecontact.FormPresence
		switch {
		case strings.EqualFold(c.Form, string(sitecontact.FormYes)):
			form = sitecontact.FormYes
		case strings.EqualFold(c.Form, string(sitecontact.FormNo)):
			form = sitecontact.FormNo
		default:
			return upd, sitecontact.Errorf(sitecontact.EINVALID, "form must be Yes or No, got %q", c.Form)
		}
		upd.HasContactForm = &form
		changed = true
	}

	for _, field := range c.Clear {
		empty := ""
		switch strings.ToLower(field) {
		case "description":
			upd.Description = &empty
		case "email":
			upd.ContactEmail = &empty
		case "phone":
			upd.ContactPhone = &empty
		case "address":
			upd.ContactAddress = &empty
		default:
			return upd, sitecontact.Errorf(sitecontact.EINVALID, "cannot clear %q: expected description, email, phone, or address", field)
		}
		changed = true
	}

	if !changed {
		return upd, sitecontact.Errorf(sitecontact.EINVALID, "nothing to update")
	}
	return upd, nil
}
