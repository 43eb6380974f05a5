package sitecontact

import (
	"context"
	"time"
)

// Company is a contact record accepted for keeping.
type Company struct {
	ID string `json:"id"`
	ContactRecord

	// RecordHash fingerprints the record contents; re-scrapes that produce
	// an identical record have the same hash.
	RecordHash string    `json:"recordHash"`
	ScrapedAt  time.Time `json:"scrapedAt"`
}

// Validate returns an error if the company contains invalid fields.
func (c *Company) Validate() error {
	return c.ContactRecord.Validate()
}

// CompanyService represents a service for managing stored companies.
type CompanyService interface {
	// CreateCompany stores a new company. An empty HasContactForm is
	// stored as FormNo.
	CreateCompany(ctx context.Context, company *Company) error

	// FindCompanyByID retrieves a company by ID.
	// Returns ENOTFOUND if the company does not exist.
	FindCompanyByID(ctx context.Context, id string) (*Company, error)

	// FindCompanies retrieves companies matching the filter, newest first.
	FindCompanies(ctx context.Context, filter CompanyFilter) ([]*Company, error)

	// UpdateCompany updates an existing company.
	// Returns ENOTFOUND if the company does not exist.
	UpdateCompany(ctx context.Context, id string, upd CompanyUpdate) (*Company, error)

	// DeleteCompany permanently removes a company.
	// Returns ENOTFOUND if the company does not exist.
	DeleteCompany(ctx context.Context, id string) error

	// CompanyStats returns counts over all stored companies.
	CompanyStats(ctx context.Context) (*CompanyStats, error)
}

// CompanyFilter represents a filter for FindCompanies.
type CompanyFilter struct {
	ID         *string `json:"id"`
	SourceURL  *string `json:"sourceUrl"`
	RecordHash *string `json:"recordHash"`

	// Search matches a case-insensitive substring of the company name,
	// email, or phone.
	Search *string `json:"search"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CompanyUpdate represents fields that can be updated on a company.
type CompanyUpdate struct {
	CompanyName    *string       `json:"companyName"`
	Description    *string       `json:"description"`
	ContactEmail   *string       `json:"contactEmail"`
	ContactPhone   *string       `json:"contactPhone"`
	ContactAddress *string       `json:"contactAddress"`
	HasContactForm *FormPresence `json:"hasContactForm"`
}

// CompanyStats summarizes stored companies.
type CompanyStats struct {
	Total           int `json:"total"`
	WithEmail       int `json:"withEmail"`
	WithPhone       int `json:"withPhone"`
	WithAddress     int `json:"withAddress"`
	WithContactForm int `json:"withContactForm"`
}
