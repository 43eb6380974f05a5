package mock

import (
	"context"

	"github.com/indigonode/sitecontact"
)

var _ sitecontact.CompanyService = (*CompanyService)(nil)

// CompanyService is a mock implementation of sitecontact.CompanyService.
type CompanyService struct {
	CreateCompanyFn   func(ctx context.Context, company *sitecontact.Company) error
	FindCompanyByIDFn func(ctx context.Context, id string) (*sitecontact.Company, error)
	FindCompaniesFn   func(ctx context.Context, filter sitecontact.CompanyFilter) ([]*sitecontact.Company, error)
	UpdateCompanyFn   func(ctx context.Context, id string, upd sitecontact.CompanyUpdate) (*sitecontact.Company, error)
	DeleteCompanyFn   func(ctx context.Context, id string) error
	CompanyStatsFn    func(ctx context.Context) (*sitecontact.CompanyStats, error)
}

func (s *CompanyService) CreateCompany(ctx context.Context, company *sitecontact.Company) error {
	return s.CreateCompanyFn(ctx, company)
}

func (s *CompanyService) FindCompanyByID(ctx context.Context, id string) (*sitecontact.Company, error) {
	return s.FindCompanyByIDFn(ctx, id)
}

func (s *CompanyService) FindCompanies(ctx context.Context, filter sitecontact.CompanyFilter) ([]*sitecontact.Company, error) {
	return s.FindCompaniesFn(ctx, filter)
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id string, upd sitecontact.CompanyUpdate) (*sitecontact.Company, error) {
	return s.UpdateCompanyFn(ctx, id, upd)
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id string) error {
	return s.DeleteCompanyFn(ctx, id)
}

func (s *CompanyService) CompanyStats(ctx context.Context) (*sitecontact.CompanyStats, error) {
	return s.CompanyStatsFn(ctx)
}
