package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/indigonode/sitecontact"
)

// Ensure LoggingCompanyService implements sitecontact.CompanyService.
var _ sitecontact.CompanyService = (*LoggingCompanyService)(nil)

// LoggingCompanyService wraps a CompanyService with debug logging.
type LoggingCompanyService struct {
	next   sitecontact.CompanyService
	logger *slog.Logger
}

// NewLoggingCompanyService creates a new LoggingCompanyService.
func NewLoggingCompanyService(next sitecontact.CompanyService, logger *slog.Logger) *LoggingCompanyService {
	return &LoggingCompanyService{next: next, logger: logger}
}

func (s *LoggingCompanyService) CreateCompany(ctx context.Context, company *sitecontact.Company) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create company",
			"url", company.SourceURL,
			"id", company.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateCompany(ctx, company)
}

func (s *LoggingCompanyService) FindCompanyByID(ctx context.Context, id string) (company *sitecontact.Company, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find company",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCompanyByID(ctx, id)
}

func (s *LoggingCompanyService) FindCompanies(ctx context.Context, filter sitecontact.CompanyFilter) (companies []*sitecontact.Company, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find companies",
			"count", len(companies),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCompanies(ctx, filter)
}

func (s *LoggingCompanyService) UpdateCompany(ctx context.Context, id string, upd sitecontact.CompanyUpdate) (company *sitecontact.Company, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update company",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateCompany(ctx, id, upd)
}

func (s *LoggingCompanyService) DeleteCompany(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete company",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteCompany(ctx, id)
}

func (s *LoggingCompanyService) CompanyStats(ctx context.Context) (stats *sitecontact.CompanyStats, err error) {
	defer func(begin time.Time) {
		s.logger.Info("company stats",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CompanyStats(ctx)
}
