package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/indigonode/sitecontact"
	"github.com/indigonode/sitecontact/mock"
	scslog "github.com/indigonode/sitecontact/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCompanyService(t *testing.T) {
	t.Parallel()

	t.Run("logs create with id and url", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CompanyService{
			CreateCompanyFn: func(ctx context.Context, company *sitecontact.Company) error {
				company.ID = "c-1"
				return nil
			},
		}

		company := &sitecontact.Company{ContactRecord: sitecontact.ContactRecord{SourceURL: "https://acme.example"}}
		err := scslog.NewLoggingCompanyService(inner, logger).CreateCompany(context.Background(), company)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create company")
		assert.Contains(t, output, "id=c-1")
		assert.Contains(t, output, "url=https://acme.example")
	})

	t.Run("logs lookup errors with code message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CompanyService{
			FindCompanyByIDFn: func(ctx context.Context, id string) (*sitecontact.Company, error) {
				return nil, sitecontact.Errorf(sitecontact.ENOTFOUND, "company not found")
			},
		}

		_, err := scslog.NewLoggingCompanyService(inner, logger).FindCompanyByID(context.Background(), "missing")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "find company")
		assert.Contains(t, output, "id=missing")
		assert.Contains(t, output, "company not found")
	})

	t.Run("logs result count for listings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CompanyService{
			FindCompaniesFn: func(ctx context.Context, filter sitecontact.CompanyFilter) ([]*sitecontact.Company, error) {
				return []*sitecontact.Company{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
			},
		}

		companies, err := scslog.NewLoggingCompanyService(inner, logger).FindCompanies(context.Background(), sitecontact.CompanyFilter{})

		require.NoError(t, err)
		assert.Len(t, companies, 3)
		assert.Contains(t, buf.String(), "count=3")
	})

	t.Run("delegates update delete and stats", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var deleted string
		inner := &mock.CompanyService{
			UpdateCompanyFn: func(ctx context.Context, id string, upd sitecontact.CompanyUpdate) (*sitecontact.Company, error) {
				return &sitecontact.Company{ID: id}, nil
			},
			DeleteCompanyFn: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
			CompanyStatsFn: func(ctx context.Context) (*sitecontact.CompanyStats, error) {
				return &sitecontact.CompanyStats{Total: 4}, nil
			},
		}
		svc := scslog.NewLoggingCompanyService(inner, logger)

		updated, err := svc.UpdateCompany(context.Background(), "c-9", sitecontact.CompanyUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "c-9", updated.ID)

		require.NoError(t, svc.DeleteCompany(context.Background(), "c-9"))
		assert.Equal(t, "c-9", deleted)

		stats, err := svc.CompanyStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, stats.Total)

		output := buf.String()
		assert.Contains(t, output, "update company")
		assert.Contains(t, output, "delete company")
		assert.Contains(t, output, "company stats")
	})
}
