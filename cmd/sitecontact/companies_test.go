package main_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/indigonode/sitecontact"
	main "github.com/indigonode/sitecontact/cmd/sitecontact"
	"github.com/indigonode/sitecontact/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(companies sitecontact.CompanyService) (*main.Dependencies, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    &bytes.Buffer{},
		Companies: companies,
	}, stdout
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists companies with ID, name, email, and URL", func(t *testing.T) {
		t.Parallel()

		var gotFilter sitecontact.CompanyFilter
		companies := &mock.CompanyService{
			FindCompaniesFn: func(_ context.Context, filter sitecontact.CompanyFilter) ([]*sitecontact.Company, error) {
				gotFilter = filter
				return []*sitecontact.Company{
					{ID: "c-1", ContactRecord: sitecontact.ContactRecord{CompanyName: "acme", ContactEmail: "info@acme.com", SourceURL: "https://acme.com/"}},
					{ID: "c-2", ContactRecord: sitecontact.ContactRecord{CompanyName: "globex", SourceURL: "https://globex.io/"}},
				}, nil
			},
		}
		deps, stdout := newDeps(companies)

		err := (&main.ListCmd{Search: "a", Limit: 20}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Search)
		assert.Equal(t, "a", *gotFilter.Search)
		assert.Equal(t, 20, gotFilter.Limit)
		assert.Equal(t, "c-1  acme  info@acme.com  https://acme.com/\nc-2  globex  -  https://globex.io/\n", stdout.String())
	})

	t.Run("shows helpful message when no companies exist", func(t *testing.T) {
		t.Parallel()

		companies := &mock.CompanyService{
			FindCompaniesFn: func(context.Context, sitecontact.CompanyFilter) ([]*sitecontact.Company, error) {
				return nil, nil
			},
		}
		deps, stdout := newDeps(companies)

		require.NoError(t, (&main.ListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No companies found")
	})

	t.Run("returns error when FindCompanies fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		companies := &mock.CompanyService{
			FindCompaniesFn: func(context.Context, sitecontact.CompanyFilter) ([]*sitecontact.Company, error) {
				return nil, dbErr
			},
		}
		deps, _ := newDeps(companies)

		err := (&main.ListCmd{}).Run(deps)
		assert.Equal(t, dbErr, err)
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	company := &sitecontact.Company{
		ID:         "c-1",
		RecordHash: "0123456789abcdef",
		ScrapedAt:  time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
		ContactRecord: sitecontact.ContactRecord{
			CompanyName:    "acme",
			ContactPhone:   "555-123-4567",
			HasContactForm: sitecontact.FormNo,
			SourceURL:      "https://acme.com/",
		},
	}
	companies := &mock.CompanyService{
		FindCompanyByIDFn: func(_ context.Context, id string) (*sitecontact.Company, error) {
			if id != "c-1" {
				return nil, sitecontact.Errorf(sitecontact.ENOTFOUND, "company not found")
			}
			return company, nil
		},
	}

	t.Run("prints company fields", func(t *testing.T) {
		t.Parallel()

		deps, stdout := newDeps(companies)

		require.NoError(t, (&main.ShowCmd{ID: "c-1"}).Run(deps))
		assert.Contains(t, stdout.String(), "Company:      acme")
		assert.Contains(t, stdout.String(), "Phone:        555-123-4567")
		assert.Contains(t, stdout.String(), "Scraped:      2025-03-01T09:30:00Z")
		assert.Contains(t, stdout.String(), "Contact form: No")
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		deps, stdout := newDeps(companies)

		require.NoError(t, (&main.ShowCmd{ID: "c-1", JSON: true}).Run(deps))
		assert.Contains(t, stdout.String(), `"id": "c-1"`)
		assert.Contains(t, stdout.String(), `"recordHash": "0123456789abcdef"`)
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()

		deps, _ := newDeps(companies)

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)
		assert.Equal(t, sitecontact.ENOTFOUND, sitecontact.ErrorCode(err))
	})
}

func TestUpdateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("sends only provided fields", func(t *testing.T) {
		t.Parallel()

		var got sitecontact.CompanyUpdate
		companies := &mock.CompanyService{
			UpdateCompanyFn: func(_ context.Context, id string, upd sitecontact.CompanyUpdate) (*sitecontact.Company, error) {
				got = upd
				return &sitecontact.Company{ID: id, ContactRecord: sitecontact.ContactRecord{CompanyName: "acme"}}, nil
			},
		}
		deps, stdout := newDeps(companies)

		cmd := &main.UpdateCmd{ID: "c-1", Email: "sales@acme.com", Form: "yes", Clear: []string{"phone"}}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, got.ContactEmail)
		assert.Equal(t, "sales@acme.com", *got.ContactEmail)
		require.NotNil(t, got.HasContactForm)
		assert.Equal(t, sitecontact.FormYes, *got.HasContactForm)
		require.NotNil(t, got.ContactPhone)
		assert.Empty(t, *got.ContactPhone)
		assert.Nil(t, got.CompanyName)
		assert.Nil(t, got.ContactAddress)
		assert.Contains(t, stdout.String(), "Updated company acme (c-1)")
	})

	t.Run("rejects invalid form value", func(t *testing.T) {
		t.Parallel()

		deps, _ := newDeps(&mock.CompanyService{})

		err := (&main.UpdateCmd{ID: "c-1", Form: "maybe"}).Run(deps)
		assert.Equal(t, sitecontact.EINVALID, sitecontact.ErrorCode(err))
	})

	t.Run("rejects unknown field to clear", func(t *testing.T) {
		t.Parallel()

		deps, _ := newDeps(&mock.CompanyService{})

		err := (&main.UpdateCmd{ID: "c-1", Clear: []string{"name"}}).Run(deps)
		assert.Equal(t, sitecontact.EINVALID, sitecontact.ErrorCode(err))
	})

	t.Run("rejects empty update", func(t *testing.T) {
		t.Parallel()

		deps, _ := newDeps(&mock.CompanyService{})

		err := (&main.UpdateCmd{ID: "c-1"}).Run(deps)
		assert.Equal(t, sitecontact.EINVALID, sitecontact.ErrorCode(err))
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deleteCalled := false
		deps, _ := newDeps(&mock.CompanyService{
			DeleteCompanyFn: func(context.Context, string) error {
				deleteCalled = true
				return nil
			},
		})

		err := (&main.DeleteCmd{ID: "c-1"}).Run(deps)

		assert.Equal(t, sitecontact.EINVALID, sitecontact.ErrorCode(err))
		assert.False(t, deleteCalled)
	})

	t.Run("deletes with force", func(t *testing.T) {
		t.Parallel()

		var deleted string
		deps, stdout := newDeps(&mock.CompanyService{
			DeleteCompanyFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		})

		require.NoError(t, (&main.DeleteCmd{ID: "c-1", Force: true}).Run(deps))
		assert.Equal(t, "c-1", deleted)
		assert.Contains(t, stdout.String(), "Deleted company c-1")
	})
}

func TestStatsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints counts with percentages", func(t *testing.T) {
		t.Parallel()

		deps, stdout := newDeps(&mock.CompanyService{
			CompanyStatsFn: func(context.Context) (*sitecontact.CompanyStats, error) {
				return &sitecontact.CompanyStats{Total: 4, WithEmail: 3, WithPhone: 2, WithAddress: 1, WithContactForm: 0}, nil
			},
		})

		require.NoError(t, (&main.StatsCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "Companies:         4")
		assert.Contains(t, stdout.String(), "With email:        3 (75%)")
		assert.Contains(t, stdout.String(), "With contact form: 0 (0%)")
	})

	t.Run("omits percentages for empty store", func(t *testing.T) {
		t.Parallel()

		deps, stdout := newDeps(&mock.CompanyService{
			CompanyStatsFn: func(context.Context) (*sitecontact.CompanyStats, error) {
				return &sitecontact.CompanyStats{}, nil
			},
		})

		require.NoError(t, (&main.StatsCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "With phone:        0\n")
	})
}

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes matching companies as CSV", func(t *testing.T) {
		t.Parallel()

		deps, stdout := newDeps(&mock.CompanyService{
			FindCompaniesFn: func(_ context.Context, filter sitecontact.CompanyFilter) ([]*sitecontact.Company, error) {
				require.NotNil(t, filter.Search)
				assert.Equal(t, "acme", *filter.Search)
				return []*sitecontact.Company{{ID: "c-1", ContactRecord: *acmeRecord("https://acme.com/contact")}}, nil
			},
		})
		path := filepath.Join(t.TempDir(), "export.csv")

		require.NoError(t, (&main.ExportCmd{Path: path, Search: "acme"}).Run(deps))
		assert.Contains(t, stdout.String(), "Exported 1 companies to "+path)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "acme", rows[1][0])
		assert.Equal(t, "https://acme.com/contact", rows[1][6])
	})
}
