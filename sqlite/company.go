package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/indigonode/sitecontact"
)

// Compile-time interface verification.
var _ sitecontact.CompanyService = (*CompanyService)(nil)

const companyColumns = `id, company_name, description, contact_email, contact_phone,
	contact_address, has_contact_form, source_url, record_hash, scraped_at`

// CompanyService implements sitecontact.CompanyService using SQLite.
type CompanyService struct {
	db *DB
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(db *DB) *CompanyService {
	return &CompanyService{db: db}
}

// hashRecord computes the xxHash of a record's fingerprint as 16 hex digits.
func hashRecord(r *sitecontact.ContactRecord) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(r.Fingerprint()))
}

// CreateCompany stores a new company record. A record whose source URL and
// contents match an existing row is rejected with ECONFLICT.
func (s *CompanyService) CreateCompany(ctx context.Context, company *sitecontact.Company) error {
	if company.HasContactForm == "" {
		company.HasContactForm = sitecontact.FormNo
	}
	if err := company.Validate(); err != nil {
		return err
	}

	hash := hashRecord(&company.ContactRecord)
	if err := s.checkDuplicate(ctx, "", company.SourceURL, hash); err != nil {
		return err
	}

	company.ID = uuid.New().String()
	company.RecordHash = hash
	company.ScrapedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO companies (`+companyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, company.ID, company.CompanyName, company.Description, company.ContactEmail, company.ContactPhone,
		company.ContactAddress, string(company.HasContactForm), company.SourceURL, company.RecordHash,
		company.ScrapedAt.Format(time.RFC3339))

	return err
}

// checkDuplicate returns ECONFLICT when a row other than excludeID already
// holds the same source URL and record hash.
func (s *CompanyService) checkDuplicate(ctx context.Context, excludeID, sourceURL, hash string) error {
	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM companies
		WHERE source_url = ? AND record_hash = ? AND id != ?
		LIMIT 1
	`, sourceURL, hash, excludeID).Scan(&id)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	return sitecontact.Errorf(sitecontact.ECONFLICT, "record for %s already saved as %s", sourceURL, id)
}

// FindCompanyByID retrieves a company by ID.
func (s *CompanyService) FindCompanyByID(ctx context.Context, id string) (*sitecontact.Company, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id)

	company, err := scanCompany(row)
	if err == sql.ErrNoRows {
		return nil, sitecontact.Errorf(sitecontact.ENOTFOUND, "company not found")
	}
	if err != nil {
		return nil, err
	}
	return company, nil
}

// FindCompanies retrieves companies matching the filter, newest first.
func (s *CompanyService) FindCompanies(ctx context.Context, filter sitecontact.CompanyFilter) ([]*sitecontact.Company, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + companyColumns + " FROM companies WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.RecordHash != nil {
		query.WriteString(" AND record_hash = ?")
		args = append(args, *filter.RecordHash)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := likePattern(*filter.Search)
		query.WriteString(` AND (company_name LIKE ? ESCAPE '\' OR contact_email LIKE ? ESCAPE '\' OR contact_phone LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}

	query.WriteString(" ORDER BY scraped_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*sitecontact.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}

// UpdateCompany applies the non-nil fields of upd, then re-validates and
// re-hashes the record.
func (s *CompanyService) UpdateCompany(ctx context.Context, id string, upd sitecontact.CompanyUpdate) (*sitecontact.Company, error) {
	company, err := s.FindCompanyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.CompanyName != nil {
		company.CompanyName = *upd.CompanyName
	}
	if upd.Description != nil {
		company.Description = *upd.Description
	}
	if upd.ContactEmail != nil {
		company.ContactEmail = *upd.ContactEmail
	}
	if upd.ContactPhone != nil {
		company.ContactPhone = *upd.ContactPhone
	}
	if upd.ContactAddress != nil {
		company.ContactAddress = *upd.ContactAddress
	}
	if upd.HasContactForm != nil {
		company.HasContactForm = *upd.HasContactForm
	}

	if err := company.Validate(); err != nil {
		return nil, err
	}

	hash := hashRecord(&company.ContactRecord)
	if err := s.checkDuplicate(ctx, id, company.SourceURL, hash); err != nil {
		return nil, err
	}
	company.RecordHash = hash

	_, err = s.db.ExecContext(ctx, `
		UPDATE companies
		SET company_name = ?, description = ?, contact_email = ?, contact_phone = ?,
			contact_address = ?, has_contact_form = ?, record_hash = ?
		WHERE id = ?
	`, company.CompanyName, company.Description, company.ContactEmail, company.ContactPhone,
		company.ContactAddress, string(company.HasContactForm), company.RecordHash, id)
	if err != nil {
		return nil, err
	}

	return company, nil
}

// DeleteCompany permanently removes a company.
func (s *CompanyService) DeleteCompany(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM companies WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sitecontact.Errorf(sitecontact.ENOTFOUND, "company not found")
	}

	return nil
}

// CompanyStats counts stored companies and how many carry each contact field.
func (s *CompanyService) CompanyStats(ctx context.Context) (*sitecontact.CompanyStats, error) {
	var stats sitecontact.CompanyStats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(NULLIF(contact_email, '')),
			COUNT(NULLIF(contact_phone, '')),
			COUNT(NULLIF(contact_address, '')),
			COUNT(NULLIF(has_contact_form, 'No'))
		FROM companies
	`).Scan(&stats.Total, &stats.WithEmail, &stats.WithPhone, &stats.WithAddress, &stats.WithContactForm)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCompany(row scanner) (*sitecontact.Company, error) {
	var company sitecontact.Company
	var form, scrapedAt string

	if err := row.Scan(&company.ID, &company.CompanyName, &company.Description, &company.ContactEmail,
		&company.ContactPhone, &company.ContactAddress, &form, &company.SourceURL, &company.RecordHash,
		&scrapedAt); err != nil {
		return nil, err
	}
	company.HasContactForm = sitecontact.FormPresence(form)

	var err error
	company.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}

	return &company, nil
}
