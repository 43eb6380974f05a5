package fs

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/indigonode/sitecontact"
)

// Ensure RecordFile implements sitecontact.RecordStore at compile time.
var _ sitecontact.RecordStore = (*RecordFile)(nil)

// CSVHeader lists the columns written by a CSV RecordFile.
var CSVHeader = []string{
	"company_name",
	"description",
	"contact_email",
	"contact_phone",
	"contact_address",
	"has_contact_form",
	"source_url",
}

// RecordFile implements sitecontact.RecordStore with atomic update semantics.
// Records are appended to path.tmp and moved to path on Commit. Paths ending
// in .csv are written as CSV; anything else as NDJSON.
type RecordFile struct {
	path string

	f   *os.File
	csv *csv.Writer
	enc *json.Encoder
}

// NewRecordFile creates a RecordFile targeting path.
func NewRecordFile(path string) *RecordFile {
	return &RecordFile{path: path}
}

func (s *RecordFile) tempPath() string {
	return s.path + ".tmp"
}

func (s *RecordFile) isCSV() bool {
	return strings.EqualFold(filepath.Ext(s.path), ".csv")
}

func (s *RecordFile) open() error {
	if s.f != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	f, err := os.Create(s.tempPath())
	if err != nil {
		return err
	}
	s.f = f

	if s.isCSV() {
		s.csv = csv.NewWriter(f)
		return s.csv.Write(CSVHeader)
	}
	s.enc = json.NewEncoder(f)
	return nil
}

func (s *RecordFile) Save(ctx context.Context, record *sitecontact.ContactRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.open(); err != nil {
		return err
	}

	if s.csv != nil {
		return s.csv.Write([]string{
			record.CompanyName,
			record.Description,
			record.ContactEmail,
			record.ContactPhone,
			record.ContactAddress,
			string(record.HasContactForm),
			record.SourceURL,
		})
	}
	return s.enc.Encode(record)
}

// Commit flushes pending records and renames the temp file into place.
// Committing without any saved records still produces the file.
func (s *RecordFile) Commit() error {
	if err := s.open(); err != nil {
		return err
	}
	if s.csv != nil {
		s.csv.Flush()
		if err := s.csv.Error(); err != nil {
			return err
		}
	}
	if err := s.close(); err != nil {
		return err
	}
	return os.Rename(s.tempPath(), s.path)
}

// Abort discards everything saved since the file was created.
func (s *RecordFile) Abort() error {
	if err := s.close(); err != nil {
		return err
	}
	if err := os.Remove(s.tempPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *RecordFile) close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f, s.csv, s.enc = nil, nil, nil
	return err
}
