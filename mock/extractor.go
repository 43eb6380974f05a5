package mock

import (
	"context"

	"github.com/indigonode/sitecontact"
)

// Compile-time interface verification.
var (
	_ sitecontact.ContactParser    = (*ContactParser)(nil)
	_ sitecontact.ContactExtractor = (*ContactExtractor)(nil)
	_ sitecontact.RecordStore      = (*RecordStore)(nil)
)

// ContactParser is a mock implementation of sitecontact.ContactParser.
type ContactParser struct {
	ParseFn func(html, pageURL string) *sitecontact.ContactRecord
}

func (p *ContactParser) Parse(html, pageURL string) *sitecontact.ContactRecord {
	return p.ParseFn(html, pageURL)
}

// ContactExtractor is a mock implementation of sitecontact.ContactExtractor.
type ContactExtractor struct {
	ExtractFn      func(ctx context.Context, url string) (*sitecontact.ContactRecord, error)
	ExtractBatchFn func(ctx context.Context, urls []string, progress sitecontact.ExtractProgressFunc) ([]*sitecontact.ContactRecord, error)
}

func (e *ContactExtractor) Extract(ctx context.Context, url string) (*sitecontact.ContactRecord, error) {
	return e.ExtractFn(ctx, url)
}

func (e *ContactExtractor) ExtractBatch(ctx context.Context, urls []string, progress sitecontact.ExtractProgressFunc) ([]*sitecontact.ContactRecord, error) {
	return e.ExtractBatchFn(ctx, urls, progress)
}

// RecordStore is a mock implementation of sitecontact.RecordStore.
type RecordStore struct {
	SaveFn   func(ctx context.Context, record *sitecontact.ContactRecord) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *RecordStore) Save(ctx context.Context, record *sitecontact.ContactRecord) error {
	return s.SaveFn(ctx, record)
}

func (s *RecordStore) Commit() error {
	return s.CommitFn()
}

func (s *RecordStore) Abort() error {
	return s.AbortFn()
}
