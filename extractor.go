package sitecontact

import "context"

// ContactParser applies the contact heuristics to a fetched page.
type ContactParser interface {
	// Parse never fails: fields with no signal are left empty and
	// HasContactForm defaults to FormNo. SourceURL is set to pageURL.
	Parse(html, pageURL string) *ContactRecord
}

// ContactExtractor fetches pages and turns them into contact records.
type ContactExtractor interface {
	// Extract fetches url and parses it. The only failure mode is an
	// EFETCH error (or the context's error).
	Extract(ctx context.Context, url string) (*ContactRecord, error)

	// ExtractBatch extracts each URL in order. URLs that fail to fetch are
	// dropped; the returned records keep the relative input order.
	// An error is returned only when ctx is done, together with the
	// records extracted so far.
	ExtractBatch(ctx context.Context, urls []string, progress ExtractProgressFunc) ([]*ContactRecord, error)
}

// ExtractProgress reports progress during batch extraction.
type ExtractProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ExtractProgressFunc is called after each URL of a batch is processed.
type ExtractProgressFunc func(ExtractProgress)

// RecordStore writes records to an output with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type RecordStore interface {
	Save(ctx context.Context, record *ContactRecord) error
	Commit() error
	Abort() error
}
