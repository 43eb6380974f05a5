package crawl

import (
	"context"

	"github.com/indigonode/sitecontact"
)

// Compile-time interface verification.
var _ sitecontact.ContactExtractor = (*Scraper)(nil)

// Scraper fetches pages one at a time and parses each into a contact record.
type Scraper struct {
	Fetcher sitecontact.Fetcher
	Parser  sitecontact.ContactParser
}

// Extract fetches url and parses it into a record whose SourceURL is url
// exactly as given. Fetch failures are returned as EFETCH errors.
func (s *Scraper) Extract(ctx context.Context, url string) (*sitecontact.ContactRecord, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		if ctx.Err() == nil && sitecontact.ErrorCode(err) != sitecontact.EFETCH {
			err = sitecontact.Errorf(sitecontact.EFETCH, "fetch %s: %v", url, err)
		}
		return nil, err
	}

	record := s.Parser.Parse(html, url)
	record.SourceURL = url
	return record, nil
}

// ExtractBatch extracts each URL in input order. Failed URLs are reported
// through progress and left out of the result.
func (s *Scraper) ExtractBatch(ctx context.Context, urls []string, progress sitecontact.ExtractProgressFunc) ([]*sitecontact.ContactRecord, error) {
	records := make([]*sitecontact.ContactRecord, 0, len(urls))

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		record, err := s.Extract(ctx, url)
		if err != nil && ctx.Err() != nil {
			return records, ctx.Err()
		}
		if err == nil {
			records = append(records, record)
		}

		if progress != nil {
			progress(sitecontact.ExtractProgress{
				URL:       url,
				Completed: i + 1,
				Total:     len(urls),
				Error:     err,
			})
		}
	}

	return records, nil
}
