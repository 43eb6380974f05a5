package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/indigonode/sitecontact"
)

// Ensure LoggingExtractor implements sitecontact.ContactExtractor.
var _ sitecontact.ContactExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ContactExtractor with debug logging.
type LoggingExtractor struct {
	next   sitecontact.ContactExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sitecontact.ContactExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs which fields were found.
func (e *LoggingExtractor) Extract(ctx context.Context, url string) (record *sitecontact.ContactRecord, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url}
		if record != nil {
			attrs = append(attrs,
				"company", record.CompanyName,
				"email", record.ContactEmail != "",
				"phone", record.ContactPhone != "",
				"address", record.ContactAddress != "",
				"form", string(record.HasContactForm),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(ctx, url)
}

// ExtractBatch delegates to the wrapped extractor and logs the batch outcome.
func (e *LoggingExtractor) ExtractBatch(ctx context.Context, urls []string, progress sitecontact.ExtractProgressFunc) (records []*sitecontact.ContactRecord, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract batch",
			"urls", len(urls),
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractBatch(ctx, urls, progress)
}
