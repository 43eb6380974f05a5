package slog

import (
	"log/slog"
	"time"

	"github.com/indigonode/sitecontact"
)

// Ensure LoggingParser implements sitecontact.ContactParser.
var _ sitecontact.ContactParser = (*LoggingParser)(nil)

// LoggingParser wraps a ContactParser with debug logging of the detected fields.
type LoggingParser struct {
	next   sitecontact.ContactParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next sitecontact.ContactParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the detected fields.
func (p *LoggingParser) Parse(html, pageURL string) *sitecontact.ContactRecord {
	begin := time.Now()
	record := p.next.Parse(html, pageURL)
	p.logger.Info("contact detection",
		"url", pageURL,
		"email", orNone(record.ContactEmail),
		"phone", orNone(record.ContactPhone),
		"address", record.ContactAddress != "",
		"form", string(record.HasContactForm),
		"duration", time.Since(begin),
	)
	return record
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
