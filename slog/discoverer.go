package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/indigonode/sitecontact"
)

// Ensure LoggingDiscoverer implements sitecontact.SiteDiscoverer.
var _ sitecontact.SiteDiscoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a SiteDiscoverer with debug logging.
type LoggingDiscoverer struct {
	next   sitecontact.SiteDiscoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next sitecontact.SiteDiscoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the crawl.
func (d *LoggingDiscoverer) Discover(ctx context.Context, seedURL string, maxPages int) (urls []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("site discovery",
			"url", seedURL,
			"max_pages", maxPages,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Discover(ctx, seedURL, maxPages)
}
