package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/indigonode/sitecontact/mock"
	scslog "github.com/indigonode/sitecontact/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDiscoverer_Discover(t *testing.T) {
	t.Parallel()

	t.Run("logs crawl with budget and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SiteDiscoverer{
			DiscoverFn: func(ctx context.Context, seedURL string, maxPages int) ([]string, error) {
				return []string{"https://acme.example/", "https://acme.example/contact"}, nil
			},
		}

		d := scslog.NewLoggingDiscoverer(inner, logger)
		urls, err := d.Discover(context.Background(), "https://acme.example", 10)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "site discovery")
		assert.Contains(t, output, "url=https://acme.example")
		assert.Contains(t, output, "max_pages=10")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SiteDiscoverer{
			DiscoverFn: func(ctx context.Context, seedURL string, maxPages int) ([]string, error) {
				return nil, errors.New("crawl aborted")
			},
		}

		_, err := scslog.NewLoggingDiscoverer(inner, logger).Discover(context.Background(), "https://acme.example", 10)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"crawl aborted\"")
	})
}
