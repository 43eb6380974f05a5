package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/indigonode/sitecontact"
	main "github.com/indigonode/sitecontact/cmd/sitecontact"
	"github.com/indigonode/sitecontact/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints crawled URLs one per line", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			NewDiscoverer: func(filter *sitecontact.URLFilter) sitecontact.SiteDiscoverer {
				assert.Nil(t, filter)
				return &mock.SiteDiscoverer{
					DiscoverFn: func(_ context.Context, seedURL string, maxPages int) ([]string, error) {
						return []string{"https://acme.com/", "https://acme.com/team"}, nil
					},
				}
			},
		}

		err := (&main.DiscoverCmd{URL: "https://acme.com", MaxPages: 50}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://acme.com/\nhttps://acme.com/team\n", stdout.String())
	})

	t.Run("uses sitemaps when requested and caps the result", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, baseURL string, filter *sitecontact.URLFilter) ([]string, error) {
					require.NotNil(t, filter)
					return []string{"https://acme.com/contact", "https://acme.com/contact/sales", "https://acme.com/contact/press"}, nil
				},
			},
		}

		cmd := &main.DiscoverCmd{URL: "https://acme.com", MaxPages: 2, Sitemap: true, Filter: []string{"contact"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://acme.com/contact\nhttps://acme.com/contact/sales\n", stdout.String())
	})

	t.Run("notes when nothing is found", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			NewDiscoverer: func(*sitecontact.URLFilter) sitecontact.SiteDiscoverer {
				return &mock.SiteDiscoverer{
					DiscoverFn: func(context.Context, string, int) ([]string, error) { return nil, nil },
				}
			},
		}

		err := (&main.DiscoverCmd{URL: "https://down.example", MaxPages: 50}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "No pages found for https://down.example")
	})
}
