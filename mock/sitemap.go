package mock

import (
	"context"

	"github.com/indigonode/sitecontact"
)

var _ sitecontact.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of sitecontact.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *sitecontact.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *sitecontact.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
