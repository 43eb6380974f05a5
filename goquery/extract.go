package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/indigonode/sitecontact"
)

// Compile-time interface verification.
var _ sitecontact.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor collects the crawlable anchors of a page.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks returns every anchor target of the page normalized against
// pageURL, in document order, without duplicates. Anchors, mailto:, tel:,
// javascript:, and non-http(s) targets are omitted. No domain filtering is
// applied.
func (e *LinkExtractor) ExtractLinks(html, pageURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitecontact.Errorf(sitecontact.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || sitecontact.IsSkippableRef(href) {
			return
		}

		link := sitecontact.NormalizeURL(href, pageURL)
		if link == "" || seen[link] {
			return
		}
		seen[link] = true
		links = append(links, link)
	})

	return links, nil
}
