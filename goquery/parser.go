package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/indigonode/sitecontact"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var _ sitecontact.ContactParser = (*ContactParser)(nil)

// hiddenElements hold text that is never rendered.
var hiddenElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// ContactParser extracts contact records from HTML using tiered detectors.
type ContactParser struct{}

// NewContactParser creates a new ContactParser.
func NewContactParser() *ContactParser {
	return &ContactParser{}
}

// page is the parsed view of one document shared by all detectors.
type page struct {
	doc            *goquery.Document
	text           string
	pathHasContact bool
}

// Parse runs every detector chain over html. Malformed markup yields empty
// fields, never an error.
func (p *ContactParser) Parse(rawHTML, pageURL string) *sitecontact.ContactRecord {
	pg := newPage(rawHTML, pageURL)

	return &sitecontact.ContactRecord{
		CompanyName:    sitecontact.CompanyName(pageURL),
		Description:    sitecontact.Truncate(strings.TrimSpace(pg.doc.Find("title").First().Text()), sitecontact.MaxDescriptionLen),
		ContactEmail:   sitecontact.Truncate(firstMatch(pg, emailDetectors), sitecontact.MaxEmailLen),
		ContactPhone:   sitecontact.Truncate(firstMatch(pg, phoneDetectors), sitecontact.MaxPhoneLen),
		ContactAddress: sitecontact.Truncate(firstMatch(pg, addressDetectors), sitecontact.MaxAddressLen),
		HasContactForm: detectForm(pg),
		SourceURL:      pageURL,
	}
}

func newPage(rawHTML, pageURL string) *page {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		doc = goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
	}

	var path string
	if u, err := url.Parse(pageURL); err == nil {
		path = u.Path
	}

	return &page{
		doc:            doc,
		text:           nodesText(doc.Nodes),
		pathHasContact: strings.Contains(strings.ToLower(path), "contact"),
	}
}

// selectionText returns the visible text of a selection.
func selectionText(sel *goquery.Selection) string {
	return nodesText(sel.Nodes)
}

// nodesText joins the visible text nodes under nodes with single spaces,
// collapsing all runs of whitespace.
func nodesText(nodes []*html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			for _, f := range strings.Fields(n.Data) {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(f)
			}
			return
		case html.ElementNode:
			if hiddenElements[n.Data] {
				return
			}
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return b.String()
}
