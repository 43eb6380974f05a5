package sitecontact

import (
	"net/url"
	"strings"
)

// skippedPrefixes are reference prefixes that never name a crawlable page.
var skippedPrefixes = []string{"#", "mailto:", "tel:", "javascript:"}

// IsSkippableRef reports whether ref is an in-page anchor or a mailto:,
// tel:, or javascript: reference.
func IsSkippableRef(ref string) bool {
	ref = strings.ToLower(strings.TrimSpace(ref))
	for _, p := range skippedPrefixes {
		if strings.HasPrefix(ref, p) {
			return true
		}
	}
	return false
}

// NormalizeURL resolves ref against base and returns the canonical crawl key,
// or "" if the reference is rejected.
//
// The canonical form keeps scheme, host, and path only. Query string and
// fragment are dropped, so /page?id=1 and /page?id=2 are the same crawl node.
// A single trailing slash is removed from the path and an empty path becomes
// "/". Only http and https URLs with a host are accepted.
func NormalizeURL(ref, base string) string {
	ref = strings.TrimSpace(ref)
	if IsSkippableRef(ref) {
		return ""
	}

	b, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return ""
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	u := b.ResolveReference(r)

	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if u.Host == "" {
		return ""
	}

	path := strings.TrimSuffix(u.EscapedPath(), "/")
	if path == "" {
		path = "/"
	}

	var sb strings.Builder
	sb.WriteString(u.Scheme)
	sb.WriteString("://")
	if u.User != nil {
		sb.WriteString(u.User.String())
		sb.WriteString("@")
	}
	sb.WriteString(u.Host)
	sb.WriteString(path)
	return sb.String()
}

// Domain returns the host of rawURL with a leading "www." removed,
// in lower case. Returns "" if the URL has no host.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}

// SameDomain reports whether a and b belong to the same site. Hosts are
// compared after removing a leading "www."; other subdomains are distinct.
func SameDomain(a, b string) bool {
	da := Domain(a)
	return da != "" && da == Domain(b)
}
