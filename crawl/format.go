package crawl

import (
	"fmt"

	"github.com/indigonode/sitecontact"
)

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatFieldCoverage summarizes how many records have each contact field,
// e.g. "3 records: 2 email, 1 phone, 0 address, 1 form".
func FormatFieldCoverage(records []*sitecontact.ContactRecord) string {
	var email, phone, address, form int
	for _, r := range records {
		if r.ContactEmail != "" {
			email++
		}
		if r.ContactPhone != "" {
			phone++
		}
		if r.ContactAddress != "" {
			address++
		}
		if r.HasContactForm == sitecontact.FormYes {
			form++
		}
	}
	noun := "records"
	if len(records) == 1 {
		noun = "record"
	}
	return fmt.Sprintf("%d %s: %d email, %d phone, %d address, %d form", len(records), noun, email, phone, address, form)
}
