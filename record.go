package sitecontact

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Field length caps, in characters.
const (
	MaxDescriptionLen = 500
	MaxEmailLen       = 200
	MaxPhoneLen       = 50
	MaxAddressLen     = 300
)

// UnknownCompany is the company name used when a page URL has no host.
const UnknownCompany = "unknown"

// FormPresence reports whether a page offers a way to send a message.
type FormPresence string

// Form presence values.
const (
	FormYes FormPresence = "Yes"
	FormNo  FormPresence = "No"
)

// Valid reports whether p is one of the known values.
func (p FormPresence) Valid() bool {
	return p == FormYes || p == FormNo
}

// ContactRecord is the contact information extracted from one fetched page.
// Empty strings mean the field was not found.
type ContactRecord struct {
	CompanyName    string       `json:"companyName"`
	Description    string       `json:"description"`
	ContactEmail   string       `json:"contactEmail"`
	ContactPhone   string       `json:"contactPhone"`
	ContactAddress string       `json:"contactAddress"`
	HasContactForm FormPresence `json:"hasContactForm"`

	// SourceURL is the URL exactly as supplied to the extractor.
	SourceURL string `json:"sourceUrl"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ContactRecord) Validate() error {
	if r.CompanyName == "" {
		return Errorf(EINVALID, "company name required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	if !r.HasContactForm.Valid() {
		return Errorf(EINVALID, "contact form must be %q or %q", FormYes, FormNo)
	}
	if utf8.RuneCountInString(r.Description) > MaxDescriptionLen {
		return Errorf(EINVALID, "description longer than %d characters", MaxDescriptionLen)
	}
	if utf8.RuneCountInString(r.ContactEmail) > MaxEmailLen {
		return Errorf(EINVALID, "email longer than %d characters", MaxEmailLen)
	}
	if utf8.RuneCountInString(r.ContactPhone) > MaxPhoneLen {
		return Errorf(EINVALID, "phone longer than %d characters", MaxPhoneLen)
	}
	if utf8.RuneCountInString(r.ContactAddress) > MaxAddressLen {
		return Errorf(EINVALID, "address longer than %d characters", MaxAddressLen)
	}
	return nil
}

// Fingerprint returns a stable serialization of the record's contents,
// suitable for hashing. SourceURL is included; nothing time-dependent is.
func (r *ContactRecord) Fingerprint() string {
	return strings.Join([]string{
		r.SourceURL,
		r.CompanyName,
		r.Description,
		r.ContactEmail,
		r.ContactPhone,
		r.ContactAddress,
		string(r.HasContactForm),
	}, "\x1f")
}

// CompanyName derives a company name from the host of pageURL: a leading
// "www." is dropped and the first remaining label is returned in lower case.
// Returns UnknownCompany when there is no host.
func CompanyName(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return UnknownCompany
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "" {
		return UnknownCompany
	}
	name, _, _ := strings.Cut(host, ".")
	if name == "" {
		return UnknownCompany
	}
	return name
}

// Truncate returns s cut to at most n characters.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
