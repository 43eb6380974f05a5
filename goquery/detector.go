package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/indigonode/sitecontact"
)

// Patterns shared by the detectors. Compiled once; never mutated.
var (
	emailPattern     = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	validEmail       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern     = regexp.MustCompile(`\+?[\d\s\-().]{10,}`)
	addressPattern   = regexp.MustCompile(`(?i)\d+[\s\w.-]+(?:street|st|avenue|ave|blvd|boulevard|road|rd|drive|dr|way|lane|ln|court|ct)\.?\s*[,\s]*[\w\s.-]+`)
	addressClass     = regexp.MustCompile(`(?i)address|location|office`)
	formEmbedPattern = regexp.MustCompile(`(?i)wufoo|typeform|jotform|google\.com/forms|forms\.office\.com|formstack|hubspot.*form|form`)
	formInputType    = regexp.MustCompile(`(?i)text|email|tel`)
)

// assetSuffixes are file extensions that look like top-level domains in
// strings such as "logo@2x.png".
var assetSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".css", ".js"}

const minPhoneDigits = 10

// Address element text must be strictly longer than minAddressText and
// shorter than maxAddressText characters.
const (
	minAddressText = 10
	maxAddressText = 400
)

// ancestorTextLen is how much of a form's nearest non-empty ancestor is
// searched for "contact".
const ancestorTextLen = 500

// detector extracts one field from a page, returning "" when its signal is absent.
type detector func(p *page) string

// formDetector decides contact-form presence. ok is false when the detector
// has no opinion and the next one should run.
type formDetector func(p *page) (presence sitecontact.FormPresence, ok bool)

// Detector chains, in priority order. The first non-empty result wins.
var (
	emailDetectors   = []detector{mailtoEmail, textEmail}
	phoneDetectors   = []detector{telPhone, textPhone}
	addressDetectors = []detector{addressElement, addressClassElement, textAddress}
	formDetectors    = []formDetector{inPageForm, embeddedForm}
)

// firstMatch runs detectors in order and returns the first non-empty value.
func firstMatch(p *page, detectors []detector) string {
	for _, d := range detectors {
		if v := d(p); v != "" {
			return v
		}
	}
	return ""
}

// detectForm runs the form detectors and defaults to FormNo.
func detectForm(p *page) sitecontact.FormPresence {
	for _, d := range formDetectors {
		if v, ok := d(p); ok {
			return v
		}
	}
	return sitecontact.FormNo
}

// mailtoEmail returns the first valid address from a mailto: anchor.
func mailtoEmail(p *page) string {
	var email string
	p.doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		addr, ok := cutPrefixFold(strings.TrimSpace(href), "mailto:")
		if !ok {
			return true
		}
		addr, _, _ = strings.Cut(addr, "?")
		addr, _, _ = strings.Cut(addr, ",")
		if unescaped, err := url.PathUnescape(addr); err == nil {
			addr = unescaped
		}
		addr = strings.TrimSpace(addr)
		if validEmail.MatchString(addr) {
			email = addr
			return false
		}
		return true
	})
	return email
}

// textEmail returns the first email-shaped token in the visible text.
func textEmail(p *page) string {
	for _, m := range emailPattern.FindAllString(p.text, -1) {
		if !hasAssetSuffix(m) {
			return m
		}
	}
	return ""
}

// telPhone returns the first tel: anchor value with enough digits.
func telPhone(p *page) string {
	var phone string
	p.doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		raw, ok := cutPrefixFold(strings.TrimSpace(href), "tel:")
		if !ok {
			return true
		}
		if unescaped, err := url.PathUnescape(raw); err == nil {
			raw = unescaped
		}
		raw = strings.TrimSpace(raw)
		if countDigits(raw) >= minPhoneDigits {
			phone = raw
			return false
		}
		return true
	})
	return phone
}

// textPhone returns the first phone-shaped run in the visible text with
// enough digits.
func textPhone(p *page) string {
	for _, m := range phonePattern.FindAllString(p.text, -1) {
		if countDigits(m) >= minPhoneDigits {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// addressElement returns the text of the first <address> element.
func addressElement(p *page) string {
	return selectionText(p.doc.Find("address").First())
}

// addressClassElement returns the text of the first element whose class
// hints at an address and whose text has a plausible length.
func addressClassElement(p *page) string {
	var address string
	p.doc.Find("[class]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if !hasClassMatching(el, addressClass) {
			return true
		}
		text := selectionText(el)
		if n := utf8.RuneCountInString(text); n > minAddressText && n < maxAddressText {
			address = text
			return false
		}
		return true
	})
	return address
}

// textAddress returns the first street-address-shaped run in the visible text.
func textAddress(p *page) string {
	return strings.TrimSpace(addressPattern.FindString(p.text))
}

// inPageForm decides presence when the page has at least one <form>.
// Any contact signal on any form means Yes; otherwise the URL path decides.
func inPageForm(p *page) (sitecontact.FormPresence, bool) {
	forms := p.doc.Find("form")
	if forms.Length() == 0 {
		return "", false
	}
	if p.pathHasContact {
		return sitecontact.FormYes, true
	}

	found := false
	forms.EachWithBreak(func(_ int, form *goquery.Selection) bool {
		found = formAttrsMention(form, "contact") ||
			nearestAncestorMentions(form, "contact") ||
			hasMessageInputs(form)
		return !found
	})
	if found {
		return sitecontact.FormYes, true
	}
	return sitecontact.FormNo, true
}

// embeddedForm reports Yes for an iframe that looks like a hosted form.
func embeddedForm(p *page) (sitecontact.FormPresence, bool) {
	found := false
	p.doc.Find("iframe").EachWithBreak(func(_ int, iframe *goquery.Selection) bool {
		src := strings.ToLower(iframe.AttrOr("src", ""))
		id := strings.ToLower(iframe.AttrOr("id", ""))
		class := strings.ToLower(iframe.AttrOr("class", ""))

		if formEmbedPattern.MatchString(src) || formEmbedPattern.MatchString(id) || formEmbedPattern.MatchString(class) {
			found = true
		} else if p.pathHasContact && (strings.Contains(id, "form") || strings.Contains(class, "form") || strings.Contains(src, "form")) {
			found = true
		}
		return !found
	})
	if found {
		return sitecontact.FormYes, true
	}
	return "", false
}

// formAttrsMention reports whether the form's action, id, or class contains word.
func formAttrsMention(form *goquery.Selection, word string) bool {
	for _, attr := range []string{"action", "id", "class"} {
		if strings.Contains(strings.ToLower(form.AttrOr(attr, "")), word) {
			return true
		}
	}
	return false
}

// nearestAncestorMentions checks only the closest ancestor that has any text.
func nearestAncestorMentions(form *goquery.Selection, word string) bool {
	mentioned := false
	form.Parents().EachWithBreak(func(_ int, parent *goquery.Selection) bool {
		text := selectionText(parent)
		if text == "" {
			return true
		}
		mentioned = strings.Contains(strings.ToLower(sitecontact.Truncate(text, ancestorTextLen)), word)
		return false
	})
	return mentioned
}

// hasMessageInputs reports whether a text-like input or textarea in the form
// is named like a message field. An input with no type attribute is text.
func hasMessageInputs(form *goquery.Selection) bool {
	var names []string
	form.Find("input, textarea").Each(func(_ int, in *goquery.Selection) {
		if goquery.NodeName(in) == "input" {
			typ, ok := in.Attr("type")
			if ok && !formInputType.MatchString(typ) {
				return
			}
		}
		name := in.AttrOr("name", "")
		if name == "" {
			name = in.AttrOr("id", "")
		}
		names = append(names, strings.ToLower(name))
	})
	joined := strings.Join(names, " ")
	return strings.Contains(joined, "email") || strings.Contains(joined, "message") || strings.Contains(joined, "name")
}

// hasClassMatching reports whether any single class token matches re.
func hasClassMatching(el *goquery.Selection, re *regexp.Regexp) bool {
	for _, class := range strings.Fields(el.AttrOr("class", "")) {
		if re.MatchString(class) {
			return true
		}
	}
	return false
}

func hasAssetSuffix(s string) bool {
	lower := strings.ToLower(s)
	for _, suffix := range assetSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// cutPrefixFold is strings.CutPrefix with ASCII case folding.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
