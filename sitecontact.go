// Package sitecontact extracts public contact information from company
// websites. It discovers same-domain pages breadth-first from a seed URL,
// pulls company name, title, email, phone, postal address, and contact-form
// presence out of each page, and keeps curated records in a local database.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package sitecontact
