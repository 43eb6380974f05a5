package main

import (
	"context"
	"io"
	"time"

	"github.com/indigonode/sitecontact"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Companies sitecontact.CompanyService
	Sitemaps  sitecontact.SitemapService
	Extractor sitecontact.ContactExtractor

	// NewDiscoverer builds a site discoverer restricted by filter, which may be nil.
	NewDiscoverer func(filter *sitecontact.URLFilter) sitecontact.SiteDiscoverer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB        string        `help:"Database path (default: ~/.sitecontact/sitecontact.db)" env:"SITECONTACT_DB"`
	Timeout   time.Duration `default:"10s" help:"Fetch timeout per page" env:"SITECONTACT_TIMEOUT"`
	UserAgent string        `default:"Mozilla/5.0 (compatible; sitecontact/1.0)" help:"User-Agent header for requests" env:"SITECONTACT_USER_AGENT"`
	Verbose   bool          `short:"v" help:"Log every fetch and detection to stderr"`

	Discover DiscoverCmd `cmd:"" help:"List same-domain pages reachable from a URL"`
	Extract  ExtractCmd  `cmd:"" help:"Extract contact information from URLs"`
	Crawl    CrawlCmd    `cmd:"" help:"Discover a site's pages and extract contact information from each"`
	List     ListCmd     `cmd:"" help:"List saved companies"`
	Show     ShowCmd     `cmd:"" help:"Show a saved company"`
	Update   UpdateCmd   `cmd:"" help:"Correct fields of a saved company"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a saved company"`
	Stats    StatsCmd    `cmd:"" help:"Show contact field coverage of saved companies"`
	Export   ExportCmd   `cmd:"" help:"Export saved companies to a CSV or NDJSON file"`
}

// OutputFlags control where extracted records go.
type OutputFlags struct {
	Save bool   `short:"s" help:"Save records to the database, skipping unchanged ones"`
	Out  string `short:"o" help:"Write records to a file (.csv for CSV, NDJSON otherwise)"`
	JSON bool   `name:"json" help:"Print records as NDJSON"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL      string   `arg:"" help:"Seed URL"`
	MaxPages int      `short:"n" default:"50" help:"Maximum number of pages to list"`
	Sitemap  bool     `help:"Read pages from the site's sitemaps instead of crawling"`
	Filter   []string `short:"F" help:"Only keep URLs matching regex (repeatable)"`
	Exclude  []string `short:"x" help:"Drop URLs matching regex (repeatable)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs  []string `arg:"" optional:"" name:"url" help:"Page URLs"`
	Input string   `short:"i" type:"existingfile" help:"Read URLs from a file (text, CSV with url column, or NDJSON)"`

	OutputFlags `embed:""`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL      string   `arg:"" help:"Seed URL"`
	MaxPages int      `short:"n" default:"50" help:"Maximum number of pages to visit"`
	Filter   []string `short:"F" help:"Only follow URLs matching regex (repeatable)"`
	Exclude  []string `short:"x" help:"Skip URLs matching regex (repeatable)"`

	OutputFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Search string `short:"q" help:"Match company name, email, or phone"`
	Limit  int    `default:"20" help:"Maximum number of companies to show (0 for all)"`
	Offset int    `help:"Number of companies to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Company ID"`
	JSON bool   `name:"json" help:"Print as JSON"`
}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct {
	ID          string   `arg:"" help:"Company ID"`
	Name        string   `help:"Company name"`
	Description string   `help:"Description"`
	Email       string   `help:"Contact email"`
	Phone       string   `help:"Contact phone"`
	Address     string   `help:"Contact address"`
	Form        string   `help:"Contact form presence (Yes or No)"`
	Clear       []string `help:"Fields to clear: description, email, phone, or address (repeatable)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Company ID"`
	Force bool   `help:"Confirm deletion"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Path   string `arg:"" help:"Output file (.csv for CSV, NDJSON otherwise)"`
	Search string `short:"q" help:"Only export companies matching this search"`
}
