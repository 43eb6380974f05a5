package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/indigonode/sitecontact"
	"github.com/indigonode/sitecontact/crawl"
	"github.com/indigonode/sitecontact/goquery"
	schttp "github.com/indigonode/sitecontact/http"
	scslog "github.com/indigonode/sitecontact/slog"
	"github.com/indigonode/sitecontact/sqlite"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor SITECONTACT_DB is set.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Companies sitecontact.CompanyService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments. Failures are reported on
// stderr as "error: <message>" and returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorText(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitecontact"),
		kong.Description("Discover company website pages and extract contact information"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return sitecontact.Errorf(sitecontact.EINVALID, "no command specified. Run 'sitecontact --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	if needsDB(cmd, cli) {
		path := cli.DB
		if path == "" {
			path = m.DBPath
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SITECONTACT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()

		var companies sitecontact.CompanyService = sqlite.NewCompanyService(m.DB)
		if logger != nil {
			companies = scslog.NewLoggingCompanyService(companies, logger)
		}
		m.Companies = companies
		deps.Companies = companies
	}

	var fetcher sitecontact.Fetcher = schttp.NewFetcher(
		schttp.WithTimeout(cli.Timeout),
		schttp.WithUserAgent(cli.UserAgent),
	)
	defer fetcher.Close()

	var contacts sitecontact.ContactParser = goquery.NewContactParser()
	var sitemaps sitecontact.SitemapService = schttp.NewSitemapService(&http.Client{Timeout: cli.Timeout}, cli.UserAgent)
	if logger != nil {
		fetcher = scslog.NewLoggingFetcher(fetcher, logger)
		contacts = scslog.NewLoggingParser(contacts, logger)
		sitemaps = scslog.NewLoggingSitemapService(sitemaps, logger)
	}

	links := goquery.NewLinkExtractor()
	deps.Sitemaps = sitemaps
	deps.NewDiscoverer = func(filter *sitecontact.URLFilter) sitecontact.SiteDiscoverer {
		var d sitecontact.SiteDiscoverer = &crawl.Discoverer{Fetcher: fetcher, Links: links, Filter: filter}
		if logger != nil {
			d = scslog.NewLoggingDiscoverer(d, logger)
		}
		return d
	}

	var extractor sitecontact.ContactExtractor = &crawl.Scraper{Fetcher: fetcher, Parser: contacts}
	if logger != nil {
		extractor = scslog.NewLoggingExtractor(extractor, logger)
	}
	deps.Extractor = extractor

	return kongCtx.Run(deps)
}

// needsDB reports whether the selected command reads or writes the store.
func needsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "extract":
		return cli.Extract.Save
	case "crawl":
		return cli.Crawl.Save
	case "discover":
		return false
	}
	return true
}

// errorText returns the user-facing text of err.
func errorText(err error) string {
	if sitecontact.ErrorCode(err) == sitecontact.EINTERNAL {
		return err.Error()
	}
	return sitecontact.ErrorMessage(err)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitecontact.db"
	}
	dir := filepath.Join(home, ".sitecontact")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitecontact.db")
}
