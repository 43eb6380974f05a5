package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/indigonode/sitecontact"
	"github.com/indigonode/sitecontact/crawl"
	"github.com/indigonode/sitecontact/fs"
)

// emitRecords prints records to stdout and sends them to the sinks selected
// by out, then prints a field coverage summary to stderr.
func emitRecords(deps *Dependencies, records []*sitecontact.ContactRecord, out OutputFlags) error {
	if out.JSON {
		enc := json.NewEncoder(deps.Stdout)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
	} else {
		for _, r := range records {
			printRecord(deps.Stdout, r)
		}
	}

	if out.Out != "" {
		if err := writeRecordFile(deps.Ctx, out.Out, records); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote %d records to %s\n", len(records), out.Out)
	}

	if out.Save {
		saved, unchanged, err := saveRecords(deps, records)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved %d companies (%d unchanged)\n", saved, unchanged)
	}

	fmt.Fprintln(deps.Stderr, crawl.FormatFieldCoverage(records))
	return nil
}

func printRecord(w io.Writer, r *sitecontact.ContactRecord) {
	fmt.Fprintf(w, "%s  %s\n", r.CompanyName, r.SourceURL)
	printField(w, "description", r.Description)
	printField(w, "email", r.ContactEmail)
	printField(w, "phone", r.ContactPhone)
	printField(w, "address", r.ContactAddress)
	printField(w, "contact form", string(r.HasContactForm))
}

func printField(w io.Writer, label, value string) {
	if value != "" {
		fmt.Fprintf(w, "  %s: %s\n", label, value)
	}
}

// writeRecordFile writes records to path, replacing it only if every
// record was written.
func writeRecordFile(ctx context.Context, path string, records []*sitecontact.ContactRecord) error {
	store := fs.NewRecordFile(path)
	for _, r := range records {
		if err := store.Save(ctx, r); err != nil {
			_ = store.Abort()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return store.Commit()
}

// saveRecords stores records as companies. Records already saved with the
// same contents are counted as unchanged.
func saveRecords(deps *Dependencies, records []*sitecontact.ContactRecord) (saved, unchanged int, err error) {
	for _, r := range records {
		company := &sitecontact.Company{ContactRecord: *r}
		err := deps.Companies.CreateCompany(deps.Ctx, company)
		switch {
		case err == nil:
			saved++
		case sitecontact.ErrorCode(err) == sitecontact.ECONFLICT:
			unchanged++
		default:
			return saved, unchanged, err
		}
	}
	return saved, unchanged, nil
}

// reportFailures prints a line to w for each URL that could not be extracted.
func reportFailures(w io.Writer) sitecontact.ExtractProgressFunc {
	return func(p sitecontact.ExtractProgress) {
		if p.Error != nil {
			fmt.Fprintf(w, "  [%d/%d] skip %s: %s\n", p.Completed, p.Total, crawl.TruncateURL(p.URL, 60), errorText(p.Error))
		}
	}
}
