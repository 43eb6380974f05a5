// Package fs reads URL lists and writes extracted records to local files.
package fs

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/indigonode/sitecontact"
)

// ReadURLs reads URLs from path. Files ending in .csv must have a "url"
// header column. Any other file holds one entry per line, either a bare URL
// or an NDJSON object with a "url" field. Blank lines and lines starting
// with # are skipped.
func ReadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readCSV(f)
	}
	return readLines(f)
}

func readCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'

	header, err := cr.Read()
	if err == io.EOF {
		return nil, sitecontact.Errorf(sitecontact.EINVALID, "empty csv")
	}
	if err != nil {
		return nil, sitecontact.Errorf(sitecontact.EINVALID, "reading csv: %v", err)
	}

	col := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), "url") {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, sitecontact.Errorf(sitecontact.EINVALID, "csv must contain a 'url' header column")
	}

	var out []string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, sitecontact.Errorf(sitecontact.EINVALID, "reading csv: %v", err)
		}
		if col < len(row) {
			if u := strings.TrimSpace(row[col]); u != "" {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "{") {
			var obj struct {
				URL string `json:"url"`
			}
			if err := json.Unmarshal([]byte(line), &obj); err != nil {
				return nil, sitecontact.Errorf(sitecontact.EINVALID, "invalid json line %q: %v", line, err)
			}
			if u := strings.TrimSpace(obj.URL); u != "" {
				out = append(out, u)
			}
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
