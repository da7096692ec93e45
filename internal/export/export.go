// Package export flattens prospecting results into rows and writes
// them as timestamped CSV or JSON files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bizradar/bizradar/internal/contacts"
)

// DefaultDir is where export files land unless overridden.
const DefaultDir = "exports"

const timestampLayout = "20060102-150405"

// Row is one flat export record. A company without contacts still
// yields one row with empty contact fields.
type Row struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	URL         string `json:"url"`
	ContactName string `json:"contact_name"`
	Title       string `json:"title"`
	Email       string `json:"email"`
}

var csvHeader = []string{"company_name", "industry", "url", "contact_name", "title", "email"}

// Writer writes export files under a directory. The now hook exists
// for tests; nil means time.Now.
type Writer struct {
	Dir string
	now func() time.Time
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = DefaultDir
	}
	return &Writer{Dir: dir}
}

// BuildRows flattens a company and its contacts. The website hint
// wins over the bare domain for the url column; a bare domain is
// upgraded to an https URL.
func BuildRows(company, industry, websiteHint, domain string, list []*contacts.Contact) []Row {
	base := Row{
		CompanyName: company,
		Industry:    industry,
		URL:         coalesceURL(websiteHint, domain),
	}

	if len(list) == 0 {
		return []Row{base}
	}

	rows := make([]Row, 0, len(list))
	for _, c := range list {
		row := base
		row.ContactName = c.Name
		row.Title = c.Title
		row.Email = c.Email
		rows = append(rows, row)
	}
	return rows
}

func coalesceURL(websiteHint, domain string) string {
	if url := strings.TrimSpace(websiteHint); url != "" {
		return url
	}
	dom := strings.TrimSpace(domain)
	if dom == "" {
		return ""
	}
	if !strings.HasPrefix(dom, "http") {
		return "https://" + dom
	}
	return dom
}

// WriteCSV saves the rows as <basename>-<timestamp>.csv and returns
// the path.
func (w *Writer) WriteCSV(rows []Row, basename string) (string, error) {
	path, f, err := w.create(basename, "csv")
	if err != nil {
		return "", err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return "", err
	}
	for _, row := range rows {
		record := []string{row.CompanyName, row.Industry, row.URL, row.ContactName, row.Title, row.Email}
		if err := cw.Write(record); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return path, nil
}

// WriteJSON saves the rows as <basename>-<timestamp>.json and returns
// the path.
func (w *Writer) WriteJSON(rows []Row, basename string) (string, error) {
	path, f, err := w.create(basename, "json")
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rows); err != nil {
		return "", err
	}
	return path, nil
}

func (w *Writer) create(basename, ext string) (string, *os.File, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", nil, err
	}

	now := time.Now
	if w.now != nil {
		now = w.now
	}
	name := fmt.Sprintf("%s-%s.%s", basename, now().Format(timestampLayout), ext)
	path := filepath.Join(w.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", nil, err
	}
	return path, f, nil
}
