package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bizradar/bizradar/internal/contacts"
)

func TestBuildRows(t *testing.T) {
	t.Parallel()

	list := []*contacts.Contact{
		{Name: "Jane Doe", Title: "CEO", Email: "jane@acme.com"},
		{Name: "Sam Roe", Title: "VP of Sales", Email: "sam@acme.com"},
	}

	rows := BuildRows("Acme", "Software & Services", "", "acme.com", list)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].URL != "https://acme.com" {
		t.Fatalf("bare domain not upgraded: %q", rows[0].URL)
	}
	if rows[1].ContactName != "Sam Roe" || rows[1].CompanyName != "Acme" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestBuildRowsWebsiteHintWins(t *testing.T) {
	t.Parallel()

	rows := BuildRows("Acme", "", "https://www.acme.com/about", "acme.com", nil)
	if rows[0].URL != "https://www.acme.com/about" {
		t.Fatalf("url = %q, want website hint", rows[0].URL)
	}
}

func TestBuildRowsNoContacts(t *testing.T) {
	t.Parallel()

	rows := BuildRows("Acme", "Software & Services", "", "", nil)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 placeholder row", len(rows))
	}
	row := rows[0]
	if row.CompanyName != "Acme" || row.ContactName != "" || row.Email != "" {
		t.Fatalf("unexpected placeholder row: %+v", row)
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir())
	w.now = func() time.Time { return time.Date(2024, 9, 1, 12, 30, 45, 0, time.UTC) }

	rows := BuildRows("Acme", "Software", "", "acme.com", []*contacts.Contact{
		{Name: "Jane Doe", Title: "CEO", Email: "jane@acme.com"},
	})

	path, err := w.WriteCSV(rows, "acme")
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if got := filepath.Base(path); got != "acme-20240901-123045.csv" {
		t.Fatalf("file name = %q", got)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header plus 1 row", len(records))
	}
	if records[0][0] != "company_name" || records[0][5] != "email" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	want := []string{"Acme", "Software", "https://acme.com", "Jane Doe", "CEO", "jane@acme.com"}
	for i, v := range want {
		if records[1][i] != v {
			t.Fatalf("column %d = %q, want %q", i, records[1][i], v)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir())
	w.now = func() time.Time { return time.Date(2024, 9, 1, 12, 30, 45, 0, time.UTC) }

	rows := BuildRows("Acme", "", "https://acme.com", "", nil)
	path, err := w.WriteJSON(rows, "acme")
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.HasSuffix(path, "acme-20240901-123045.json") {
		t.Fatalf("unexpected path %q", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var decoded []Row
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(decoded) != 1 || decoded[0].URL != "https://acme.com" {
		t.Fatalf("unexpected rows: %+v", decoded)
	}
}
