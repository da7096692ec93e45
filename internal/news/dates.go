package news

import (
	"strings"
	"time"
)

// dateLayouts cover RFC822-ish RSS dates, ISO8601 and a few simple
// human formats seen in article metadata.
var dateLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// NormalizeDate tries to reduce a date string to YYYY-MM-DD. Unparseable
// input is returned as-is; empty input stays empty.
func NormalizeDate(d string) string {
	d = strings.TrimSpace(d)
	if d == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, d); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return d
}
