package news

import (
	"regexp"
	"strings"
)

const (
	KindFunding   = "Funding"
	KindMNA       = "M&A"
	KindExpansion = "Expansion"
	KindOther     = "Other"
)

var (
	amountRE  = regexp.MustCompile(`(?i)\$ ?(\d+(?:\.\d+)?)(?:\s?(k|m|b|bn))?`)
	seriesRE  = regexp.MustCompile(`(?i)\bseries\s+([A-Z]{1,2})\b`)
	acquireRE = regexp.MustCompile(`(?i)\b(acquires?|acquired|to acquire|merger|merges with|takeover)\b`)
	expandRE  = regexp.MustCompile(`(?i)\b(expands?|expansion|opens?|launches?|new\s+(office|plant|factory|facility|market))\b`)
	raiseRE   = regexp.MustCompile(`(?i)\b(raises?|raised|raise|funding|venture round|financing)\b`)
)

// kindFromText classifies a headline into a coarse event kind. M&A wins
// over funding wins over expansion when several cues are present.
func kindFromText(text string) string {
	switch {
	case acquireRE.MatchString(text):
		return KindMNA
	case raiseRE.MatchString(text):
		return KindFunding
	case expandRE.MatchString(text):
		return KindExpansion
	default:
		return KindOther
	}
}

// moneyFromText extracts a dollar amount like "$10M" or "$1.2B".
func moneyFromText(text string) string {
	m := amountRE.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	val, suffix := m[1], strings.ToLower(m[2])
	switch suffix {
	case "":
		return "$" + val
	case "k":
		return "$" + val + "K"
	case "m":
		return "$" + val + "M"
	case "b", "bn":
		return "$" + val + "B"
	default:
		return "$" + val + strings.ToUpper(suffix)
	}
}

// seriesFromText extracts a funding round label like "Series B".
func seriesFromText(text string) string {
	m := seriesRE.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return "Series " + strings.ToUpper(m[1])
}

// Summarize builds a short human line from headline hints.
func Summarize(company, title, pubDate, pageURL string) *Item {
	kind := kindFromText(title)

	datePart := ""
	if pubDate != "" {
		datePart = " on " + pubDate
	}

	var line string
	switch kind {
	case KindFunding:
		bits := []string{company, "raised"}
		if money := moneyFromText(title); money != "" {
			bits = append(bits, money)
		}
		if series := seriesFromText(title); series != "" {
			bits = append(bits, series)
		}
		line = strings.Join(bits, " ") + datePart + "."
	case KindMNA:
		line = company + " announced M&A activity" + datePart + "."
	case KindExpansion:
		line = company + " announced an expansion" + datePart + "."
	default:
		line = company + " related news" + datePart + "."
	}

	return &Item{
		Kind:    kind,
		Title:   title,
		Summary: line,
		URL:     pageURL,
		Date:    pubDate,
	}
}
