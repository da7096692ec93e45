// Package swot buckets tagged news headlines into a four-quadrant
// Strengths/Weaknesses/Opportunities/Threats summary.
package swot

import (
	"github.com/bizradar/bizradar/internal/news"
)

// Bucket names, also the output ordering.
const (
	Strengths     = "Strengths"
	Weaknesses    = "Weaknesses"
	Opportunities = "Opportunities"
	Threats       = "Threats"
)

// DefaultMaxPerBucket caps each bucket.
const DefaultMaxPerBucket = 5

const maxTitleLen = 240

// buckets maps a tag to its primary and optional secondary bucket.
type bucketPair struct {
	primary   string
	secondary string
}

var tagBuckets = map[string]bucketPair{
	news.TagFunding:       {Strengths, Opportunities},
	news.TagMNA:           {Strengths, Opportunities},
	news.TagPartner:       {Strengths, Opportunities},
	news.TagLaunch:        {Strengths, Opportunities},
	news.TagExpansion:     {Opportunities, Strengths},
	news.TagStrongResults: {Strengths, ""},

	news.TagLayoffs:     {Weaknesses, Threats},
	news.TagWeakResults: {Weaknesses, ""},
	news.TagLawsuit:     {Threats, Weaknesses},
	news.TagRegulatory:  {Threats, Weaknesses},
	news.TagRecall:      {Weaknesses, Threats},
	news.TagSecurity:    {Threats, Weaknesses},
	news.TagSupply:      {Threats, Weaknesses},
}

// Buckets holds the formatted lines per quadrant.
type Buckets struct {
	Strengths     []string `json:"Strengths"`
	Weaknesses    []string `json:"Weaknesses"`
	Opportunities []string `json:"Opportunities"`
	Threats       []string `json:"Threats"`
}

// Build tags every news item and distributes the formatted line into
// its primary bucket and, when distinct and under its own cap, the
// secondary bucket. A line never appears twice anywhere in the result;
// untagged items are skipped. maxPerBucket <= 0 uses the default.
func Build(items []*news.Item, maxPerBucket int) *Buckets {
	if maxPerBucket <= 0 {
		maxPerBucket = DefaultMaxPerBucket
	}

	out := &Buckets{
		Strengths:     []string{},
		Weaknesses:    []string{},
		Opportunities: []string{},
		Threats:       []string{},
	}
	seen := make(map[string]struct{})

	for _, item := range items {
		tag := news.TagHeadline(item.Title, item.Kind)
		if tag == "" {
			continue
		}
		pair, ok := tagBuckets[tag]
		if !ok {
			continue
		}

		line := formatLine(item)
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}

		primary := out.bucket(pair.primary)
		if len(*primary) < maxPerBucket {
			*primary = append(*primary, line)
		}
		if pair.secondary != "" && pair.secondary != pair.primary {
			secondary := out.bucket(pair.secondary)
			if len(*secondary) < maxPerBucket {
				*secondary = append(*secondary, line)
			}
		}
	}

	return out
}

func (b *Buckets) bucket(name string) *[]string {
	switch name {
	case Strengths:
		return &b.Strengths
	case Weaknesses:
		return &b.Weaknesses
	case Opportunities:
		return &b.Opportunities
	case Threats:
		return &b.Threats
	default:
		panic("unknown swot bucket: " + name)
	}
}

func formatLine(item *news.Item) string {
	title := item.Title
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen]
	}

	line := title
	if item.Date != "" {
		line += " (" + item.Date + ")"
	}
	if item.URL != "" {
		line += " — " + item.URL
	}
	return line
}
