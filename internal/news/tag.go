package news

import (
	"regexp"
	"strings"
)

// Tag names assigned to headlines. They key into the SWOT bucket table.
const (
	TagFunding       = "funding"
	TagMNA           = "mna"
	TagPartner       = "partner"
	TagLaunch        = "launch"
	TagExpansion     = "expansion"
	TagStrongResults = "strong_results"
	TagLayoffs       = "layoffs"
	TagWeakResults   = "weak_results"
	TagLawsuit       = "lawsuit"
	TagRegulatory    = "regulatory"
	TagRecall        = "recall"
	TagSecurity      = "security"
	TagSupply        = "supply"
)

type taggerRule struct {
	pattern *regexp.Regexp
	tag     string
}

// taggerRules is a priority list: the first matching pattern wins, so
// the order is part of the behavior. Positive, strength-leaning topics
// come before negative ones.
var taggerRules = []taggerRule{
	{regexp.MustCompile(`\b(raises?|raised|funding|financing|series [a-z])\b`), TagFunding},
	{regexp.MustCompile(`\b(acquires?|acquired|acquisition|merger|merges with|takeover)\b`), TagMNA},
	{regexp.MustCompile(`\b(partnership|partners with|collaborat(es|ion)|alliance)\b`), TagPartner},
	{regexp.MustCompile(`\b(launch(es|ed)?|introduc(es|ed)|rolls out|unveil(s|ed)?)\b`), TagLaunch},
	{regexp.MustCompile(`\b(expands?|expansion|opens new|new (office|plant|factory|facility|market))\b`), TagExpansion},
	{regexp.MustCompile(`\b(record (revenue|profit|growth)|beats? (expectations|estimates))\b`), TagStrongResults},
	{regexp.MustCompile(`\b(layoffs?|cuts jobs|job cuts|workforce reduction)\b`), TagLayoffs},
	{regexp.MustCompile(`\b(loss|decline|misses? estimates|misses? expectations)\b`), TagWeakResults},
	{regexp.MustCompile(`\b(lawsuit|sued|litigation|class action)\b`), TagLawsuit},
	{regexp.MustCompile(`\b(fined?|penalty|sanction)\b`), TagRegulatory},
	{regexp.MustCompile(`\b(recall(s|ed)?|safety issue|defect)\b`), TagRecall},
	{regexp.MustCompile(`\b(data breach|cyberattack|ransomware|security incident)\b`), TagSecurity},
	{regexp.MustCompile(`\b(supply chain disruption|shortage|strike|union action)\b`), TagSupply},
}

// TagHeadline classifies a headline. A pre-classified kind wins when it
// maps onto a tag; otherwise the title runs through the priority list.
// Empty result means untagged.
func TagHeadline(title, kind string) string {
	switch k := strings.ToLower(kind); {
	case strings.Contains(k, "fund"):
		return TagFunding
	case strings.Contains(k, "m&a"), strings.Contains(k, "acquisition"):
		return TagMNA
	case strings.Contains(k, "expansion"):
		return TagExpansion
	}

	t := strings.ToLower(title)
	for _, rule := range taggerRules {
		if rule.pattern.MatchString(t) {
			return rule.tag
		}
	}
	return ""
}
