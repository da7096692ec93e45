package enrich

import (
	"regexp"
	"strings"
)

// sectorKeywords map industry wording to a sector, checked in order.
var sectorKeywords = []struct {
	sector   string
	keywords []string
}{
	{"Technology", []string{"software", "semiconductor", "electronics", "it services", "internet", "cloud", "ai", "saas"}},
	{"Consumer Discretionary", []string{
		"automotive", "auto", "auto manufacturer", "automobile", "motor", "vehicle", "car", "truck", "ev",
		"apparel", "retail", "ecommerce", "online retail", "leisure", "hotel", "restaurant",
	}},
	{"Communication Services", []string{"telecom", "media", "entertainment", "broadcast", "social media", "streaming"}},
	{"Financials", []string{"bank", "insurance", "asset management", "brokerage", "fintech", "financial", "credit", "capital"}},
	{"Health Care", []string{"pharma", "pharmaceutical", "biotechnology", "biotech", "medical", "health care", "medical devices"}},
	{"Industrials", []string{"industrial", "machinery", "aerospace", "defense", "logistics", "transportation", "construction", "engineering"}},
	{"Energy", []string{"oil", "gas", "energy", "renewable", "solar", "wind", "utilities energy"}},
	{"Materials", []string{"chemical", "chemicals", "mining", "steel", "materials", "commodity", "paper", "forest products"}},
	{"Utilities", []string{"utility", "utilities", "electric", "water", "power"}},
	{"Real Estate", []string{"real estate", "reit", "property"}},
	{"Consumer Staples", []string{"food", "beverage", "household products", "staples", "grocery", "tobacco"}},
}

type nameRule struct {
	pattern  *regexp.Regexp
	industry string
	sector   string
}

// nameRules is the offline last-resort provider: industry guessed from
// the company name itself.
var nameRules = []nameRule{
	{regexp.MustCompile(`(?i)\b(ford|toyota|honda|nissan|hyundai|kia|tesla|volkswagen|audi|porsche|bmw|mercedes|gm|general motors|stellantis)\b`),
		"Automotive", "Consumer Discretionary"},
	{regexp.MustCompile(`(?i)\b(motor|motors|automotive|auto( |-)?(mfg|maker|manufacturer)?)\b`),
		"Automotive", "Consumer Discretionary"},
	{regexp.MustCompile(`(?i)\b(bank|financial|finance|capital|holdings|insurance|assurance|brokerage)\b`),
		"Financial Services", "Financials"},
	{regexp.MustCompile(`(?i)\b(software|semiconductor|micro(electronics)?|systems|technolog(y|ies)|labs|networks|ai|cloud)\b`),
		"Software & Services", "Technology"},
	{regexp.MustCompile(`(?i)\b(pharma(ceutical)?|biotech(nology)?|medical|health(care)?|therapeutics|medicines?|devices?)\b`),
		"Health Care", "Health Care"},
	{regexp.MustCompile(`(?i)\b(aerospace|defense|machinery|industrial|logistics|transport(ation)?)\b`),
		"Industrials", "Industrials"},
	{regexp.MustCompile(`(?i)\b(chemical(s)?|materials?|mining|steel)\b`),
		"Materials", "Materials"},
	{regexp.MustCompile(`(?i)\b(oil|gas|petroleum|energy|renewable|solar|wind)\b`),
		"Energy", "Energy"},
	{regexp.MustCompile(`(?i)\b(food|beverage|grocery|tobacco)\b`),
		"Consumer Staples", "Consumer Staples"},
	{regexp.MustCompile(`(?i)\b(reit|real estate|property)\b`),
		"Real Estate", "Real Estate"},
}

// guessSector maps an industry label onto a sector by keyword lookup.
func guessSector(industry string) string {
	if industry == "" {
		return ""
	}
	low := strings.ToLower(industry)
	for _, entry := range sectorKeywords {
		for _, k := range entry.keywords {
			if strings.Contains(low, k) {
				return entry.sector
			}
		}
	}
	return ""
}

func fromNameRules(company string) *Info {
	name := strings.TrimSpace(company)
	for _, rule := range nameRules {
		if rule.pattern.MatchString(name) {
			return &Info{Industry: rule.industry, Sector: rule.sector}
		}
	}
	return nil
}
