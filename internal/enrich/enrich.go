// Package enrich looks up a company's industry and sector through a
// chain of providers: Yahoo Finance, Wikidata, Google Knowledge Graph
// and finally offline name rules. The first provider returning a
// non-empty result wins.
package enrich

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Info is the enrichment outcome. Both fields may be empty when no
// provider knows the company.
type Info struct {
	Industry string `json:"industry,omitempty"`
	Sector   string `json:"sector,omitempty"`
}

type provider struct {
	name   string
	lookup func(company string) *Info
}

// Enricher runs the provider chain.
type Enricher struct {
	ctx        context.Context
	logger     *zap.Logger
	kgAPIKey   string
	HTTPClient *http.Client
	UserAgent  string

	// Endpoints are fields so tests can point them at a local server.
	YahooSearchURL  string
	YahooSummaryURL string
	SparqlURL       string
	KGURL           string
}

func New(ctx context.Context, logger *zap.Logger, kgAPIKey, userAgent string) *Enricher {
	return &Enricher{
		ctx:      ctx,
		logger:   logger,
		kgAPIKey: kgAPIKey,
		HTTPClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		UserAgent:       userAgent,
		YahooSearchURL:  yahooSearchURL,
		YahooSummaryURL: yahooSummaryURL,
		SparqlURL:       wikidataSparqlURL,
		KGURL:           googleKGURL,
	}
}

// IndustryInfo resolves industry and sector for the company. Provider
// errors are logged and skipped; the zero Info is the "unknown" answer.
func (e *Enricher) IndustryInfo(company string) *Info {
	company = strings.TrimSpace(company)
	if company == "" {
		return &Info{}
	}

	providers := []provider{
		{"yahoo", e.fromYahoo},
		{"wikidata", e.fromWikidata},
		{"google_kg", e.fromGoogleKG},
		{"name_rules", fromNameRules},
	}

	for _, p := range providers {
		info := p.lookup(company)
		if info != nil && (info.Industry != "" || info.Sector != "") {
			e.logger.Debug("industry provider hit",
				zap.String("provider", p.name),
				zap.String("industry", info.Industry),
				zap.String("sector", info.Sector),
			)
			return info
		}
	}

	return &Info{}
}
