package contacts

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/bizradar/bizradar/internal/webtext"
)

// Finder resolves a company to a domain and discovers contacts for it,
// preferring Hunter.io and falling back to the site scrape. The hunter
// client may be nil when no API key is configured.
type Finder struct {
	web     *webtext.Client
	hunter  *HunterClient
	scraper *Scraper
	logger  *zap.Logger
}

func NewFinder(web *webtext.Client, hunter *HunterClient, logger *zap.Logger) *Finder {
	return &Finder{
		web:     web,
		hunter:  hunter,
		scraper: NewScraper(web, logger),
		logger:  logger,
	}
}

// Find returns up to limit contacts for the company. An unresolvable
// company yields an empty list, not an error.
func (f *Finder) Find(ctx context.Context, company, websiteHint string, limit int) []*Contact {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil
	}

	domain := f.web.ResolveCompanyDomain(company, websiteHint)
	if domain == "" {
		f.logger.Info("no resolvable domain for company", zap.String("company", company))
		return nil
	}
	f.logger.Debug("resolved company domain", zap.String("company", company), zap.String("domain", domain))

	if f.hunter != nil {
		found, err := f.hunter.DomainSearch(domain, limit)
		if err != nil {
			f.logger.Warn("hunter lookup failed, falling back to site scrape", zap.Error(err))
		} else if len(found) > 0 {
			return found
		}
	}

	return f.scraper.Emails(ctx, domain, limit)
}
