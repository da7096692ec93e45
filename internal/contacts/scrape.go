package contacts

import (
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/bizradar/bizradar/internal/webtext"
)

var emailRE = regexp.MustCompile(`(?i)\b[A-Z0-9._%+\-]+@[A-Z0-9.\-]+\.[A-Z]{2,}\b`)

// contactPaths are the pages likely to carry a public email address.
var contactPaths = []string{"", "/", "/contact", "/contact-us", "/about", "/about-us", "/team", "/imprint", "/legal"}

// contactLinkKeywords select same-site links worth one extra hop.
var contactLinkKeywords = []string{"contact", "about", "impressum", "imprint", "legal", "team"}

const (
	scrapeFollowLimit = 3
	politeDelay       = 500 * time.Millisecond
)

// Scraper is the keyless fallback for contact discovery: a shallow
// crawl of contact-ish pages collecting raw email addresses. Names and
// titles are unknown at this level.
type Scraper struct {
	web    *webtext.Client
	logger *zap.Logger

	// delay spaces out requests; tests shorten it.
	delay func(context.Context, time.Duration)
}

func NewScraper(web *webtext.Client, logger *zap.Logger) *Scraper {
	return &Scraper{
		web:    web,
		logger: logger,
		delay:  politeWait,
	}
}

// Emails crawls the domain and returns up to limit contacts, in
// discovery order, deduplicated by exact address.
func (s *Scraper) Emails(ctx context.Context, domain string, limit int) []*Contact {
	if domain == "" || limit <= 0 {
		return nil
	}

	base := "https://" + domain
	var found []string

	for _, p := range contactPaths {
		rawHTML, err := s.web.Get(base + p)
		if err != nil {
			continue
		}
		found = append(found, emailRE.FindAllString(rawHTML, -1)...)
		if countUnique(found) >= limit {
			break
		}

		links := webtext.InternalLinks(rawHTML, base, contactLinkKeywords)
		if len(links) > scrapeFollowLimit {
			links = links[:scrapeFollowLimit]
		}
		for _, link := range links {
			linked, err := s.web.Get(link)
			if err != nil {
				continue
			}
			found = append(found, emailRE.FindAllString(linked, -1)...)
			if countUnique(found) >= limit {
				break
			}
		}
		if countUnique(found) >= limit {
			break
		}

		s.delay(ctx, politeDelay)
	}

	emails := dedupeKeepOrder(found)
	if len(emails) > limit {
		emails = emails[:limit]
	}

	out := make([]*Contact, 0, len(emails))
	for _, e := range emails {
		out = append(out, &Contact{Email: e, Source: "scrape"})
	}

	s.logger.Debug("site scrape done", zap.String("domain", domain), zap.Int("emails", len(out)))

	return out
}

func dedupeKeepOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func countUnique(items []string) int {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[it] = struct{}{}
	}
	return len(seen)
}

func politeWait(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
