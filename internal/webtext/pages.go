package webtext

import (
	"net/url"

	"go.uber.org/zap"

	"github.com/bizradar/bizradar/internal/keyword"
)

// commonPaths are fetched for every domain before following links.
var commonPaths = []string{"", "/", "/about", "/about-us", "/solutions", "/products", "/platform", "/contact"}

// sectionKeywords select the same-site links worth following.
var sectionKeywords = []string{"solution", "product", "platform", "case", "customers"}

// DefaultMaxFollow limits how many internal links are followed per page.
const DefaultMaxFollow = 3

// FetchPages downloads the homepage and a set of well-known pages for
// the domain, lightly follows a few relevant internal links and returns
// (url, visible text) records in fetch order. Fetch failures are
// skipped, so the result may be shorter than the path list or empty.
func (c *Client) FetchPages(domain string, extraPaths []string, maxFollow int) []keyword.Page {
	base := "https://" + domain
	paths := append(append([]string{}, commonPaths...), extraPaths...)

	var pages []keyword.Page
	for _, p := range paths {
		pageURL, err := url.JoinPath(base, p)
		if err != nil {
			continue
		}

		rawHTML, err := c.Get(pageURL)
		if err != nil {
			c.logger.Debug("skipping page", zap.String("url", pageURL), zap.Error(err))
			continue
		}
		pages = append(pages, keyword.Page{URL: pageURL, Text: VisibleText(rawHTML)})

		links := InternalLinks(rawHTML, base, sectionKeywords)
		if maxFollow > 0 && len(links) > maxFollow {
			links = links[:maxFollow]
		}
		for _, link := range links {
			linked, err := c.Get(link)
			if err != nil {
				continue
			}
			pages = append(pages, keyword.Page{URL: link, Text: VisibleText(linked)})
		}
	}

	return pages
}
