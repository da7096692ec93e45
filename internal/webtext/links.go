package webtext

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// InternalLinks returns same-site links from the document, in document
// order and deduplicated. When keywords is non-empty only anchors whose
// href or text mentions one of them are kept.
func InternalLinks(rawHTML, base string, keywords []string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return nil
	}

	var links []string
	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "mailto:") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := baseURL.ResolveReference(ref)
		if resolved.Host != baseURL.Host {
			return
		}

		if len(keywords) > 0 {
			haystack := strings.ToLower(href + " " + a.Text())
			matched := false
			for _, k := range keywords {
				if strings.Contains(haystack, k) {
					matched = true
					break
				}
			}
			if !matched {
				return
			}
		}

		link := resolved.String()
		if _, ok := seen[link]; ok {
			return
		}
		seen[link] = struct{}{}
		links = append(links, link)
	})

	return links
}
