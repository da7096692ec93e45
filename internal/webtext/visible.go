package webtext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/bizradar/bizradar/internal/keyword"
)

// noiseSelector lists elements whose text is chrome, not content.
const noiseSelector = "script,style,noscript,header,footer,nav"

// VisibleText extracts the human-visible text of an HTML document,
// space-separated per text node, and normalizes it for matching.
func VisibleText(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return keyword.Normalize(rawHTML)
	}
	doc.Find(noiseSelector).Remove()

	var parts []string
	for _, root := range doc.Nodes {
		collectText(root, &parts)
	}

	return keyword.Normalize(strings.Join(parts, " "))
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}
