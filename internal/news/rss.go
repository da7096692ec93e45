package news

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const googleRSSURL = "https://news.google.com/rss/search"

// rssIntentQuery narrows the news search to the funding / M&A /
// expansion intents the radar tracks.
const rssIntentQuery = `(funding OR raises OR raised OR "Series A" OR "Series B" OR "Series C" OR acquisition OR acquires OR acquired OR merger OR expands OR expansion OR "new office" OR "new plant" OR "new factory" OR "new facility" OR "new market")`

var tagRE = regexp.MustCompile(`<[^>]*>`)

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
}

func (s *Scanner) scanRSS(company string, days, maxResults int) []*Item {
	q := url.Values{}
	q.Set("q", company+" "+rssIntentQuery)
	q.Set("hl", "en-US")
	q.Set("gl", "US")
	q.Set("ceid", "US:en")

	feed, err := s.getRSS(s.RSSURL, q)
	if err != nil {
		s.logger.Debug("rss fetch failed", zap.String("company", company), zap.Error(err))
		return nil
	}

	var results []*Item
	for _, it := range feed.Channel.Items {
		title := strings.TrimSpace(tagRE.ReplaceAllString(it.Title, ""))
		link := strings.TrimSpace(it.Link)
		if title == "" || link == "" {
			continue
		}
		results = append(results, Summarize(company, title, NormalizeDate(it.PubDate), link))
	}

	return s.dedupeAndTrim(results, days, maxResults)
}

func (s *Scanner) getRSS(endpoint string, q url.Values) (*rssFeed, error) {
	req, err := http.NewRequestWithContext(s.ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.UserAgent)
	req.URL.RawQuery = q.Encode()

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: bad status: %s", endpoint, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("parsing rss feed: %w", err)
	}
	return &feed, nil
}
