package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	googleCSEURL = "https://www.googleapis.com/customsearch/v1"

	// DefaultDays is the recency window for scanned news.
	DefaultDays = 180
	// DefaultMaxResults caps the returned items.
	DefaultMaxResults = 8
)

// Scanner finds recent company news. With a Google API key and CSE ID
// it queries Programmable Search; otherwise it falls back to the
// keyless Google News RSS feed.
type Scanner struct {
	ctx        context.Context
	logger     *zap.Logger
	apiKey     string
	cseID      string
	HTTPClient *http.Client
	CSEURL     string
	RSSURL     string
	UserAgent  string

	now func() time.Time
}

func NewScanner(ctx context.Context, logger *zap.Logger, apiKey, cseID, userAgent string) *Scanner {
	return &Scanner{
		ctx:    ctx,
		logger: logger,
		apiKey: apiKey,
		cseID:  cseID,
		HTTPClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		CSEURL:    googleCSEURL,
		RSSURL:    googleRSSURL,
		UserAgent: userAgent,
		now:       time.Now,
	}
}

// Scan returns up to maxResults items about the company, newest-window
// filtered to the last days. Provider failures degrade to an empty
// list; the caller renders "(none)".
func (s *Scanner) Scan(company string, days, maxResults int) []*Item {
	if days <= 0 {
		days = DefaultDays
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	if s.apiKey != "" && s.cseID != "" {
		if hits := s.scanCSE(company, days, maxResults); len(hits) > 0 {
			return hits
		}
		s.logger.Debug("no CSE results, falling back to rss", zap.String("company", company))
	}

	return s.scanRSS(company, days, maxResults)
}

type cseResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Pagemap struct {
			Metatags []map[string]string `json:"metatags"`
		} `json:"pagemap"`
	} `json:"items"`
}

// cseQueries target press-wire style coverage of the three event
// families the radar cares about.
func cseQueries(company string) []string {
	return []string{
		fmt.Sprintf(`%q (acquire OR acquired OR acquisition OR merger OR "to acquire")`, company),
		fmt.Sprintf(`%q (raise OR raised OR raises OR funding OR financing OR "Series A" OR "Series B" OR "Series C")`, company),
		fmt.Sprintf(`%q (expansion OR expands OR opens OR "new office" OR "new plant" OR "new factory" OR "new facility" OR "new market")`, company),
	}
}

func (s *Scanner) scanCSE(company string, days, maxResults int) []*Item {
	var results []*Item

	for _, query := range cseQueries(company) {
		q := url.Values{}
		q.Set("key", s.apiKey)
		q.Set("cx", s.cseID)
		q.Set("q", query)
		num := maxResults
		if num > 10 {
			num = 10
		}
		q.Set("num", strconv.Itoa(num))

		var body cseResponse
		if err := s.getJSON(s.CSEURL, q, &body); err != nil {
			s.logger.Debug("cse query failed", zap.Error(err))
			continue
		}

		for _, it := range body.Items {
			if it.Title == "" || it.Link == "" {
				continue
			}
			pub := ""
			if len(it.Pagemap.Metatags) > 0 {
				meta := it.Pagemap.Metatags[0]
				pub = meta["article:published_time"]
				if pub == "" {
					pub = meta["og:updated_time"]
				}
			}
			results = append(results, Summarize(company, it.Title, NormalizeDate(pub), it.Link))
		}
	}

	return s.dedupeAndTrim(results, days, maxResults)
}

func (s *Scanner) getJSON(endpoint string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(s.ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", s.UserAgent)
	req.URL.RawQuery = q.Encode()

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: bad status: %s", endpoint, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// dedupeAndTrim drops repeated URLs, filters out items older than the
// window when they carry a parseable date and keeps processing order.
func (s *Scanner) dedupeAndTrim(items []*Item, days, maxResults int) []*Item {
	cutoff := s.now().UTC().AddDate(0, 0, -days)
	seen := make(map[string]struct{})
	out := make([]*Item, 0, maxResults)

	for _, it := range items {
		if _, ok := seen[it.URL]; ok {
			continue
		}
		seen[it.URL] = struct{}{}

		if it.Date != "" {
			if d, err := time.Parse("2006-01-02", it.Date); err == nil && d.Before(cutoff) {
				continue
			}
		}

		out = append(out, it)
		if len(out) == maxResults {
			break
		}
	}
	return out
}
