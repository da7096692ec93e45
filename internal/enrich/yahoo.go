package enrich

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

const (
	yahooSearchURL  = "https://query2.finance.yahoo.com/v1/finance/search"
	yahooSummaryURL = "https://query2.finance.yahoo.com/v10/finance/quoteSummary/%s"
)

type yahooQuote struct {
	Symbol    string  `json:"symbol"`
	QuoteType string  `json:"quoteType"`
	LongName  string  `json:"longname"`
	ShortName string  `json:"shortname"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
}

func (q yahooQuote) displayName() string {
	if q.LongName != "" {
		return q.LongName
	}
	if q.ShortName != "" {
		return q.ShortName
	}
	return q.Name
}

type yahooSearchResponse struct {
	Quotes []yahooQuote `json:"quotes"`
}

type yahooSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				Industry string `json:"industry"`
				Sector   string `json:"sector"`
			} `json:"assetProfile"`
		} `json:"result"`
	} `json:"quoteSummary"`
}

func (e *Enricher) fromYahoo(company string) *Info {
	symbol, err := e.yahooSymbol(company)
	if err != nil || symbol == "" {
		return nil
	}

	q := url.Values{}
	q.Set("modules", "assetProfile")

	var body yahooSummaryResponse
	if err := e.getJSON(fmt.Sprintf(e.YahooSummaryURL, url.PathEscape(symbol)), q, nil, &body); err != nil {
		return nil
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil
	}

	profile := body.QuoteSummary.Result[0].AssetProfile
	industry := strings.TrimSpace(profile.Industry)
	sector := strings.TrimSpace(profile.Sector)
	if industry == "" && sector == "" {
		return nil
	}
	if sector == "" {
		sector = guessSector(industry)
	}
	return &Info{Industry: industry, Sector: sector}
}

// yahooSymbol picks the ticker whose long name overlaps the company
// name the most, preferring equities and Yahoo's own relevance score.
func (e *Enricher) yahooSymbol(company string) (string, error) {
	q := url.Values{}
	q.Set("q", company)
	q.Set("quotesCount", "5")
	q.Set("newsCount", "0")
	q.Set("lang", "en-US")
	q.Set("region", "US")

	var body yahooSearchResponse
	if err := e.getJSON(e.YahooSearchURL, q, nil, &body); err != nil {
		return "", err
	}
	if len(body.Quotes) == 0 {
		return "", nil
	}

	tokens := make(map[string]struct{})
	for _, t := range strings.Fields(strings.ToLower(company)) {
		if len(t) > 2 {
			tokens[t] = struct{}{}
		}
	}
	overlap := func(name string) int {
		low := strings.ToLower(name)
		hits := 0
		for t := range tokens {
			if strings.Contains(low, t) {
				hits++
			}
		}
		return hits
	}

	quotes := body.Quotes
	sort.SliceStable(quotes, func(i, j int) bool {
		a, b := quotes[i], quotes[j]
		if (a.QuoteType == "EQUITY") != (b.QuoteType == "EQUITY") {
			return a.QuoteType == "EQUITY"
		}
		if ha, hb := overlap(a.displayName()), overlap(b.displayName()); ha != hb {
			return ha > hb
		}
		return a.Score > b.Score
	})

	return strings.TrimSpace(quotes[0].Symbol), nil
}

func (e *Enricher) getJSON(endpoint string, q url.Values, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(e.ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", e.UserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	resp, err := e.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: bad status: %s", endpoint, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
