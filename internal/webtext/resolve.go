package webtext

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const (
	wikidataSearchURL = "https://www.wikidata.org/w/api.php"
	wikidataEntityURL = "https://www.wikidata.org/wiki/Special:EntityData/%s.json"
)

var schemeRE = regexp.MustCompile(`(?i)^https?://`)

// ResolveDomain accepts a full URL or a bare domain and returns the
// lowercase host without a leading "www.". An empty result means the
// input carries no usable host.
func ResolveDomain(urlOrDomain string) string {
	s := strings.TrimSpace(urlOrDomain)
	if s == "" {
		return ""
	}
	if !schemeRE.MatchString(s) {
		s = "https://" + s
	}

	parsed, err := url.Parse(s)
	if err != nil {
		return ""
	}

	host := strings.ToLower(parsed.Host)
	host = strings.TrimPrefix(host, "www.")
	return host
}

// ResolveCompanyDomain resolves a company name to its web domain.
// A website hint wins when present; otherwise the Wikidata official
// website claim (P856) is consulted. Empty result means unresolvable.
func (c *Client) ResolveCompanyDomain(company, websiteHint string) string {
	if dom := ResolveDomain(websiteHint); dom != "" {
		return dom
	}

	qid, err := c.wikidataQID(company)
	if err != nil || qid == "" {
		if err != nil {
			c.logger.Debug("wikidata entity search failed", zap.String("company", company), zap.Error(err))
		}
		return ""
	}

	site, err := c.wikidataWebsite(qid)
	if err != nil {
		c.logger.Debug("wikidata website lookup failed", zap.String("qid", qid), zap.Error(err))
		return ""
	}

	return ResolveDomain(site)
}

func (c *Client) wikidataQID(company string) (string, error) {
	q := url.Values{}
	q.Set("action", "wbsearchentities")
	q.Set("search", company)
	q.Set("language", "en")
	q.Set("format", "json")
	q.Set("type", "item")
	q.Set("limit", "1")

	var body struct {
		Search []struct {
			ID string `json:"id"`
		} `json:"search"`
	}
	if err := c.getJSON(wikidataSearchURL, q, &body); err != nil {
		return "", err
	}
	if len(body.Search) == 0 {
		return "", nil
	}
	return body.Search[0].ID, nil
}

func (c *Client) wikidataWebsite(qid string) (string, error) {
	var body struct {
		Entities map[string]struct {
			Claims map[string][]struct {
				Mainsnak struct {
					Datavalue struct {
						Value json.RawMessage `json:"value"`
					} `json:"datavalue"`
				} `json:"mainsnak"`
			} `json:"claims"`
		} `json:"entities"`
	}
	if err := c.getJSON(fmt.Sprintf(wikidataEntityURL, qid), nil, &body); err != nil {
		return "", err
	}

	// P856 is the official-website property.
	for _, claim := range body.Entities[qid].Claims["P856"] {
		var site string
		if err := json.Unmarshal(claim.Mainsnak.Datavalue.Value, &site); err != nil {
			continue
		}
		if site = strings.TrimSpace(site); site != "" {
			return site, nil
		}
	}
	return "", nil
}

func (c *Client) getJSON(endpoint string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: bad status: %s", endpoint, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
