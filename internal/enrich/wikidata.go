package enrich

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const wikidataSparqlURL = "https://query.wikidata.org/sparql"

type sparqlResponse struct {
	Results struct {
		Bindings []map[string]struct {
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

// fromWikidata queries the P452 (industry) claim by label, first with
// an exact english label match and then a contains() fallback.
func (e *Enricher) fromWikidata(company string) *Info {
	escaped := strings.ReplaceAll(company, `"`, `\"`)
	queries := []string{
		fmt.Sprintf(`SELECT ?industryLabel WHERE {
  ?org rdfs:label "%s"@en ;
       wdt:P452 ?industry .
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
} LIMIT 1`, escaped),
		fmt.Sprintf(`SELECT ?industryLabel WHERE {
  ?org wdt:P452 ?industry ;
       rdfs:label ?label .
  FILTER (lang(?label) = "en" && CONTAINS(LCASE(?label), LCASE("%s")))
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
} LIMIT 1`, escaped),
	}

	for _, query := range queries {
		q := url.Values{}
		q.Set("query", query)

		var body sparqlResponse
		err := e.getJSON(e.SparqlURL, q, map[string]string{"Accept": "application/sparql-results+json"}, &body)
		if err != nil {
			e.logger.Debug("wikidata sparql failed", zap.Error(err))
			continue
		}
		if len(body.Results.Bindings) == 0 {
			continue
		}

		industry := strings.TrimSpace(body.Results.Bindings[0]["industryLabel"].Value)
		if industry != "" {
			return &Info{Industry: industry, Sector: guessSector(industry)}
		}
	}
	return nil
}
