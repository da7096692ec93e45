package enrich

import (
	"net/url"
	"strings"
)

const googleKGURL = "https://kgsearch.googleapis.com/v1/entities:search"

type kgResponse struct {
	ItemListElement []struct {
		Result struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"result"`
	} `json:"itemListElement"`
}

// fromGoogleKG treats the Knowledge Graph entity description as the
// industry label. Requires an API key; disabled without one.
func (e *Enricher) fromGoogleKG(company string) *Info {
	if e.kgAPIKey == "" {
		return nil
	}

	q := url.Values{}
	q.Set("query", company)
	q.Set("key", e.kgAPIKey)
	q.Set("limit", "1")
	q.Set("languages", "en")
	q.Set("types", "Corporation,Organization")

	var body kgResponse
	if err := e.getJSON(e.KGURL, q, nil, &body); err != nil {
		return nil
	}
	if len(body.ItemListElement) == 0 {
		return nil
	}

	res := body.ItemListElement[0].Result
	industry := strings.TrimSpace(res.Description)
	if industry == "" {
		industry = strings.TrimSpace(res.Name)
	}
	if industry == "" {
		return nil
	}
	return &Info{Industry: industry, Sector: guessSector(industry)}
}
