package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const hunterAPIURL = "https://api.hunter.io/v2/domain-search"

// HunterClient talks to the Hunter.io domain-search API.
type HunterClient struct {
	ctx        context.Context
	apiKey     string
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
	UserAgent  string
}

// NewHunterClient returns a ready client. The key is required; callers
// should skip construction entirely when no key is configured.
func NewHunterClient(ctx context.Context, logger *zap.Logger, apiKey, userAgent string) *HunterClient {
	return &HunterClient{
		ctx:    ctx,
		apiKey: apiKey,
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		APIURL:    hunterAPIURL,
		UserAgent: userAgent,
	}
}

type hunterResponse struct {
	Data struct {
		Emails []map[string]any `json:"emails"`
	} `json:"data"`
}

type hunterEmail struct {
	Value     string `json:"value"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

// DomainSearch returns up to limit contacts known for the domain.
func (c *HunterClient) DomainSearch(domain string, limit int) ([]*Contact, error) {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, c.APIURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	q := url.Values{}
	q.Set("domain", domain)
	q.Set("api_key", c.apiKey)
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hunter domain search: bad status: %s", resp.Status)
	}

	var body hunterResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("hunter domain search: decoding response: %w", err)
	}

	// The emails come back as loose maps; decode into typed records by
	// the json tag names.
	var emails []hunterEmail
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &emails,
		TagName:  "json",
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	if err := decoder.Decode(body.Data.Emails); err != nil {
		return nil, fmt.Errorf("hunter domain search: decoding emails: %w", err)
	}

	out := make([]*Contact, 0, len(emails))
	for _, e := range emails {
		if e.Value == "" {
			continue
		}
		name := strings.TrimSpace(e.FirstName + " " + e.LastName)
		out = append(out, &Contact{
			Name:   name,
			Title:  e.Position,
			Email:  e.Value,
			Source: "hunter",
		})
		if len(out) == limit {
			break
		}
	}

	c.logger.Debug("hunter domain search done",
		zap.String("domain", domain),
		zap.Int("contacts", len(out)),
	)

	return out, nil
}
