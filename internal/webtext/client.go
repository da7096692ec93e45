// Package webtext fetches company web pages and turns them into
// normalized visible text for the keyword scorers. It also resolves a
// company name or URL to a bare domain.
package webtext

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client fetches HTML pages with a fixed User-Agent and timeout.
type Client struct {
	ctx        context.Context
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
}

func New(ctx context.Context, logger *zap.Logger, userAgent string) *Client {
	return &Client{
		ctx:    ctx,
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		UserAgent: userAgent,
	}
}

// Get returns the page body when the response is HTML or plain text.
// Non-2xx statuses and other content types are errors; callers treat
// them as "page not available" and move on.
func (c *Client) Get(pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get %s: bad status: %s", pageURL, resp.Status)
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return "", fmt.Errorf("get %s: unsupported content type %q", pageURL, ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	c.logger.Debug("fetched page", zap.String("url", pageURL), zap.Int("bytes", len(body)))

	return string(body), nil
}
