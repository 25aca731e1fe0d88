// Package fetch provides the HTTP page fetcher consumed by source adapters.
//
// The contract is deliberately lossy: a fetch either yields the page body or
// it yields nothing. Timeouts, network errors and non-2xx statuses all
// collapse to the same "no content" signal so every caller has one defined
// fallback path and no adapter ever fails on a transport error.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds every fetch. There is no retry; a failed fetch is
// final for that attempt.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent mirrors a desktop browser; several of the scraped sites
// serve reduced markup to obvious bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (like Gecko) Chrome/131.0 Safari/537.36"

// Client fetches pages with a fixed timeout and User-Agent.
type Client struct {
	client    *http.Client
	userAgent string
}

// New creates a Client with the given per-request timeout. A non-positive
// timeout falls back to DefaultTimeout.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: DefaultUserAgent,
	}
}

// Fetch returns the page body and true on any 2xx response. On non-2xx
// status, network error, timeout or cancellation it returns ("", false).
// It never returns an error.
func (c *Client) Fetch(ctx context.Context, url string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false
	}
	return string(body), true
}
