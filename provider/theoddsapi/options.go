package theoddsapi

import (
	"net/http"
	"time"

	"github.com/sig-0/oddscan/market"
)

type Option func(c *Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithRegion specifies the bookmaker region for odds requests.
// Defaults to the EU region
func WithRegion(region market.Region) Option {
	return func(c *Client) {
		c.region = region
	}
}

// WithMaxEvents caps how many raw events a single odds fetch yields.
// Values <= 0 leave the response uncapped
func WithMaxEvents(limit int) Option {
	return func(c *Client) {
		c.maxEvents = limit
	}
}

// WithDeepLinks requests per-outcome bookmaker deep links with the odds
func WithDeepLinks(enabled bool) Option {
	return func(c *Client) {
		c.deepLinks = enabled
	}
}

// WithTimeout overrides the request timeout.
// Defaults to 20s
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// WithHTTPClient overrides the HTTP client used for requests
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}
