package theoddsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sig-0/oddscan/market"
)

// DefaultBaseURL points at the hosted The Odds API v4
const DefaultBaseURL = "https://api.the-odds-api.com"

const defaultTimeout = time.Second * 20

var (
	// ErrMissingAPIKey marks a client constructed without an API key
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrUnauthorized marks a request rejected for a bad API key
	ErrUnauthorized = errors.New("unauthorized API key")

	// ErrQuotaExceeded marks a request rejected for an exhausted quota
	ErrQuotaExceeded = errors.New("request quota exceeded")
)

// Quota is the usage allowance the API reports with every response
type Quota struct {
	Remaining int
	Used      int
}

// Client is an h2h odds client for The Odds API v4
type Client struct {
	client *http.Client

	baseURL   string
	apiKey    string
	region    market.Region
	maxEvents int
	deepLinks bool

	lastQuota Quota
}

// NewClient creates a new The Odds API client.
// The API key is required up front, before any request is made
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		region:  market.RegionEU,
	}

	// Apply the options
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Name returns the human-readable name of the odds source
func (c *Client) Name() string {
	return "The Odds API"
}

// FetchSports lists the provider's sports catalog
func (c *Client) FetchSports(ctx context.Context) ([]market.Sport, error) {
	endpoint := fmt.Sprintf("%s/v4/sports/", c.baseURL)

	query := url.Values{}
	query.Set("apiKey", c.apiKey)

	var sports []market.Sport
	if err := c.get(ctx, endpoint, query, &sports); err != nil {
		return nil, err
	}

	return sports, nil
}

// FetchOdds fetches the raw h2h events for the given sport key.
// An out-of-season sport (HTTP 404) yields an empty list, not an error.
// The configured event cap truncates the raw list before it is returned
func (c *Client) FetchOdds(ctx context.Context, sportKey string) ([]market.Event, error) {
	endpoint := fmt.Sprintf("%s/v4/sports/%s/odds/", c.baseURL, url.PathEscape(sportKey))

	query := url.Values{}
	query.Set("apiKey", c.apiKey)
	query.Set("regions", c.region.String())
	query.Set("markets", market.MarketKeyH2H.String())
	query.Set("oddsFormat", "decimal")

	if c.deepLinks {
		query.Set("includeLinks", "true")
		query.Set("includeSids", "true")
	}

	var events []market.Event
	if err := c.get(ctx, endpoint, query, &events); err != nil {
		return nil, err
	}

	if c.maxEvents > 0 && len(events) > c.maxEvents {
		events = events[:c.maxEvents]
	}

	return events, nil
}

// LastQuota returns the usage allowance reported by the most recent response
func (c *Client) LastQuota() Quota {
	return c.lastQuota
}

// get executes a GET request and decodes the JSON response into out
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		endpoint+"?"+query.Encode(),
		http.NoBody,
	)
	if err != nil {
		return fmt.Errorf("unable to create GET request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("unable to execute GET request: %w", err)
	}
	defer resp.Body.Close()

	c.recordQuota(resp)

	switch resp.StatusCode {
	case http.StatusNotFound:
		// Out of season, nothing to decode
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiMessage(resp))
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, apiMessage(resp))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("invalid status code received: %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("unable to decode response: %w", err)
	}

	return nil
}

// recordQuota stores the x-requests-* usage headers sent with every response
func (c *Client) recordQuota(resp *http.Response) {
	remaining, err := strconv.Atoi(resp.Header.Get("x-requests-remaining"))
	if err != nil {
		return
	}

	used, _ := strconv.Atoi(resp.Header.Get("x-requests-used"))

	c.lastQuota = Quota{
		Remaining: remaining,
		Used:      used,
	}
}

// apiMessage extracts the error message the API returns alongside
// non-2xx statuses
func apiMessage(resp *http.Response) string {
	var apiErr struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
		return resp.Status
	}

	return apiErr.Message
}
