package theoddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-0/oddscan/market"
)

const testAPIKey = "test-api-key"

// newTestClient creates a client pointed at the given test server
func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()

	opts = append([]Option{WithBaseURL(srv.URL)}, opts...)

	c, err := NewClient(testAPIKey, opts...)
	require.NoError(t, err)

	return c
}

// testEvents generates a sample odds payload with the given event count
func testEvents(count int) []market.Event {
	events := make([]market.Event, 0, count)

	for i := 0; i < count; i++ {
		events = append(events, market.Event{
			ID:           fmt.Sprintf("event-%d", i),
			SportKey:     "soccer_epl",
			SportTitle:   "EPL",
			CommenceTime: time.Date(2026, time.August, 22, 18, 30, 0, 0, time.UTC),
			HomeTeam:     "Arsenal",
			AwayTeam:     "Chelsea",
			Bookmakers: []market.Bookmaker{
				{
					Key:   "pinnacle",
					Title: "Pinnacle",
					Markets: []market.Market{
						{
							Key: market.MarketKeyH2H,
							Outcomes: []market.Outcome{
								{Name: "Arsenal", Price: 2.5},
								{Name: "Draw", Price: 3.4},
								{Name: "Chelsea", Price: 3.5},
							},
						},
					},
				},
			},
		})
	}

	return events
}

func TestClient_New(t *testing.T) {
	t.Parallel()

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		c, err := NewClient("")

		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("default client", func(t *testing.T) {
		t.Parallel()

		c, err := NewClient(testAPIKey)
		require.NoError(t, err)

		assert.Equal(t, DefaultBaseURL, c.baseURL)
		assert.Equal(t, market.RegionEU, c.region)
		assert.Equal(t, 0, c.maxEvents)
		assert.False(t, c.deepLinks)
		assert.NotEmpty(t, c.Name())
	})

	t.Run("options applied", func(t *testing.T) {
		t.Parallel()

		c, err := NewClient(
			testAPIKey,
			WithBaseURL("http://localhost:1337"),
			WithRegion(market.RegionUK),
			WithMaxEvents(5),
			WithDeepLinks(true),
			WithTimeout(time.Second),
		)
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:1337", c.baseURL)
		assert.Equal(t, market.RegionUK, c.region)
		assert.Equal(t, 5, c.maxEvents)
		assert.True(t, c.deepLinks)
		assert.Equal(t, time.Second, c.client.Timeout)
	})
}

func TestClient_FetchOdds(t *testing.T) {
	t.Parallel()

	t.Run("query parameters set", func(t *testing.T) {
		t.Parallel()

		var captured *http.Request

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = r

				require.NoError(t, json.NewEncoder(w).Encode(testEvents(1)))
			}),
		)
		defer srv.Close()

		c := newTestClient(t, srv)

		_, err := c.FetchOdds(context.Background(), "soccer_epl")
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.Equal(t, "/v4/sports/soccer_epl/odds/", captured.URL.Path)

		query := captured.URL.Query()

		assert.Equal(t, testAPIKey, query.Get("apiKey"))
		assert.Equal(t, market.RegionEU.String(), query.Get("regions"))
		assert.Equal(t, market.MarketKeyH2H.String(), query.Get("markets"))
		assert.Equal(t, "decimal", query.Get("oddsFormat"))
		assert.Empty(t, query.Get("includeLinks"))
		assert.Empty(t, query.Get("includeSids"))
	})

	t.Run("deep links requested", func(t *testing.T) {
		t.Parallel()

		var captured *http.Request

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = r

				require.NoError(t, json.NewEncoder(w).Encode(testEvents(1)))
			}),
		)
		defer srv.Close()

		c := newTestClient(t, srv, WithDeepLinks(true))

		_, err := c.FetchOdds(context.Background(), "soccer_epl")
		require.NoError(t, err)

		require.NotNil(t, captured)

		query := captured.URL.Query()

		assert.Equal(t, "true", query.Get("includeLinks"))
		assert.Equal(t, "true", query.Get("includeSids"))
	})

	t.Run("events decoded", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				require.NoError(t, json.NewEncoder(w).Encode(testEvents(2)))
			}),
		)
		defer srv.Close()

		c := newTestClient(t, srv)

		events, err := c.FetchOdds(context.Background(), "soccer_epl")
		require.NoError(t, err)
		require.Len(t, events, 2)

		event := events[0]

		assert.Equal(t, "event-0", event.ID)
		assert.Equal(t, "Arsenal", event.HomeTeam)
		assert.Equal(t, "Chelsea", event.AwayTeam)

		require.Len(t, event.Bookmakers, 1)
		require.Len(t, event.Bookmakers[0].Markets, 1)

		h2h := event.Bookmakers[0].Markets[0]

		assert.Equal(t, market.MarketKeyH2H, h2h.Key)
		require.Len(t, h2h.Outcomes, 3)
		assert.Equal(t, 2.5, h2h.Outcomes[0].Price)
	})

	t.Run("event cap applied", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				require.NoError(t, json.NewEncoder(w).Encode(testEvents(8)))
			}),
		)
		defer srv.Close()

		c := newTestClient(t, srv, WithMaxEvents(5))

		events, err := c.FetchOdds(context.Background(), "soccer_epl")
		require.NoError(t, err)

		// The cap bounds raw events processed, regardless of what the API returns
		require.Len(t, events, 5)
		assert.Equal(t, "event-0", events[0].ID)
		assert.Equal(t, "event-4", events[4].ID)
	})

	t.Run("out of season", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}),
		)
		defer srv.Close()

		c := newTestClient(t, srv)

		events, err := c.FetchOdds(context.Background(), "soccer_efl_champ")

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("unauthorized key", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)

				_, _ = w.Write([]byte(`{"message":"Invalid api key"}`))
			}),
		)
		defer srv.Close()

		c := newTestClient(t, srv)

		events, err := c.FetchOdds(context.Background(), "soccer_epl")

		assert.Nil(t, events)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Contains(t, err.Error(), "Invalid api key")
	})

	t.Run("quota exceeded", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)

				_, _ = w.Write([]byte(`{"message":"Usage quota has been reached"}`))
			}),
		)
		defer srv.Close()

		c := newTestClient(t, srv)

		events, err := c.FetchOdds(context.Background(), "soccer_epl")

		assert.Nil(t, events)
		assert.ErrorIs(t, err, ErrQuotaExceeded)
	})

	t.Run("invalid status code", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}),
		)
		defer srv.Close()

		c := newTestClient(t, srv)

		events, err := c.FetchOdds(context.Background(), "soccer_epl")

		assert.Nil(t, events)
		assert.Error(t, err)
	})

	t.Run("network failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // refuse connections right away

		c := newTestClient(t, srv)

		events, err := c.FetchOdds(context.Background(), "soccer_epl")

		assert.Nil(t, events)
		assert.Error(t, err)
	})

	t.Run("quota headers recorded", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("x-requests-remaining", "482")
				w.Header().Set("x-requests-used", "18")

				require.NoError(t, json.NewEncoder(w).Encode(testEvents(1)))
			}),
		)
		defer srv.Close()

		c := newTestClient(t, srv)

		_, err := c.FetchOdds(context.Background(), "soccer_epl")
		require.NoError(t, err)

		quota := c.LastQuota()

		assert.Equal(t, 482, quota.Remaining)
		assert.Equal(t, 18, quota.Used)
	})
}

func TestClient_FetchSports(t *testing.T) {
	t.Parallel()

	t.Run("catalog decoded", func(t *testing.T) {
		t.Parallel()

		var (
			captured *http.Request

			catalog = []market.Sport{
				{
					Key:    "soccer_epl",
					Group:  "Soccer",
					Title:  "EPL",
					Active: true,
				},
				{
					Key:    "basketball_nba",
					Group:  "Basketball",
					Title:  "NBA",
					Active: true,
				},
			}
		)

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = r

				require.NoError(t, json.NewEncoder(w).Encode(catalog))
			}),
		)
		defer srv.Close()

		c := newTestClient(t, srv)

		sports, err := c.FetchSports(context.Background())
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.Equal(t, "/v4/sports/", captured.URL.Path)
		assert.Equal(t, testAPIKey, captured.URL.Query().Get("apiKey"))

		require.Len(t, sports, 2)
		assert.Equal(t, "soccer_epl", sports[0].Key)
		assert.Equal(t, "Soccer", sports[0].Group)
		assert.Equal(t, "basketball_nba", sports[1].Key)
	})

	t.Run("unauthorized key", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}),
		)
		defer srv.Close()

		c := newTestClient(t, srv)

		sports, err := c.FetchSports(context.Background())

		assert.Nil(t, sports)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
