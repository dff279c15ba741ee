package market

import "time"

// Region is a bookmaker jurisdiction grouping recognized by the odds provider
type Region string

const (
	RegionEU  Region = "eu"
	RegionUK  Region = "uk"
	RegionUS  Region = "us"
	RegionUS2 Region = "us2"
	RegionAU  Region = "au"
)

func (r Region) String() string {
	return string(r)
}

// MarketKey identifies a betting market type
type MarketKey string

const (
	// MarketKeyH2H is the three-way moneyline market (home / draw / away)
	MarketKeyH2H MarketKey = "h2h"
)

func (m MarketKey) String() string {
	return string(m)
}

// Sport is a single entry in the provider's sports catalog
type Sport struct {
	Key          string `json:"key"`
	Group        string `json:"group"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Active       bool   `json:"active"`
	HasOutrights bool   `json:"has_outrights"`
}

// Event is a single upcoming match, as returned by the odds endpoint
type Event struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Link         string      `json:"link,omitempty"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is a single bookmaker's offering for an event
type Bookmaker struct {
	Key        string    `json:"key"`
	Title      string    `json:"title"`
	LastUpdate time.Time `json:"last_update"`
	Link       string    `json:"link,omitempty"`
	Markets    []Market  `json:"markets"`
}

// Market is a single market a bookmaker prices for an event
type Market struct {
	Key        MarketKey `json:"key"`
	LastUpdate time.Time `json:"last_update"`
	Link       string    `json:"link,omitempty"`
	Outcomes   []Outcome `json:"outcomes"`
}

// Outcome is a single priced outcome within a market
type Outcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Link  string  `json:"link,omitempty"`
}

// Quote holds one bookmaker's extracted three-way prices for an event
type Quote struct {
	Bookmaker      string  `json:"bookmaker"`
	BookmakerTitle string  `json:"bookmaker_title"`
	Home           float64 `json:"home_odds"`
	Draw           float64 `json:"draw_odds"`
	Away           float64 `json:"away_odds"`
	HomeLink       string  `json:"home_link,omitempty"`
	DrawLink       string  `json:"draw_link,omitempty"`
	AwayLink       string  `json:"away_link,omitempty"`
}

// Product returns the combined product of the three odds
func (q Quote) Product() float64 {
	return q.Home * q.Draw * q.Away
}

// Criteria scopes a scan run and its acceptance window
type Criteria struct {
	Sports            []string `json:"sports"`
	Target            float64  `json:"target"`
	Tolerance         float64  `json:"tolerance"`
	Region            Region   `json:"region"`
	MaxEventsPerSport int      `json:"max_events_per_sport"`
}

// Result is an accepted event / quote pair, flattened for export
type Result struct {
	EventID      string    `json:"event_id"`
	SportKey     string    `json:"sport_key"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	CommenceTime time.Time `json:"commence_time"`
	Quote        Quote     `json:"quote"`
}
