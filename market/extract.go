package market

import "strings"

// drawNames are the lowercased outcome labels bookmakers use for the draw.
// Home and away outcomes are matched by the event's exact team names instead
var drawNames = map[string]struct{}{
	"draw":    {},
	"tie":     {},
	"egalité": {},
}

// ExtractQuotes pulls the three-way prices out of every bookmaker that
// offers an h2h market on the event. Bookmakers with a missing market,
// unmapped outcome names, or fewer than three priced outcomes are
// skipped, since missing data is expected and not an error
func ExtractQuotes(event Event) []Quote {
	quotes := make([]Quote, 0, len(event.Bookmakers))

	for _, bookmaker := range event.Bookmakers {
		quote, ok := extractQuote(event, bookmaker)
		if !ok {
			continue
		}

		quotes = append(quotes, quote)
	}

	return quotes
}

// extractQuote maps a single bookmaker's h2h outcomes to home / draw / away
func extractQuote(event Event, bookmaker Bookmaker) (Quote, bool) {
	h2h, ok := findMarket(bookmaker, MarketKeyH2H)
	if !ok {
		return Quote{}, false
	}

	var (
		home, draw, away          Outcome
		hasHome, hasDraw, hasAway bool
	)

	for _, outcome := range h2h.Outcomes {
		if outcome.Price <= 0 {
			// Malformed price, leave the slot unfilled
			continue
		}

		switch {
		case isDrawName(outcome.Name):
			draw, hasDraw = outcome, true
		case outcome.Name == event.HomeTeam:
			home, hasHome = outcome, true
		case outcome.Name == event.AwayTeam:
			away, hasAway = outcome, true
		}
	}

	if !hasHome || !hasDraw || !hasAway {
		return Quote{}, false
	}

	return Quote{
		Bookmaker:      bookmaker.Key,
		BookmakerTitle: bookmaker.Title,
		Home:           home.Price,
		Draw:           draw.Price,
		Away:           away.Price,
		HomeLink:       deepLink(home, h2h, bookmaker, event),
		DrawLink:       deepLink(draw, h2h, bookmaker, event),
		AwayLink:       deepLink(away, h2h, bookmaker, event),
	}, true
}

// findMarket returns the bookmaker's market with the given key, if present
func findMarket(bookmaker Bookmaker, key MarketKey) (Market, bool) {
	for _, m := range bookmaker.Markets {
		if m.Key == key {
			return m, true
		}
	}

	return Market{}, false
}

func isDrawName(name string) bool {
	_, ok := drawNames[strings.ToLower(name)]

	return ok
}

// deepLink resolves the most specific bookmaker link available for an
// outcome, falling back outcome -> market -> bookmaker -> event
func deepLink(outcome Outcome, m Market, bookmaker Bookmaker, event Event) string {
	for _, link := range []string{outcome.Link, m.Link, bookmaker.Link, event.Link} {
		if link != "" {
			return link
		}
	}

	return ""
}
