// Package market models three-way (h2h) betting odds data and implements
// the outcome extraction and target filtering over it.
//
// # Extraction
//
// An Event arrives with nested bookmaker / market / outcome data. For
// every bookmaker pricing an h2h market, the extractor maps the market's
// outcome names onto the three slots of a Quote:
//
//   - a name matching the event's home (away) team fills the home (away) slot
//   - a name reading "draw", "tie" or "egalité" (case-insensitive) fills
//     the draw slot
//
// Outcomes with non-positive prices are treated as malformed and ignored.
// A bookmaker yields a Quote only when all three slots fill; anything less
// is normal missing data and the bookmaker is skipped for that event.
//
// # Filtering
//
// Criteria describe an acceptance window [target-tolerance, target+tolerance],
// bounds inclusive. A Quote is accepted when all three of its odds lie
// within the window, and every accepted quote becomes one exported Result.
// Quote order within an event, and event order within a scan, follow the
// order the odds provider returned.
package market
