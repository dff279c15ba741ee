package scan

import (
	"context"

	"github.com/sig-0/oddscan/market"
)

// Source is a single odds data source
type Source interface {
	// Name returns the human-readable name of the source
	Name() string

	// FetchOdds fetches the raw h2h events for the given sport key
	FetchOdds(ctx context.Context, sportKey string) ([]market.Event, error)
}
