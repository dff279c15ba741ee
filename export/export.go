package export

import (
	"context"

	"github.com/sig-0/oddscan/market"
)

// Sink is an abstraction over filtered odds destinations
type Sink interface {
	// Export writes out the given scan results, in order
	Export(ctx context.Context, results []market.Result) error
}
