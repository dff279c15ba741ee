package console

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/sig-0/oddscan/market"
)

// Exporter renders scan results as a fixed-width table
type Exporter struct {
	w     io.Writer
	limit int
}

// NewExporter creates a console exporter that renders at most limit
// rows. Limits <= 0 render everything
func NewExporter(w io.Writer, limit int) *Exporter {
	return &Exporter{
		w:     w,
		limit: limit,
	}
}

// Export renders the results in export order
func (e *Exporter) Export(_ context.Context, results []market.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(e.w, "no matches within the target window")

		return err
	}

	if e.limit > 0 && len(results) > e.limit {
		results = results[:e.limit]
	}

	tw := tabwriter.NewWriter(e.w, 0, 4, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "MATCH\tCOMMENCE\tBOOKMAKER\tHOME\tDRAW\tAWAY\tPRODUCT")

	for _, result := range results {
		_, _ = fmt.Fprintf(
			tw,
			"%s vs %s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.3f\n",
			result.HomeTeam,
			result.AwayTeam,
			result.CommenceTime.UTC().Format(time.RFC3339),
			result.Quote.Bookmaker,
			result.Quote.Home,
			result.Quote.Draw,
			result.Quote.Away,
			result.Quote.Product(),
		)
	}

	return tw.Flush()
}
