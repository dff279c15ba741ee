package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sig-0/oddscan/market"
)

// baseHeader is the fixed leading column schema of every export
var baseHeader = []string{
	"sport_key",
	"home_team",
	"away_team",
	"commence_time",
	"bookmaker",
	"home_odds",
	"draw_odds",
	"away_odds",
}

// linkHeader extends the schema when deep links are exported
var linkHeader = []string{
	"home_link",
	"draw_link",
	"away_link",
}

// Exporter writes scan results to a flat CSV file
type Exporter struct {
	path      string
	appendRun bool
	withLinks bool
}

// NewExporter creates a CSV file exporter.
// The file at path is overwritten on every export, unless append
// mode keeps rows across runs
func NewExporter(path string, opts ...Option) *Exporter {
	e := &Exporter{
		path: path,
	}

	// Apply the options
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Export writes the header and one row per result to the file.
// An empty result set still produces the header
func (e *Exporter) Export(_ context.Context, results []market.Result) error {
	flags := os.O_CREATE | os.O_WRONLY

	if e.appendRun {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(e.path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("unable to open output file: %w", err)
	}

	if err := e.write(file, results); err != nil {
		_ = file.Close()

		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to close output file: %w", err)
	}

	return nil
}

// write streams the header and rows into the open file
func (e *Exporter) write(file *os.File, results []market.Result) error {
	writeHeader := true

	if e.appendRun {
		info, err := file.Stat()
		if err != nil {
			return fmt.Errorf("unable to stat output file: %w", err)
		}

		// Appending to a non-empty file keeps the original header
		writeHeader = info.Size() == 0
	}

	w := csv.NewWriter(file)

	if writeHeader {
		if err := w.Write(e.header()); err != nil {
			return fmt.Errorf("unable to write header: %w", err)
		}
	}

	for _, result := range results {
		if err := w.Write(e.row(result)); err != nil {
			return fmt.Errorf("unable to write row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("unable to flush output: %w", err)
	}

	return nil
}

// header returns the column schema of the export
func (e *Exporter) header() []string {
	if !e.withLinks {
		return baseHeader
	}

	header := make([]string, 0, len(baseHeader)+len(linkHeader))
	header = append(header, baseHeader...)
	header = append(header, linkHeader...)

	return header
}

// row flattens a single result into its CSV columns
func (e *Exporter) row(result market.Result) []string {
	row := []string{
		result.SportKey,
		result.HomeTeam,
		result.AwayTeam,
		result.CommenceTime.UTC().Format(time.RFC3339),
		result.Quote.Bookmaker,
		formatOdds(result.Quote.Home),
		formatOdds(result.Quote.Draw),
		formatOdds(result.Quote.Away),
	}

	if e.withLinks {
		row = append(
			row,
			result.Quote.HomeLink,
			result.Quote.DrawLink,
			result.Quote.AwayLink,
		)
	}

	return row
}

// formatOdds renders a decimal odds value with the fewest digits that
// still parse back to the exact same value
func formatOdds(odds float64) string {
	return strconv.FormatFloat(odds, 'f', -1, 64)
}
