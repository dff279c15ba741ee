package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/rs/xid"

	"github.com/sig-0/oddscan/export"
	"github.com/sig-0/oddscan/market"
)

var (
	errInvalidSource = errors.New("invalid source")
	errInvalidSink   = errors.New("invalid sink")
)

// Scanner runs the extract-filter-export pass over the configured sports
type Scanner struct {
	source   Source
	sinks    []export.Sink
	criteria market.Criteria
	logger   *slog.Logger

	abortOn      []error
	productOrder bool
}

// Report summarizes a completed scan run
type Report struct {
	// RunID tags the run in logs
	RunID string

	// SportsFailed counts sports skipped over a fetch error
	SportsFailed int

	// EventsFetched counts raw events across all sports
	EventsFetched int

	// EventsMatched counts events with at least one accepted quote
	EventsMatched int

	// Rows counts exported results, one per accepted quote
	Rows int
}

// New creates a new Scanner instance
func New(
	source Source,
	sink export.Sink,
	criteria market.Criteria,
	opts ...Option,
) (*Scanner, error) {
	if source == nil || source.Name() == "" {
		return nil, errInvalidSource
	}

	if sink == nil {
		return nil, errInvalidSink
	}

	s := &Scanner{
		source:   source,
		sinks:    []export.Sink{sink},
		criteria: criteria,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	// Apply the options
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Run executes a single scan pass over every configured sport key,
// sequentially, and hands the accepted rows to the sinks [BLOCKING]
func (s *Scanner) Run(ctx context.Context) (*Report, error) {
	var (
		runID   = xid.New()
		results = make([]market.Result, 0)

		report = &Report{
			RunID: runID.String(),
		}
	)

	logger := s.logger.With("run_id", runID.String())

	logger.Info(
		"starting scan",
		"source", s.source.Name(),
		"sports", s.criteria.Sports,
		"target", s.criteria.Target,
		"tolerance", s.criteria.Tolerance,
		"region", s.criteria.Region.String(),
		"max_events", s.criteria.MaxEventsPerSport,
	)

	for _, sportKey := range s.criteria.Sports {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		events, err := s.source.FetchOdds(ctx, sportKey)
		if err != nil {
			if s.fatal(err) {
				return nil, fmt.Errorf("unable to fetch odds for %s: %w", sportKey, err)
			}

			// One sport failing doesn't doom the rest of the run
			logger.Error(
				"unable to fetch odds",
				"sport", sportKey,
				"err", err,
			)

			report.SportsFailed++

			continue
		}

		report.EventsFetched += len(events)

		matched := 0

		for _, event := range events {
			quotes := market.FilterQuotes(market.ExtractQuotes(event), s.criteria)
			if len(quotes) == 0 {
				continue
			}

			matched++

			for _, quote := range quotes {
				results = append(results, market.Result{
					EventID:      event.ID,
					SportKey:     event.SportKey,
					HomeTeam:     event.HomeTeam,
					AwayTeam:     event.AwayTeam,
					CommenceTime: event.CommenceTime,
					Quote:        quote,
				})
			}
		}

		report.EventsMatched += matched

		logger.Info(
			"scanned sport",
			"sport", sportKey,
			"events", len(events),
			"matched", matched,
		)
	}

	if s.productOrder {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Quote.Product() > results[j].Quote.Product()
		})
	}

	for _, sink := range s.sinks {
		if err := sink.Export(ctx, results); err != nil {
			return nil, fmt.Errorf("unable to export results: %w", err)
		}
	}

	report.Rows = len(results)

	logger.Info(
		"scan complete",
		"events", report.EventsFetched,
		"matched", report.EventsMatched,
		"rows", report.Rows,
		"failed_sports", report.SportsFailed,
	)

	return report, nil
}

// fatal reports whether the fetch error dooms the remaining requests
func (s *Scanner) fatal(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	for _, target := range s.abortOn {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
