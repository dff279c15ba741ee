package scan

import (
	"log/slog"

	"github.com/sig-0/oddscan/export"
)

type Option func(s *Scanner)

// WithLogger specifies the logger for the scanner
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = l
	}
}

// WithSink registers an additional export destination.
// Every sink receives the same rows, in the same order
func WithSink(sink export.Sink) Option {
	return func(s *Scanner) {
		if sink != nil {
			s.sinks = append(s.sinks, sink)
		}
	}
}

// WithProductOrder orders exported rows by the combined odds product,
// descending. Defaults to the order the API returned
func WithProductOrder(enabled bool) Option {
	return func(s *Scanner) {
		s.productOrder = enabled
	}
}

// WithAbortOn makes fetch errors matching any of the given sentinels
// abort the whole run, instead of skipping the sport.
// Meant for errors that doom every later request, like a rejected
// API key or an exhausted quota
func WithAbortOn(errs ...error) Option {
	return func(s *Scanner) {
		s.abortOn = errs
	}
}
