package memory

import (
	"context"
	"sync"

	"github.com/sig-0/oddscan/market"
)

// Exporter accumulates exported results in memory
type Exporter struct {
	results []market.Result

	mu sync.RWMutex
}

// NewExporter creates an empty in-memory exporter
func NewExporter() *Exporter {
	return &Exporter{
		results: make([]market.Result, 0),
	}
}

// Export appends the results, keeping export order
func (e *Exporter) Export(_ context.Context, results []market.Result) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.results = append(e.results, results...)

	return nil
}

// Results returns a copy of everything exported so far
func (e *Exporter) Results() []market.Result {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]market.Result, len(e.results))
	copy(out, e.results)

	return out
}
