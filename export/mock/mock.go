package mock

import (
	"context"

	"github.com/sig-0/oddscan/market"
)

type ExportDelegate func(context.Context, []market.Result) error

type Sink struct {
	ExportFn ExportDelegate
}

func (m *Sink) Export(ctx context.Context, results []market.Result) error {
	if m.ExportFn != nil {
		return m.ExportFn(ctx, results)
	}

	return nil
}
