package scan

import (
	"context"

	"github.com/sig-0/oddscan/market"
)

type (
	nameDelegate      func() string
	fetchOddsDelegate func(context.Context, string) ([]market.Event, error)
)

type mockSource struct {
	nameFn      nameDelegate
	fetchOddsFn fetchOddsDelegate
}

func (m *mockSource) Name() string {
	if m.nameFn != nil {
		return m.nameFn()
	}

	return ""
}

func (m *mockSource) FetchOdds(ctx context.Context, sportKey string) ([]market.Event, error) {
	if m.fetchOddsFn != nil {
		return m.fetchOddsFn(ctx, sportKey)
	}

	return nil, nil
}
