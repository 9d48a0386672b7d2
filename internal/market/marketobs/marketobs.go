package marketobs

import (
	"context"

	"crypto-advisor/internal/interfaces"
	"crypto-advisor/internal/logger"
	"crypto-advisor/internal/trace"
	"crypto-advisor/internal/types"
)

// observableProvider wraps a MarketDataProvider with observability
// (logging & tracing)
type observableProvider struct {
	provider interfaces.MarketDataProvider
}

// Compile-time interface check
var _ interfaces.MarketDataProvider = (*observableProvider)(nil)

// Wrap wraps a market data provider with observability middleware
func Wrap(provider interfaces.MarketDataProvider) interfaces.MarketDataProvider {
	return &observableProvider{provider: provider}
}

// FetchAssets fetches asset snapshots with observability
func (op *observableProvider) FetchAssets(ctx context.Context, ids []string) (map[string]types.AssetSnapshot, error) {
	ctx, span := trace.StartSpan(ctx, "market.FetchAssets")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching asset snapshots", "assets", len(ids))

	snapshots, err := op.provider.FetchAssets(ctx, ids)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Asset fetch aborted", err,
			"requested", len(ids),
			"fetched", len(snapshots),
		)
		return snapshots, err
	}

	logger.InfoSkip(ctx, 1, "Asset snapshots fetched",
		"requested", len(ids),
		"fetched", len(snapshots),
	)

	return snapshots, nil
}
