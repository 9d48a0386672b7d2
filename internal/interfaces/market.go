package interfaces

import (
	"context"

	"crypto-advisor/internal/types"
)

// MarketDataProvider fetches market snapshots for asset identifiers.
// Implementations skip assets that fail to fetch; a partial map is a valid
// result and is never accompanied by an error for per-asset failures.
type MarketDataProvider interface {
	FetchAssets(ctx context.Context, ids []string) (map[string]types.AssetSnapshot, error)
}

// PriceSource returns the last traded price for a symbol on one exchange.
type PriceSource interface {
	Name() string
	LastPrice(ctx context.Context, symbol string) (float64, error)
}
