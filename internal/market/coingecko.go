package market

import (
	"context"
	"fmt"
	"time"

	"crypto-advisor/internal/api"
	"crypto-advisor/internal/logger"
	"crypto-advisor/internal/store"
	"crypto-advisor/internal/types"
)

// CoinGeckoProvider fetches asset snapshots from the CoinGecko public API.
type CoinGeckoProvider struct {
	client  *api.Client
	limiter *RateLimiter
}

// coinResponse mirrors the subset of the /coins/<id> payload we read.
// Nested maps are keyed by fiat currency; only "usd" is used.
type coinResponse struct {
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	MarketData struct {
		CurrentPrice             map[string]float64 `json:"current_price"`
		TotalVolume              map[string]float64 `json:"total_volume"`
		MarketCap                map[string]float64 `json:"market_cap"`
		PriceChangePercentage24h *float64           `json:"price_change_percentage_24h"`
	} `json:"market_data"`
}

// NewCoinGeckoProvider creates a provider bound to the configured base URL,
// timeout, and request quota.
func NewCoinGeckoProvider(cfg *store.Config) *CoinGeckoProvider {
	refill := time.Minute / time.Duration(cfg.Market.RequestsPerMinute)
	return &CoinGeckoProvider{
		client: api.NewClient(
			api.WithBaseURL(cfg.Market.BaseURL),
			api.WithTimeout(time.Duration(cfg.Market.TimeoutSeconds)*time.Second),
			api.WithLogging(true),
		),
		limiter: NewRateLimiter(cfg.Market.RequestsPerMinute, refill),
	}
}

// FetchAssets fetches one snapshot per asset id. Assets that fail for any
// reason (network, non-200, missing fields) are skipped; the remaining map
// is returned as-is. Only a cancelled context aborts the whole fetch.
func (p *CoinGeckoProvider) FetchAssets(ctx context.Context, ids []string) (map[string]types.AssetSnapshot, error) {
	timer := logger.StartOperation(ctx, "coingecko.FetchAssets", "assets", len(ids))
	ctx = timer.GetContext()

	snapshots := make(map[string]types.AssetSnapshot, len(ids))

	for _, id := range ids {
		if err := p.limiter.Wait(ctx); err != nil {
			timer.EndWithError(err, "fetched", len(snapshots))
			return snapshots, err
		}

		snap, err := p.fetchOne(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				timer.EndWithError(ctx.Err(), "fetched", len(snapshots))
				return snapshots, ctx.Err()
			}
			logger.ErrorWithErr(ctx, "Failed to fetch asset data", err, "asset", id)
			continue
		}
		snapshots[id] = snap
	}

	timer.End("fetched", len(snapshots))
	return snapshots, nil
}

func (p *CoinGeckoProvider) fetchOne(ctx context.Context, id string) (types.AssetSnapshot, error) {
	resp, err := p.client.GET(ctx, "/coins/"+id, api.BrowserHeaders())
	if err != nil {
		return types.AssetSnapshot{}, err
	}

	var cr coinResponse
	if err := resp.ParseJSON(&cr); err != nil {
		return types.AssetSnapshot{}, err
	}

	price, ok := cr.MarketData.CurrentPrice["usd"]
	if !ok {
		return types.AssetSnapshot{}, fmt.Errorf("asset %s: missing usd price", id)
	}
	volume, ok := cr.MarketData.TotalVolume["usd"]
	if !ok {
		return types.AssetSnapshot{}, fmt.Errorf("asset %s: missing usd volume", id)
	}
	marketCap, ok := cr.MarketData.MarketCap["usd"]
	if !ok {
		return types.AssetSnapshot{}, fmt.Errorf("asset %s: missing usd market cap", id)
	}
	if cr.MarketData.PriceChangePercentage24h == nil {
		return types.AssetSnapshot{}, fmt.Errorf("asset %s: missing 24h price change", id)
	}

	return types.AssetSnapshot{
		Name:           cr.Name,
		Symbol:         cr.Symbol,
		Price:          price,
		Volume:         volume,
		MarketCap:      marketCap,
		PriceChange24h: *cr.MarketData.PriceChangePercentage24h,
	}, nil
}
