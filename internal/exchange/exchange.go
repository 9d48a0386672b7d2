package exchange

import (
	"context"
	"strings"

	"crypto-advisor/internal/interfaces"
	"crypto-advisor/internal/logger"
	"crypto-advisor/internal/trace"
)

// FetchPrices queries each source for the symbol's last traded price.
// Sources that error are skipped; a partial map is a valid result.
func FetchPrices(ctx context.Context, sources []interfaces.PriceSource, symbol string) map[string]float64 {
	ctx, span := trace.StartSpan(ctx, "exchange.FetchPrices")
	defer span.End()

	prices := make(map[string]float64, len(sources))
	for _, src := range sources {
		price, err := src.LastPrice(ctx, symbol)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to fetch exchange price", err,
				"exchange", src.Name(), "symbol", symbol)
			continue
		}
		prices[src.Name()] = price
	}

	logger.Info(ctx, "Exchange prices fetched",
		"symbol", symbol, "requested", len(sources), "fetched", len(prices))
	return prices
}

// splitSymbol splits "ADA/USDT" into base and quote.
func splitSymbol(symbol string) (base, quote string) {
	parts := strings.SplitN(symbol, "/", 2)
	if len(parts) != 2 {
		return symbol, ""
	}
	return strings.ToUpper(parts[0]), strings.ToUpper(parts[1])
}
