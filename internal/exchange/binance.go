package exchange

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adshao/go-binance/v2"
)

// BinanceSource fetches last prices through the Binance SDK. Public ticker
// endpoints need no credentials.
type BinanceSource struct {
	client *binance.Client
}

func NewBinanceSource() *BinanceSource {
	return &BinanceSource{client: binance.NewClient("", "")}
}

func (s *BinanceSource) Name() string { return "binance" }

func (s *BinanceSource) LastPrice(ctx context.Context, symbol string) (float64, error) {
	base, quote := splitSymbol(symbol)
	pair := base + quote

	prices, err := s.client.NewListPricesService().Symbol(pair).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("binance ticker %s: %w", pair, err)
	}
	if len(prices) == 0 {
		return 0, fmt.Errorf("binance ticker %s: no price returned", pair)
	}

	price, err := strconv.ParseFloat(prices[0].Price, 64)
	if err != nil {
		return 0, fmt.Errorf("binance ticker %s: bad price %q: %w", pair, prices[0].Price, err)
	}
	return price, nil
}
