package exchange

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"crypto-advisor/internal/api"
	"crypto-advisor/internal/interfaces"
)

const tickerTimeout = 10 * time.Second

// KrakenSource reads the public Kraken ticker.
type KrakenSource struct {
	client *api.Client
}

func NewKrakenSource() *KrakenSource {
	return &KrakenSource{
		client: api.NewClient(
			api.WithBaseURL("https://api.kraken.com"),
			api.WithTimeout(tickerTimeout),
		),
	}
}

func (s *KrakenSource) Name() string { return "kraken" }

func (s *KrakenSource) LastPrice(ctx context.Context, symbol string) (float64, error) {
	base, quote := splitSymbol(symbol)
	pair := base + quote

	resp, err := s.client.GET(ctx, "/0/public/Ticker?pair="+pair)
	if err != nil {
		return 0, err
	}

	// Result is keyed by Kraken's own pair spelling, so take the first entry.
	var body struct {
		Error  []string `json:"error"`
		Result map[string]struct {
			C []string `json:"c"` // last trade closed [price, lot volume]
		} `json:"result"`
	}
	if err := resp.ParseJSON(&body); err != nil {
		return 0, err
	}
	if len(body.Error) > 0 {
		return 0, fmt.Errorf("kraken ticker %s: %s", pair, body.Error[0])
	}
	for _, t := range body.Result {
		if len(t.C) == 0 {
			break
		}
		return strconv.ParseFloat(t.C[0], 64)
	}
	return 0, fmt.Errorf("kraken ticker %s: no last trade in response", pair)
}

// CoinbaseSource reads the public Coinbase spot price endpoint.
type CoinbaseSource struct {
	client *api.Client
}

func NewCoinbaseSource() *CoinbaseSource {
	return &CoinbaseSource{
		client: api.NewClient(
			api.WithBaseURL("https://api.coinbase.com"),
			api.WithTimeout(tickerTimeout),
		),
	}
}

func (s *CoinbaseSource) Name() string { return "coinbase" }

func (s *CoinbaseSource) LastPrice(ctx context.Context, symbol string) (float64, error) {
	base, quote := splitSymbol(symbol)
	pair := base + "-" + quote

	resp, err := s.client.GET(ctx, "/v2/prices/"+pair+"/spot")
	if err != nil {
		return 0, err
	}

	var body struct {
		Data struct {
			Amount string `json:"amount"`
		} `json:"data"`
	}
	if err := resp.ParseJSON(&body); err != nil {
		return 0, err
	}
	if body.Data.Amount == "" {
		return 0, fmt.Errorf("coinbase spot %s: empty amount", pair)
	}
	return strconv.ParseFloat(body.Data.Amount, 64)
}

// BitfinexSource reads the public Bitfinex ticker. Bitfinex spells Tether
// quotes as UST.
type BitfinexSource struct {
	client *api.Client
}

func NewBitfinexSource() *BitfinexSource {
	return &BitfinexSource{
		client: api.NewClient(
			api.WithBaseURL("https://api-pub.bitfinex.com"),
			api.WithTimeout(tickerTimeout),
		),
	}
}

func (s *BitfinexSource) Name() string { return "bitfinex" }

func (s *BitfinexSource) LastPrice(ctx context.Context, symbol string) (float64, error) {
	base, quote := splitSymbol(symbol)
	if quote == "USDT" {
		quote = "UST"
	}
	pair := "t" + base + quote

	resp, err := s.client.GET(ctx, "/v2/ticker/"+pair)
	if err != nil {
		return 0, err
	}

	// Ticker is a flat array; index 6 is the last trade price.
	var fields []float64
	if err := resp.ParseJSON(&fields); err != nil {
		return 0, err
	}
	if len(fields) < 7 {
		return 0, fmt.Errorf("bitfinex ticker %s: short response (%d fields)", pair, len(fields))
	}
	return fields[6], nil
}

// BuildSources maps configured exchange names to price sources. Unknown
// names are dropped.
func BuildSources(names []string) []interfaces.PriceSource {
	sources := make([]interfaces.PriceSource, 0, len(names))
	for _, name := range names {
		switch name {
		case "binance":
			sources = append(sources, NewBinanceSource())
		case "kraken":
			sources = append(sources, NewKrakenSource())
		case "coinbase":
			sources = append(sources, NewCoinbaseSource())
		case "bitfinex":
			sources = append(sources, NewBitfinexSource())
		}
	}
	return sources
}
