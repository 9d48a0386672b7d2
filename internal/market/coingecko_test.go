package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"crypto-advisor/internal/store"
)

func coinPayload(name, symbol string, price, volume, marketCap, change float64) string {
	return fmt.Sprintf(`{
		"name": %q,
		"symbol": %q,
		"market_data": {
			"current_price": {"usd": %g},
			"total_volume": {"usd": %g},
			"market_cap": {"usd": %g},
			"price_change_percentage_24h": %g
		}
	}`, name, symbol, price, volume, marketCap, change)
}

func providerFor(t *testing.T, handler http.HandlerFunc) (*CoinGeckoProvider, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &store.Config{}
	cfg.Market.BaseURL = ts.URL
	cfg.Market.TimeoutSeconds = 2
	cfg.Market.RequestsPerMinute = 600

	return NewCoinGeckoProvider(cfg), ts
}

func TestFetchAssets(t *testing.T) {
	provider, _ := providerFor(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/coins/dogecoin":
			fmt.Fprint(w, coinPayload("Dogecoin", "doge", 0.1, 1e9, 1.5e10, 2.5))
		case "/coins/pepe":
			fmt.Fprint(w, coinPayload("Pepe", "pepe", 0.00001, 5e8, 4e9, -1.2))
		default:
			http.NotFound(w, r)
		}
	})

	snapshots, err := provider.FetchAssets(context.Background(), []string{"dogecoin", "pepe"})
	if err != nil {
		t.Fatalf("FetchAssets: %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snapshots))
	}

	doge := snapshots["dogecoin"]
	if doge.Name != "Dogecoin" || doge.Symbol != "doge" || doge.Price != 0.1 {
		t.Errorf("dogecoin snapshot = %+v", doge)
	}
	if doge.PriceChange24h != 2.5 {
		t.Errorf("PriceChange24h = %v, want 2.5", doge.PriceChange24h)
	}
}

func TestFetchAssetsSkipsFailures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		status  int
	}{
		{"missing price fields", `{"name": "Broken", "symbol": "brk", "market_data": {"current_price": {}}}`, 200},
		{"null price change", `{"name": "Broken", "symbol": "brk", "market_data": {"current_price": {"usd": 1}, "total_volume": {"usd": 1}, "market_cap": {"usd": 1}, "price_change_percentage_24h": null}}`, 200},
		{"not found", `{"error": "coin not found"}`, 404},
		{"garbage body", `<html>rate limited</html>`, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, _ := providerFor(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/coins/broken" {
					w.WriteHeader(tt.status)
					fmt.Fprint(w, tt.payload)
					return
				}
				fmt.Fprint(w, coinPayload("Dogecoin", "doge", 0.1, 1e9, 1.5e10, 2.5))
			})

			snapshots, err := provider.FetchAssets(context.Background(), []string{"broken", "dogecoin"})
			if err != nil {
				t.Fatalf("FetchAssets: %v", err)
			}
			if len(snapshots) != 1 {
				t.Fatalf("got %d snapshots, want 1 (broken asset skipped)", len(snapshots))
			}
			if _, ok := snapshots["dogecoin"]; !ok {
				t.Error("healthy asset should survive a sibling failure")
			}
		})
	}
}

func TestFetchAssetsCancelledContext(t *testing.T) {
	provider, _ := providerFor(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, coinPayload("Dogecoin", "doge", 0.1, 1e9, 1.5e10, 2.5))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.FetchAssets(ctx, []string{"dogecoin"})
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}
