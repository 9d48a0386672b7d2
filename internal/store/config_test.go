package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
llm:
  provider: GROQ
  model: llama3-70b-8192
market:
  memecoins: [dogecoin]
  majors: [bitcoin]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
	if cfg.Market.BaseURL != "https://api.coingecko.com/api/v3" {
		t.Errorf("Market.BaseURL = %q", cfg.Market.BaseURL)
	}
	if cfg.Search.NumResults != 5 {
		t.Errorf("Search.NumResults = %d, want default 5", cfg.Search.NumResults)
	}
	if cfg.Search.TrendQuery == "" || cfg.Search.BTCQuery == "" || cfg.Search.InvestmentQuery == "" {
		t.Error("search queries should carry defaults")
	}
	if cfg.Arbitrage.Symbol != "ADA/USDT" {
		t.Errorf("Arbitrage.Symbol = %q", cfg.Arbitrage.Symbol)
	}
	if cfg.Arbitrage.FeePct != 0.2 {
		t.Errorf("Arbitrage.FeePct = %v", cfg.Arbitrage.FeePct)
	}
	if len(cfg.Arbitrage.Exchanges) == 0 {
		t.Error("Arbitrage.Exchanges should carry defaults")
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "bad provider",
			content: `
llm: {provider: GEMINI, model: x}
market: {memecoins: [dogecoin], majors: [bitcoin]}
`,
		},
		{
			name: "missing model",
			content: `
llm: {provider: GROQ}
market: {memecoins: [dogecoin], majors: [bitcoin]}
`,
		},
		{
			name: "empty memecoins",
			content: `
llm: {provider: GROQ, model: x}
market: {memecoins: [], majors: [bitcoin]}
`,
		},
		{
			name: "negative requests_per_minute",
			content: `
llm: {provider: GROQ, model: x}
market: {memecoins: [dogecoin], majors: [bitcoin], requests_per_minute: -5}
`,
		},
		{
			name: "num_results out of range",
			content: `
llm: {provider: GROQ, model: x}
market: {memecoins: [dogecoin], majors: [bitcoin]}
search: {num_results: 50}
`,
		},
		{
			name: "bad arbitrage symbol",
			content: `
llm: {provider: GROQ, model: x}
market: {memecoins: [dogecoin], majors: [bitcoin]}
arbitrage: {symbol: ADAUSDT}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadConfigNoopProvider(t *testing.T) {
	path := writeConfig(t, `
llm: {provider: NOOP}
market: {memecoins: [dogecoin], majors: [bitcoin]}
`)

	if _, err := LoadConfig(path); err != nil {
		t.Errorf("NOOP provider should not require a model: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
