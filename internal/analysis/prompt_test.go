package analysis

import (
	"strings"
	"testing"

	"crypto-advisor/internal/types"
)

func TestMemecoinPromptWithData(t *testing.T) {
	data := map[string]types.AssetSnapshot{
		"dogecoin": {Name: "Dogecoin", Symbol: "doge", Price: 0.1, Volume: 1e9, MarketCap: 1.5e10, PriceChange24h: 2.5},
	}
	trends := []types.TrendItem{
		{Title: "Memecoins rally", Link: "https://example.com/a", Snippet: "Doge leads the pack"},
	}

	prompt := MemecoinPrompt(data, trends)

	for _, want := range []string{"Dogecoin", "Memecoins rally", `"final_decision"`, `"token_name"`, "<true/false>"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestPromptsWellFormedWithEmptyInputs(t *testing.T) {
	// Zero search results and failed market fetches must still produce a
	// well-formed prompt.
	prompts := map[string]string{
		"memecoin":   MemecoinPrompt(map[string]types.AssetSnapshot{}, []types.TrendItem{}),
		"bitcoin":    BitcoinPrompt(nil, []types.TrendItem{}),
		"investment": InvestmentPrompt(map[string]types.AssetSnapshot{}, []types.TrendItem{}),
	}

	for name, prompt := range prompts {
		if strings.TrimSpace(prompt) == "" {
			t.Errorf("%s prompt is empty", name)
		}
		if !strings.Contains(prompt, `"final_decision"`) {
			t.Errorf("%s prompt missing final_decision skeleton", name)
		}
		if !strings.Contains(prompt, "Trends: []") {
			t.Errorf("%s prompt missing empty trends rendering: %q", name, prompt)
		}
	}

	if !strings.Contains(prompts["bitcoin"], "Bitcoin Data: null") {
		t.Error("bitcoin prompt should render a missing snapshot as null")
	}
}

func TestInvestmentPromptAsksForReason(t *testing.T) {
	prompt := InvestmentPrompt(map[string]types.AssetSnapshot{}, nil)
	if !strings.Contains(prompt, `"reason"`) {
		t.Error("investment prompt must request a reason field")
	}
}

func TestArbitragePrompt(t *testing.T) {
	prices := map[string]float64{"binance": 0.331, "kraken": 0.334}
	prompt := ArbitragePrompt("ADA/USDT", prices, 0.2)

	for _, want := range []string{"ADA/USDT", "binance", "kraken", "0.2%", `"final_recommendation"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
