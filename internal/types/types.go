package types

// AssetSnapshot is a single fetch-time market data record for one
// cryptocurrency. Fetched fresh per request, never persisted.
type AssetSnapshot struct {
	Name           string  `json:"name"`
	Symbol         string  `json:"symbol"`
	Price          float64 `json:"price"`
	Volume         float64 `json:"volume"`
	MarketCap      float64 `json:"market_cap"`
	PriceChange24h float64 `json:"price_change_24h"`
}

// TrendItem is one web search result.
type TrendItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Decision is the structured verdict scraped out of the LLM's free-text
// response. TokenName "None" with Decision false is the fallback when
// nothing could be extracted.
type Decision struct {
	TokenName string `json:"token_name"`
	Decision  bool   `json:"decision"`
	Reason    string `json:"reason,omitempty"`
}

// Report is the response body for the analysis endpoints.
type Report struct {
	Analysis      string   `json:"analysis"`
	FinalDecision Decision `json:"final_decision"`
}

// ArbitrageReport is the response body for the arbitrage endpoint. The LLM
// text is returned as-is; no decision extraction happens on this route.
type ArbitrageReport struct {
	Prices     map[string]float64 `json:"prices"`
	AIAnalysis string             `json:"ai_analysis"`
}
