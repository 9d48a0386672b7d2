package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port        int      `yaml:"port"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Market struct {
		BaseURL           string   `yaml:"base_url"`
		TimeoutSeconds    int      `yaml:"timeout_seconds"`
		RequestsPerMinute int      `yaml:"requests_per_minute"`
		Memecoins         []string `yaml:"memecoins"`
		Majors            []string `yaml:"majors"`
	} `yaml:"market"`
	Search struct {
		NumResults      int    `yaml:"num_results"`
		TimeoutSeconds  int    `yaml:"timeout_seconds"`
		TrendQuery      string `yaml:"trend_query"`
		BTCQuery        string `yaml:"btc_query"`
		InvestmentQuery string `yaml:"investment_query"`
	} `yaml:"search"`
	LLM struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float32 `yaml:"temperature"`
	} `yaml:"llm"`
	Arbitrage struct {
		Symbol    string   `yaml:"symbol"`
		FeePct    float64  `yaml:"fee_pct"`
		Exchanges []string `yaml:"exchanges"`
	} `yaml:"arbitrage"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1-65535, got %d", c.Server.Port)
	}
	switch strings.ToUpper(c.LLM.Provider) {
	case "GROQ", "OPENAI", "NOOP":
	default:
		return fmt.Errorf("llm.provider must be 'GROQ', 'OPENAI', or 'NOOP', got '%s'", c.LLM.Provider)
	}
	if c.LLM.Model == "" && strings.ToUpper(c.LLM.Provider) != "NOOP" {
		return errors.New("llm.model cannot be empty")
	}
	if len(c.Market.Memecoins) == 0 {
		return errors.New("market.memecoins cannot be empty")
	}
	if len(c.Market.Majors) == 0 {
		return errors.New("market.majors cannot be empty")
	}
	if c.Market.RequestsPerMinute <= 0 {
		return fmt.Errorf("market.requests_per_minute must be positive, got %d", c.Market.RequestsPerMinute)
	}
	if c.Search.NumResults < 1 || c.Search.NumResults > 10 {
		return fmt.Errorf("search.num_results must be between 1-10, got %d", c.Search.NumResults)
	}
	if !strings.Contains(c.Arbitrage.Symbol, "/") {
		return fmt.Errorf("arbitrage.symbol must look like 'BASE/QUOTE', got '%s'", c.Arbitrage.Symbol)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Market.BaseURL == "" {
		c.Market.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if c.Market.TimeoutSeconds == 0 {
		c.Market.TimeoutSeconds = 10
	}
	if c.Market.RequestsPerMinute == 0 {
		c.Market.RequestsPerMinute = 30
	}
	if c.Search.NumResults == 0 {
		c.Search.NumResults = 5
	}
	if c.Search.TimeoutSeconds == 0 {
		c.Search.TimeoutSeconds = 10
	}
	if c.Search.TrendQuery == "" {
		c.Search.TrendQuery = "latest meme trends cryptocurrency"
	}
	if c.Search.BTCQuery == "" {
		c.Search.BTCQuery = "Bitcoin cryptocurrency trends"
	}
	if c.Search.InvestmentQuery == "" {
		c.Search.InvestmentQuery = "best cryptocurrencies for long term investment 2024"
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 1024
	}
	if c.Arbitrage.Symbol == "" {
		c.Arbitrage.Symbol = "ADA/USDT"
	}
	if c.Arbitrage.FeePct == 0 {
		c.Arbitrage.FeePct = 0.2
	}
	if len(c.Arbitrage.Exchanges) == 0 {
		c.Arbitrage.Exchanges = []string{"binance", "kraken", "coinbase", "bitfinex"}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
