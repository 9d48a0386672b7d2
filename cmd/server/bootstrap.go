package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"crypto-advisor/internal/exchange"
	"crypto-advisor/internal/interfaces"
	"crypto-advisor/internal/llm/groq"
	"crypto-advisor/internal/llm/llmobs"
	"crypto-advisor/internal/llm/noop"
	"crypto-advisor/internal/llm/openai"
	"crypto-advisor/internal/logger"
	"crypto-advisor/internal/market"
	"crypto-advisor/internal/market/marketobs"
	"crypto-advisor/internal/store"
	"crypto-advisor/internal/trace"
	"crypto-advisor/internal/trends"
	"crypto-advisor/internal/trends/trendsobs"
)

// initializeSystem loads the environment and sets up logging and tracing
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}

// initializeMarket returns the market data provider with observability
func initializeMarket(ctx context.Context, cfg *store.Config) interfaces.MarketDataProvider {
	logger.Info(ctx, "Using CoinGecko market data",
		"base_url", cfg.Market.BaseURL,
		"requests_per_minute", cfg.Market.RequestsPerMinute,
	)
	return marketobs.Wrap(market.NewCoinGeckoProvider(cfg))
}

// initializeTrends returns the trend searcher with observability
func initializeTrends(ctx context.Context, cfg *store.Config) interfaces.TrendSearcher {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	cseID := os.Getenv("GOOGLE_CSE_ID")
	if apiKey == "" || cseID == "" {
		logger.Warn(ctx, "Google Custom Search not configured - trend search will use the news scraper fallback")
	}
	return trendsobs.Wrap(trends.NewService(cfg, apiKey, cseID))
}

// initializeAnalyst returns the LLM analyst with observability
func initializeAnalyst(ctx context.Context, cfg *store.Config) interfaces.Analyst {
	var analyst interfaces.Analyst

	switch strings.ToUpper(cfg.LLM.Provider) {
	case "GROQ":
		analyst = groq.NewGroqAnalyst(cfg)
	case "OPENAI":
		analyst = openai.NewOpenAIAnalyst(cfg)
	default:
		analyst = noop.NewNoopAnalyst()
		logger.Warn(ctx, "No LLM provider configured - responses will carry the fallback analysis")
	}

	return llmobs.Wrap(analyst)
}

// initializeExchanges returns the configured arbitrage price sources
func initializeExchanges(ctx context.Context, cfg *store.Config) []interfaces.PriceSource {
	sources := exchange.BuildSources(cfg.Arbitrage.Exchanges)
	if len(sources) < len(cfg.Arbitrage.Exchanges) {
		logger.Warn(ctx, "Some configured exchanges are unknown and were skipped",
			"configured", len(cfg.Arbitrage.Exchanges),
			"active", len(sources),
		)
	}
	return sources
}
