package analysis

import (
	"context"

	"crypto-advisor/internal/exchange"
	"crypto-advisor/internal/interfaces"
	"crypto-advisor/internal/logger"
	"crypto-advisor/internal/store"
	"crypto-advisor/internal/trace"
	"crypto-advisor/internal/types"
)

// Fixed user-facing messages substituted when the LLM call fails. Upstream
// unavailability is deliberately not distinguishable from "no opportunity"
// in the response.
const (
	fallbackAnalysis          = "Unable to analyze market data."
	fallbackArbitrageAnalysis = "Unable to analyze arbitrage opportunities."
)

// Service orchestrates one analysis per request: fetch market data, fetch
// trends, compose the prompt, call the LLM, extract the verdict. Every
// failure path degrades to partial or sentinel content; nothing here returns
// an error to the HTTP layer.
type Service struct {
	cfg     *store.Config
	market  interfaces.MarketDataProvider
	trends  interfaces.TrendSearcher
	analyst interfaces.Analyst
	sources []interfaces.PriceSource
}

func NewService(cfg *store.Config, market interfaces.MarketDataProvider, trends interfaces.TrendSearcher, analyst interfaces.Analyst, sources []interfaces.PriceSource) *Service {
	return &Service{
		cfg:     cfg,
		market:  market,
		trends:  trends,
		analyst: analyst,
		sources: sources,
	}
}

// MemecoinReport analyzes the configured memecoin list against current
// trends.
func (s *Service) MemecoinReport(ctx context.Context) types.Report {
	ctx, span := trace.StartSpan(ctx, "analysis.MemecoinReport")
	defer span.End()

	data := s.fetchAssets(ctx, s.cfg.Market.Memecoins)
	items := s.fetchTrends(ctx, s.cfg.Search.TrendQuery)
	return s.report(ctx, "trend", MemecoinPrompt(data, items), false)
}

// BitcoinReport analyzes Bitcoin alone.
func (s *Service) BitcoinReport(ctx context.Context) types.Report {
	ctx, span := trace.StartSpan(ctx, "analysis.BitcoinReport")
	defer span.End()

	data := s.fetchAssets(ctx, []string{"bitcoin"})
	var snap *types.AssetSnapshot
	if b, ok := data["bitcoin"]; ok {
		snap = &b
	}
	items := s.fetchTrends(ctx, s.cfg.Search.BTCQuery)
	return s.report(ctx, "btc", BitcoinPrompt(snap, items), false)
}

// InvestmentReport picks the best long-term hold among the configured major
// coins. This is the only route whose verdict carries a reason.
func (s *Service) InvestmentReport(ctx context.Context) types.Report {
	ctx, span := trace.StartSpan(ctx, "analysis.InvestmentReport")
	defer span.End()

	data := s.fetchAssets(ctx, s.cfg.Market.Majors)
	items := s.fetchTrends(ctx, s.cfg.Search.InvestmentQuery)
	return s.report(ctx, "investment", InvestmentPrompt(data, items), true)
}

// ArbitrageReport collects per-exchange prices for the configured symbol and
// returns the LLM's assessment verbatim, without decision extraction.
func (s *Service) ArbitrageReport(ctx context.Context) types.ArbitrageReport {
	ctx, span := trace.StartSpan(ctx, "analysis.ArbitrageReport")
	defer span.End()

	prices := exchange.FetchPrices(ctx, s.sources, s.cfg.Arbitrage.Symbol)

	text, err := s.analyst.Complete(ctx, ArbitragePrompt(s.cfg.Arbitrage.Symbol, prices, s.cfg.Arbitrage.FeePct))
	if err != nil || text == "" {
		text = fallbackArbitrageAnalysis
	}

	return types.ArbitrageReport{Prices: prices, AIAnalysis: text}
}

// fetchAssets masks fetch errors into partial (possibly empty) data.
func (s *Service) fetchAssets(ctx context.Context, ids []string) map[string]types.AssetSnapshot {
	data, err := s.market.FetchAssets(ctx, ids)
	if err != nil {
		logger.ErrorWithErr(ctx, "Market data fetch degraded", err, "assets", len(ids))
	}
	if data == nil {
		data = map[string]types.AssetSnapshot{}
	}
	return data
}

// fetchTrends masks search errors into an empty list.
func (s *Service) fetchTrends(ctx context.Context, query string) []types.TrendItem {
	items, err := s.trends.Search(ctx, query, s.cfg.Search.NumResults)
	if err != nil {
		logger.ErrorWithErr(ctx, "Trend search degraded", err, "query", query)
		return []types.TrendItem{}
	}
	if items == nil {
		items = []types.TrendItem{}
	}
	return items
}

// report runs the LLM step and extraction for one route.
func (s *Service) report(ctx context.Context, route, prompt string, withReason bool) types.Report {
	text, err := s.analyst.Complete(ctx, prompt)
	if err != nil {
		text = ""
	}

	var decision types.Decision
	if withReason {
		decision = ExtractDecisionWithReason(text)
	} else {
		decision = ExtractDecision(text)
	}

	analysis := text
	if analysis == "" {
		analysis = fallbackAnalysis
	}

	logger.Verdict(ctx, route, decision.TokenName, decision.Decision, decision.Reason)

	return types.Report{Analysis: analysis, FinalDecision: decision}
}
