package analysis

import (
	"encoding/json"
	"fmt"

	"crypto-advisor/internal/types"
)

// Prompts ask for a JSON-shaped answer whose final_decision fragment the
// extractor later scrapes. Fetched data is embedded as JSON.

// MemecoinPrompt asks for the best memecoin to buy or sell.
func MemecoinPrompt(data map[string]types.AssetSnapshot, trends []types.TrendItem) string {
	return fmt.Sprintf(`Analyze the following memecoin data and trends. Recommend the best coin to buy or sell.
Memecoin Data: %s
Trends: %s

Return the result in this format:
{
  "analysis": "<detailed analysis>",
  "final_decision": {
    "token_name": "<best_token>",
    "decision": <true/false>
  }
}
`, asJSON(data), asJSON(trends))
}

// BitcoinPrompt asks whether to buy Bitcoin at the current time.
func BitcoinPrompt(data *types.AssetSnapshot, trends []types.TrendItem) string {
	return fmt.Sprintf(`Analyze the following Bitcoin data and trends. Recommend whether to buy Bitcoin (BTC) at the current time.
Bitcoin Data: %s
Trends: %s

Return the result in this format:
{
  "analysis": "<detailed analysis>",
  "final_decision": {
    "token_name": "Bitcoin",
    "decision": <true/false>
  }
}
`, asJSON(data), asJSON(trends))
}

// InvestmentPrompt asks for the best long-term pick, with a justification
// that the extractor pulls out alongside the verdict.
func InvestmentPrompt(data map[string]types.AssetSnapshot, trends []types.TrendItem) string {
	return fmt.Sprintf(`Analyze the following cryptocurrency data and market trends. Recommend the best cryptocurrency for long-term investment.
Cryptocurrency Data: %s
Trends: %s

Include in the analysis:
1. Current market conditions (price, market cap, volume).
2. Growth potential based on market trends.
3. Risks and opportunities.

Return the result in this JSON format:
{
  "analysis": "<detailed analysis>",
  "final_decision": {
    "token_name": "<best_coin>",
    "decision": <true/false>,
    "reason": "<justification>"
  }
}
`, asJSON(data), asJSON(trends))
}

// ArbitragePrompt asks for an arbitrage assessment over per-exchange prices.
// The response is returned to the caller verbatim.
func ArbitragePrompt(symbol string, prices map[string]float64, feePct float64) string {
	return fmt.Sprintf(`You are a financial expert specializing in cryptocurrency arbitrage. Analyze the following %s prices across multiple exchanges:

%s

Provide a detailed analysis that includes:
1. The exchange with the lowest price for buying.
2. The exchange with the highest price for selling.
3. The calculated profit margin based on the difference between the buying and selling prices.
4. Any significant observations about the price differences across exchanges.
5. A final recommendation: Should the user proceed with an arbitrage trade, considering the profit margin, trading fees (assume %.1f%% per trade), and any other potential risks? Justify your recommendation.

Return your response in this structure:
{
  "analysis": "<Your detailed analysis>",
  "final_recommendation": {
    "buy_exchange": "<exchange_name>",
    "sell_exchange": "<exchange_name>",
    "buy_price": <price>,
    "sell_price": <price>,
    "profit_margin": <percentage>,
    "should_proceed": <true/false>,
    "reason": "<justification for the recommendation>"
  }
}
`, symbol, asJSON(prices), feePct)
}

// asJSON renders fetched data for prompt embedding. Marshalling these value
// types cannot fail; the %v fallback keeps the prompt well-formed if it
// somehow does.
func asJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
