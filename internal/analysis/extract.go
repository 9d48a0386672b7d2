package analysis

import (
	"regexp"

	"crypto-advisor/internal/types"
)

// The LLM is asked for a JSON-shaped answer but routinely wraps it in prose,
// so the verdict is scraped with a pattern rather than parsed. Whitespace
// between tokens varies across models; key order does not.
var (
	decisionPattern = regexp.MustCompile(
		`"final_decision"\s*:\s*\{\s*"token_name"\s*:\s*"([^"]+)"\s*,\s*"decision"\s*:\s*(true|false)`)
	reasonPattern = regexp.MustCompile(
		`"final_decision"\s*:\s*\{\s*"token_name"\s*:\s*"([^"]+)"\s*,\s*"decision"\s*:\s*(true|false)\s*,\s*"reason"\s*:\s*"([^"]+)"`)
)

// Sentinel values returned when nothing could be extracted.
const (
	SentinelToken  = "None"
	SentinelReason = "No data available."
)

// ExtractDecision scrapes a token name and boolean verdict out of LLM text.
// Empty or non-matching input returns the sentinel; no error is ever raised.
func ExtractDecision(text string) types.Decision {
	m := decisionPattern.FindStringSubmatch(text)
	if m == nil {
		return types.Decision{TokenName: SentinelToken, Decision: false}
	}
	return types.Decision{
		TokenName: m[1],
		Decision:  m[2] == "true",
	}
}

// ExtractDecisionWithReason additionally scrapes the justification string.
// When the reason-bearing fragment is absent the whole extraction falls back
// to the sentinel, reason included.
func ExtractDecisionWithReason(text string) types.Decision {
	m := reasonPattern.FindStringSubmatch(text)
	if m == nil {
		return types.Decision{
			TokenName: SentinelToken,
			Decision:  false,
			Reason:    SentinelReason,
		}
	}
	return types.Decision{
		TokenName: m[1],
		Decision:  m[2] == "true",
		Reason:    m[3],
	}
}
