package llmobs

import (
	"context"

	"crypto-advisor/internal/interfaces"
	"crypto-advisor/internal/logger"
	"crypto-advisor/internal/trace"
)

// observableAnalyst wraps an Analyst with observability (logging & tracing)
type observableAnalyst struct {
	analyst interfaces.Analyst
}

// Compile-time interface check
var _ interfaces.Analyst = (*observableAnalyst)(nil)

// Wrap wraps an analyst with observability middleware
func Wrap(analyst interfaces.Analyst) interfaces.Analyst {
	return &observableAnalyst{analyst: analyst}
}

// Complete requests a completion with observability
func (oa *observableAnalyst) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "llm.Complete")
	defer span.End()

	// Use DebugSkip(1) to report the actual caller, not this middleware wrapper
	logger.DebugSkip(ctx, 1, "Requesting LLM completion", "prompt_chars", len(prompt))

	text, err := oa.analyst.Complete(ctx, prompt)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "LLM completion failed", err)
		return "", err
	}

	logger.InfoSkip(ctx, 1, "LLM completion received", "response_chars", len(text))
	return text, nil
}
