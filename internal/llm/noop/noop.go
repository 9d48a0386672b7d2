package noop

import (
	"context"
	"errors"

	"crypto-advisor/internal/logger"
)

// NoopAnalyst is a fallback used when no LLM provider is configured. It
// always errors, which the handlers mask with the fixed analysis message and
// sentinel decision.
type NoopAnalyst struct{}

func NewNoopAnalyst() *NoopAnalyst {
	return &NoopAnalyst{}
}

func (a *NoopAnalyst) Complete(ctx context.Context, prompt string) (string, error) {
	logger.Debug(ctx, "Noop analyst called - no LLM provider configured")
	return "", errors.New("no LLM provider configured")
}
