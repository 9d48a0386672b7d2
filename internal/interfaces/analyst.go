package interfaces

import "context"

// Analyst sends a prompt to an LLM completion endpoint and returns the raw
// response text.
type Analyst interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
