package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"crypto-advisor/internal/store"
	"crypto-advisor/internal/trace"
)

// GroqAnalyst sends prompts to the Groq chat-completion API. The API is
// OpenAI-compatible, so the request and response shapes match.
type GroqAnalyst struct {
	cfg      *store.Config
	endpoint string
}

func NewGroqAnalyst(cfg *store.Config) *GroqAnalyst {
	endpoint := "https://api.groq.com/openai/v1/chat/completions"
	if ep := os.Getenv("GROQ_API_ENDPOINT"); ep != "" {
		endpoint = ep
	}
	return &GroqAnalyst{cfg: cfg, endpoint: endpoint}
}

// Complete sends the prompt and returns the raw completion text.
func (a *GroqAnalyst) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "groq-api-call")
	defer span.End()

	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return "", errors.New("GROQ_API_KEY missing")
	}

	body := map[string]any{
		"model":       a.cfg.LLM.Model,
		"messages":    []map[string]string{{"role": "user", "content": prompt}},
		"temperature": a.cfg.LLM.Temperature,
		"max_tokens":  a.cfg.LLM.MaxTokens,
	}
	bb, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", a.endpoint, bytes.NewReader(bb))
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("groq http %d", resp.StatusCode)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}

	if len(r.Choices) == 0 {
		return "", errors.New("no choices")
	}

	return strings.TrimSpace(r.Choices[0].Message.Content), nil
}
