package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Request is a single-turn completion request. Prefill, when set, is placed
// at the start of the assistant turn for the model to continue.
type Request struct {
	System    string
	Prompt    string
	Prefill   string
	MaxTokens int
}

// Client is a text completion backend.
// Complete returns the text that follows the prefill, never the prefill itself.
type Client interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
}

var ErrEmptyResponse = errors.New("llm: model returned an empty response")

// Options selects and configures a provider.
type Options struct {
	Provider string // anthropic, openai, gemini
	APIKey   string
	Model    string
	BaseURL  string
}

// New builds the client named by opts.Provider.
func New(ctx context.Context, opts Options) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", "anthropic", "claude":
		return NewAnthropicClient(opts.APIKey, opts.Model, opts.BaseURL), nil
	case "openai":
		return NewOpenAIClient(opts.APIKey, opts.Model, opts.BaseURL), nil
	case "gemini", "google":
		return NewGeminiClient(ctx, opts.APIKey, opts.Model)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", opts.Provider)
	}
}

// trimPrefill drops a leading copy of the prefill from providers that answer
// with the whole message instead of a continuation.
func trimPrefill(text, prefill string) string {
	if prefill == "" {
		return text
	}
	trimmed := strings.TrimLeft(text, " \t\r\n")
	if strings.HasPrefix(trimmed, prefill) {
		return strings.TrimPrefix(trimmed, prefill)
	}
	return text
}
