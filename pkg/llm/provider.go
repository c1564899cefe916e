package llm

import (
	"context"
)

// Message is a chat message in a provider-agnostic format.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Option carries optional generation parameters.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// LLMProvider is the contract for any chat-completion backend.
// Implementations must be safe for concurrent use; a single provider
// instance is shared by all in-flight requests.
type LLMProvider interface {
	// Chat sends the message sequence to the model and returns the single
	// textual completion. One completion per call, no streaming.
	Chat(ctx context.Context, messages []Message, options ...Option) (string, error)
}
