// Package llm defines the provider-agnostic LLM client contract and its
// gRPC implementation against the LLM sidecar service.
package llm

import (
	"context"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn sent to the model.
type Message struct {
	Role    Role
	Content string
}

// Options are per-call generation parameters. Zero values fall back to
// the sidecar's defaults.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Usage reports token consumption for one completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Completion is the result of a Complete call.
type Completion struct {
	Text       string
	Usage      Usage
	StopReason string
}

// Client is the engine-facing LLM contract. Implementations must honor
// ctx cancellation and deadlines on every call; the engine relies on
// per-call timeouts for its failure model.
type Client interface {
	Complete(ctx context.Context, messages []Message, opts Options) (*Completion, error)

	// Close releases the underlying connection.
	Close() error
}
