package llm

import "context"

// Message represents a conversation turn.
type Message struct {
	Role    string // "user" or "model"
	Content string
}

// Client defines the interface for conversational model providers.
type Client interface {
	// Generate produces the model's reply to the conversation so far.
	Generate(ctx context.Context, messages []Message) (string, error)
}
