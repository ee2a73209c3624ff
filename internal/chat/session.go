// Package chat owns the single long-lived conversation with the model.
package chat

import (
	"context"
	"fmt"

	"github.com/boobalamurugan/assistant/internal/llm"
)

// MaxMessageLen bounds inbound messages before they reach the model, to keep
// token usage down. Longer input is cut and marked with TruncationMarker.
const (
	MaxMessageLen    = 500
	TruncationMarker = "..."
)

// Session is the process-wide conversation: an ordered turn history seeded
// with one priming turn. All chat requests share it; there is no per-caller
// isolation. The history is not locked — the deployment assumes a single
// interactive user, and interleaved turns from concurrent requests are an
// accepted limitation.
type Session struct {
	client  llm.Client
	history []llm.Message
}

// NewSession creates the conversation, seeding the history with the priming
// instruction turn and a short model acknowledgment.
func NewSession(client llm.Client, primingMessage string) *Session {
	return &Session{
		client: client,
		history: []llm.Message{
			{Role: "user", Content: primingMessage},
			{Role: "model", Content: "Understood. I'll respond as described, in natural spoken English."},
		},
	}
}

// Reply truncates userMessage, forwards the conversation to the model, and
// appends both turns to the history. On model failure the history is left
// unchanged and the error is returned for the caller to map to a fallback
// reply.
func (s *Session) Reply(ctx context.Context, userMessage string) (string, error) {
	userMessage = Truncate(userMessage)

	turns := append(s.history, llm.Message{Role: "user", Content: userMessage})

	text, err := s.client.Generate(ctx, turns)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}

	s.history = append(turns, llm.Message{Role: "model", Content: text})
	return text, nil
}

// Len reports the number of turns in the history, including the seed turns.
func (s *Session) Len() int {
	return len(s.history)
}

// Truncate caps msg at MaxMessageLen runes, appending TruncationMarker when
// the tail was discarded.
func Truncate(msg string) string {
	runes := []rune(msg)
	if len(runes) <= MaxMessageLen {
		return msg
	}
	return string(runes[:MaxMessageLen]) + TruncationMarker
}
