package tts

import "context"

// Client defines the interface for text-to-speech providers.
type Client interface {
	// Synthesize converts text to speech and returns audio data.
	// The audio is fully materialized before returning; providers that
	// stream internally must drain the stream into a single buffer.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
