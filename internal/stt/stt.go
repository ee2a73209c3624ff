package stt

import (
	"context"
	"io"
)

// Client defines the interface for speech-to-text providers. Transcription
// is a single blocking request/response: the audio is consumed in full and
// the final transcript returned.
type Client interface {
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
}
