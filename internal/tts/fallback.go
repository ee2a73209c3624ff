package tts

import (
	"context"
	"log"
)

// Synthesizer orchestrates the free and paid providers: the free provider is
// always tried first because it costs nothing, with the cached paid provider
// as the higher-fidelity fallback. Synthesize never returns an error; every
// provider failure is logged and collapses to nil ("no audio").
type Synthesizer struct {
	free   Client // may be nil
	paid   Client // may be nil; normally a *CachedClient
	logger *log.Logger
}

// NewSynthesizer creates a fallback synthesizer. Either provider may be nil,
// in which case that stage is skipped.
func NewSynthesizer(free, paid Client, logger *log.Logger) *Synthesizer {
	return &Synthesizer{free: free, paid: paid, logger: logger}
}

// Synthesize returns audio for text, or nil when no provider could produce
// any.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) []byte {
	if s.free != nil {
		audio, err := s.free.Synthesize(ctx, text)
		if err == nil && len(audio) > 0 {
			return audio
		}
		if err != nil {
			s.logger.Printf("tts: free provider failed, falling back: %v", err)
		}
	}

	if s.paid != nil {
		audio, err := s.paid.Synthesize(ctx, text)
		if err == nil && len(audio) > 0 {
			return audio
		}
		if err != nil {
			s.logger.Printf("tts: paid provider failed: %v", err)
		}
	}

	return nil
}
