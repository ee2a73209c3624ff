package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`
	SentryDSN string `env:"SENTRY_DSN"`

	// Optional Postgres pool for the operational event log. Empty disables
	// event logging entirely.
	DatabaseURL string `env:"DATABASE_URL"`

	// Provider credentials. Each one is optional; an absent key degrades
	// the owning feature instead of preventing startup.
	GeminiAPIKey     string `env:"GEMINI_API_KEY"`
	ElevenLabsAPIKey string `env:"ELEVEN_LABS_API_KEY"`
	AssemblyAIAPIKey string `env:"ASSEMBLY_AI_API_KEY"`

	// Persona
	ProfilePath string `env:"PROFILE_PATH" envDefault:"resume_data.json"`

	// Conversational model
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`

	// Voice settings
	TTSVoiceID    string  `env:"TTS_VOICE_ID" envDefault:"xnx6sPTtvU635ocDt2j7"`
	TTSStability  float64 `env:"TTS_STABILITY" envDefault:"0.75"`
	TTSSimilarity float64 `env:"TTS_SIMILARITY" envDefault:"0.75"`
	FreeTTSVoice  string  `env:"FREE_TTS_VOICE" envDefault:"Brian"`

	// Audio delivery
	AudioDeadline time.Duration `env:"AUDIO_DEADLINE" envDefault:"10s"`
	TTSCacheSize  int           `env:"TTS_CACHE_SIZE" envDefault:"128"`
	TTSWorkers    int64         `env:"TTS_WORKERS" envDefault:"2"`
}

// LoadConfigFromEnv reads configuration from the environment.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
