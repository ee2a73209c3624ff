package app

import (
	"testing"
	"time"
)

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.ProfilePath != "resume_data.json" {
		t.Errorf("ProfilePath = %q, want %q", cfg.ProfilePath, "resume_data.json")
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %q, want %q", cfg.GeminiModel, "gemini-2.0-flash")
	}
	if cfg.TTSVoiceID != "xnx6sPTtvU635ocDt2j7" {
		t.Errorf("TTSVoiceID = %q, want %q", cfg.TTSVoiceID, "xnx6sPTtvU635ocDt2j7")
	}
	if cfg.TTSStability != 0.75 {
		t.Errorf("TTSStability = %f, want 0.75", cfg.TTSStability)
	}
	if cfg.TTSSimilarity != 0.75 {
		t.Errorf("TTSSimilarity = %f, want 0.75", cfg.TTSSimilarity)
	}
	if cfg.FreeTTSVoice != "Brian" {
		t.Errorf("FreeTTSVoice = %q, want %q", cfg.FreeTTSVoice, "Brian")
	}
	if cfg.AudioDeadline != 10*time.Second {
		t.Errorf("AudioDeadline = %v, want 10s", cfg.AudioDeadline)
	}
	if cfg.TTSCacheSize != 128 {
		t.Errorf("TTSCacheSize = %d, want 128", cfg.TTSCacheSize)
	}
	if cfg.TTSWorkers != 2 {
		t.Errorf("TTSWorkers = %d, want 2", cfg.TTSWorkers)
	}
}

func TestLoadConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("ELEVEN_LABS_API_KEY", "el-key")
	t.Setenv("ASSEMBLY_AI_API_KEY", "aai-key")
	t.Setenv("AUDIO_DEADLINE", "3s")
	t.Setenv("TTS_CACHE_SIZE", "16")
	t.Setenv("TTS_STABILITY", "0.5")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}

	if cfg.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9999")
	}
	if cfg.GeminiAPIKey != "gem-key" {
		t.Errorf("GeminiAPIKey = %q, want %q", cfg.GeminiAPIKey, "gem-key")
	}
	if cfg.ElevenLabsAPIKey != "el-key" {
		t.Errorf("ElevenLabsAPIKey = %q, want %q", cfg.ElevenLabsAPIKey, "el-key")
	}
	if cfg.AssemblyAIAPIKey != "aai-key" {
		t.Errorf("AssemblyAIAPIKey = %q, want %q", cfg.AssemblyAIAPIKey, "aai-key")
	}
	if cfg.AudioDeadline != 3*time.Second {
		t.Errorf("AudioDeadline = %v, want 3s", cfg.AudioDeadline)
	}
	if cfg.TTSCacheSize != 16 {
		t.Errorf("TTSCacheSize = %d, want 16", cfg.TTSCacheSize)
	}
	if cfg.TTSStability != 0.5 {
		t.Errorf("TTSStability = %f, want 0.5", cfg.TTSStability)
	}
}

func TestLoadConfigFromEnvInvalidDuration(t *testing.T) {
	t.Setenv("AUDIO_DEADLINE", "not-a-duration")

	if _, err := LoadConfigFromEnv(); err == nil {
		t.Fatal("LoadConfigFromEnv() error = nil, want parse error")
	}
}
