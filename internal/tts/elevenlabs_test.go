package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewElevenLabsClient_DefaultValues(t *testing.T) {
	// -1 is the sentinel for "use default" since 0.0 is a valid value
	client := NewElevenLabsClient(ElevenLabsConfig{
		APIKey:     "test-key",
		Stability:  -1,
		Similarity: -1,
	})

	if client.voiceID != "xnx6sPTtvU635ocDt2j7" {
		t.Errorf("voiceID = %q, want %q", client.voiceID, "xnx6sPTtvU635ocDt2j7")
	}
	if client.modelID != "eleven_multilingual_v2" {
		t.Errorf("modelID = %q, want %q", client.modelID, "eleven_multilingual_v2")
	}
	if client.stability != 0.75 {
		t.Errorf("stability = %f, want %f", client.stability, 0.75)
	}
	if client.similarity != 0.75 {
		t.Errorf("similarity = %f, want %f", client.similarity, 0.75)
	}
}

func TestNewElevenLabsClient_CustomSettings(t *testing.T) {
	client := NewElevenLabsClient(ElevenLabsConfig{
		APIKey:     "test-key",
		VoiceID:    "custom-voice-id",
		ModelID:    "custom-model-id",
		Stability:  0.3,
		Similarity: 0.6,
	})

	if client.voiceID != "custom-voice-id" {
		t.Errorf("voiceID = %q, want %q", client.voiceID, "custom-voice-id")
	}
	if client.modelID != "custom-model-id" {
		t.Errorf("modelID = %q, want %q", client.modelID, "custom-model-id")
	}
	if client.stability != 0.3 {
		t.Errorf("stability = %f, want %f", client.stability, 0.3)
	}
	if client.similarity != 0.6 {
		t.Errorf("similarity = %f, want %f", client.similarity, 0.6)
	}
}

func TestNewElevenLabsClient_ZeroValuesAreValid(t *testing.T) {
	// 0.0 is a valid ElevenLabs setting (max expressiveness)
	client := NewElevenLabsClient(ElevenLabsConfig{
		APIKey:     "test-key",
		Stability:  0,
		Similarity: 0,
	})

	if client.stability != 0 {
		t.Errorf("stability = %f, want 0 (zero is valid)", client.stability)
	}
	if client.similarity != 0 {
		t.Errorf("similarity = %f, want 0 (zero is valid)", client.similarity)
	}
}

func TestElevenLabsSynthesize(t *testing.T) {
	wantAudio := []byte("mp3-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if got := req.Header.Get("xi-api-key"); got != "test-key" {
			t.Errorf("xi-api-key = %q, want %q", got, "test-key")
		}
		if !strings.HasPrefix(req.URL.Path, "/voice-123") {
			t.Errorf("path = %q, want voice ID prefix", req.URL.Path)
		}

		var body ttsRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Text != "hello" {
			t.Errorf("text = %q, want %q", body.Text, "hello")
		}
		if body.ModelID != "eleven_multilingual_v2" {
			t.Errorf("model_id = %q, want %q", body.ModelID, "eleven_multilingual_v2")
		}
		if body.VoiceSettings.Stability != 0.75 || body.VoiceSettings.SimilarityBoost != 0.75 {
			t.Errorf("voice_settings = %+v, want 0.75/0.75", body.VoiceSettings)
		}

		_, _ = w.Write(wantAudio)
	}))
	defer srv.Close()

	client := NewElevenLabsClient(ElevenLabsConfig{
		APIKey:     "test-key",
		VoiceID:    "voice-123",
		Stability:  -1,
		Similarity: -1,
		BaseURL:    srv.URL,
	})

	audio, err := client.Synthesize(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if string(audio) != string(wantAudio) {
		t.Errorf("audio = %q, want %q", audio, wantAudio)
	}
}

func TestElevenLabsSynthesize_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "quota exceeded", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewElevenLabsClient(ElevenLabsConfig{
		APIKey:     "bad-key",
		Stability:  -1,
		Similarity: -1,
		BaseURL:    srv.URL,
	})

	_, err := client.Synthesize(context.Background(), "hello")
	if err == nil {
		t.Fatal("Synthesize() error = nil, want API error")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error = %v, want it to include the response body", err)
	}
}
