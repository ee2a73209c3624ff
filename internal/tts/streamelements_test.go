package tts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStreamElementsSynthesize(t *testing.T) {
	wantAudio := []byte("free-audio")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if got := req.URL.Query().Get("voice"); got != "Brian" {
			t.Errorf("voice = %q, want %q", got, "Brian")
		}
		if got := req.URL.Query().Get("text"); got != "hello there" {
			t.Errorf("text = %q, want %q", got, "hello there")
		}
		_, _ = w.Write(wantAudio)
	}))
	defer srv.Close()

	client := NewStreamElementsClient(StreamElementsConfig{BaseURL: srv.URL})

	audio, err := client.Synthesize(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if string(audio) != string(wantAudio) {
		t.Errorf("audio = %q, want %q", audio, wantAudio)
	}
}

func TestStreamElementsSynthesize_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewStreamElementsClient(StreamElementsConfig{BaseURL: srv.URL})

	if _, err := client.Synthesize(context.Background(), "hello"); err == nil {
		t.Fatal("Synthesize() error = nil, want error on 500 status")
	}
}

func TestStreamElementsSynthesize_Unreachable(t *testing.T) {
	// Server that is already closed simulates a transport fault.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	srv.Close()

	client := NewStreamElementsClient(StreamElementsConfig{BaseURL: srv.URL})

	if _, err := client.Synthesize(context.Background(), "hello"); err == nil {
		t.Fatal("Synthesize() error = nil, want transport error")
	}
}

func TestNewStreamElementsClient_DefaultVoice(t *testing.T) {
	client := NewStreamElementsClient(StreamElementsConfig{})
	if client.voice != "Brian" {
		t.Errorf("voice = %q, want %q", client.voice, "Brian")
	}
}
