package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/boobalamurugan/assistant/internal/llm"
)

// recordingClient captures the messages it was sent and replies with a fixed
// text or error.
type recordingClient struct {
	lastMessages []llm.Message
	reply        string
	err          error
}

func (c *recordingClient) Generate(ctx context.Context, messages []llm.Message) (string, error) {
	c.lastMessages = messages
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func TestNewSessionSeedsPrimingTurn(t *testing.T) {
	s := NewSession(&recordingClient{}, "You are the persona.")

	if got := s.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2 seed turns", got)
	}
	if s.history[0].Role != "user" || s.history[0].Content != "You are the persona." {
		t.Errorf("seed turn = %+v, want priming user turn", s.history[0])
	}
	if s.history[1].Role != "model" {
		t.Errorf("second seed turn role = %q, want %q", s.history[1].Role, "model")
	}
}

func TestReplyAppendsTurns(t *testing.T) {
	client := &recordingClient{reply: "Hello back"}
	s := NewSession(client, "priming")

	text, err := s.Reply(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if text != "Hello back" {
		t.Errorf("reply = %q, want %q", text, "Hello back")
	}
	if got := s.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4 (seeds + user + model)", got)
	}

	// The model saw the full history up to and including the new user turn.
	if got := len(client.lastMessages); got != 3 {
		t.Fatalf("forwarded turns = %d, want 3", got)
	}
	last := client.lastMessages[2]
	if last.Role != "user" || last.Content != "Hello" {
		t.Errorf("forwarded turn = %+v, want user/Hello", last)
	}
}

func TestReplyTruncatesLongMessage(t *testing.T) {
	client := &recordingClient{reply: "ok"}
	s := NewSession(client, "priming")

	if _, err := s.Reply(context.Background(), strings.Repeat("x", 600)); err != nil {
		t.Fatalf("Reply() error = %v", err)
	}

	forwarded := client.lastMessages[len(client.lastMessages)-1].Content
	if got := utf8.RuneCountInString(forwarded); got != MaxMessageLen+len(TruncationMarker) {
		t.Errorf("forwarded length = %d runes, want %d", got, MaxMessageLen+len(TruncationMarker))
	}
	if !strings.HasSuffix(forwarded, TruncationMarker) {
		t.Errorf("forwarded message missing truncation marker %q", TruncationMarker)
	}
}

func TestReplyErrorLeavesHistoryUnchanged(t *testing.T) {
	client := &recordingClient{err: errors.New("quota exceeded")}
	s := NewSession(client, "priming")

	if _, err := s.Reply(context.Background(), "Hello"); err == nil {
		t.Fatal("Reply() error = nil, want model error")
	}
	if got := s.Len(); got != 2 {
		t.Errorf("Len() = %d after failed reply, want 2 (unchanged)", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int // in runes
		marked  bool
	}{
		{"short message untouched", "hello", 5, false},
		{"exactly at limit untouched", strings.Repeat("a", 500), 500, false},
		{"over limit cut and marked", strings.Repeat("a", 501), 503, true},
		{"multibyte input cut on rune boundary", strings.Repeat("ஆ", 600), 503, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input)
			if n := utf8.RuneCountInString(got); n != tt.wantLen {
				t.Errorf("rune count = %d, want %d", n, tt.wantLen)
			}
			if marked := strings.HasSuffix(got, TruncationMarker) && len(got) != len(tt.input); marked != tt.marked {
				t.Errorf("marker present = %v, want %v", marked, tt.marked)
			}
			if !utf8.ValidString(got) {
				t.Error("Truncate() produced invalid UTF-8")
			}
		})
	}
}
