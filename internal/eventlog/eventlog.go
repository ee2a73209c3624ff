package eventlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EventType represents the type of assistant event
type EventType string

const (
	EventChatMessage        EventType = "chat_message"
	EventLLMError           EventType = "llm_error"
	EventSynthesisFree      EventType = "synthesis_free"
	EventSynthesisFallback  EventType = "synthesis_fallback"
	EventSynthesisAbsent    EventType = "synthesis_absent"
	EventSynthesisTimeout   EventType = "synthesis_timeout"
	EventAudioRequested     EventType = "audio_requested"
	EventAudioError         EventType = "audio_error"
	EventTranscription      EventType = "transcription"
	EventTranscriptionError EventType = "transcription_error"
	EventIntroduction       EventType = "introduction"
)

// Logger provides async event logging to the database. The pool is optional;
// without one every call is a no-op, so deployments without Postgres lose
// nothing but the event trail.
type Logger struct {
	db *pgxpool.Pool
}

// New creates a new event logger
func New(db *pgxpool.Pool) *Logger {
	return &Logger{db: db}
}

// Log writes an event to the database synchronously
func (l *Logger) Log(ctx context.Context, sessionID string, eventType EventType, data map[string]any) error {
	if l.db == nil || sessionID == "" {
		return nil // Silently skip if no DB or session ID
	}

	dataJSON, err := json.Marshal(data)
	if err != nil {
		dataJSON = []byte("{}")
	}

	_, err = l.db.Exec(ctx, `
		INSERT INTO assistant_events (session_id, event_type, event_data)
		VALUES ($1, $2, $3)
	`, sessionID, string(eventType), dataJSON)

	return err
}

// LogAsync logs an event without blocking the caller
func (l *Logger) LogAsync(sessionID string, eventType EventType, data map[string]any) {
	if l.db == nil || sessionID == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = l.Log(ctx, sessionID, eventType, data)
	}()
}
