package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/boobalamurugan/assistant/internal/chat"
	"github.com/boobalamurugan/assistant/internal/eventlog"
	"github.com/boobalamurugan/assistant/internal/jobs"
	"github.com/boobalamurugan/assistant/internal/persona"
	"github.com/boobalamurugan/assistant/internal/stt"
	"github.com/boobalamurugan/assistant/internal/tts"
	"github.com/getsentry/sentry-go"
)

type RouterConfig struct {
	// AudioDeadline bounds how long a chat request waits for synthesis
	// before returning text-only.
	AudioDeadline time.Duration

	// SessionID correlates event-log rows for this process lifetime.
	SessionID string
}

type Router struct {
	cfg      RouterConfig
	logger   *log.Logger
	profile  *persona.Profile
	session  *chat.Session
	synth    *tts.Synthesizer
	paidTTS  tts.Client // cached paid path, used by the on-demand audio endpoint; may be nil
	sttc     stt.Client // may be nil when the STT key is absent
	pool     *jobs.Pool
	eventLog *eventlog.Logger
	mux      *http.ServeMux
}

func NewRouter(cfg RouterConfig, logger *log.Logger, profile *persona.Profile, session *chat.Session,
	synth *tts.Synthesizer, paidTTS tts.Client, sttc stt.Client, pool *jobs.Pool, eventLog *eventlog.Logger) http.Handler {

	if cfg.AudioDeadline <= 0 {
		cfg.AudioDeadline = 10 * time.Second
	}

	r := &Router{
		cfg:      cfg,
		logger:   logger,
		profile:  profile,
		session:  session,
		synth:    synth,
		paidTTS:  paidTTS,
		sttc:     sttc,
		pool:     pool,
		eventLog: eventLog,
		mux:      http.NewServeMux(),
	}

	r.routes()
	return withSentryRecovery(withCORS(r.mux))
}

func (r *Router) routes() {
	// Health check
	r.mux.HandleFunc("GET /healthz", r.handleHealthz)

	// Page and introduction
	r.mux.HandleFunc("GET /{$}", r.handleIndex)
	r.mux.HandleFunc("GET /introduction", r.handleIntroduction)

	// Conversation
	r.mux.HandleFunc("POST /chat", r.handleChat)
	r.mux.HandleFunc("GET /audio/{text}", r.handleAudio)

	// Speech recognition
	r.mux.HandleFunc("POST /transcribe_audio", r.handleTranscribe)
	r.mux.HandleFunc("POST /record", r.handleRecord)
}

func (r *Router) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func withSentryRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(req)
				hub.RecoverWithContext(req.Context(), err)
				hub.Flush(2 * time.Second)
				http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, req)
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// captureError sends an error to Sentry with request context
func captureError(req *http.Request, err error, msg string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(req)
		scope.SetExtra("message", msg)
		sentry.CaptureException(err)
	})
}
