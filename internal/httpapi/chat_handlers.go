package httpapi

import (
	"context"
	"embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/boobalamurugan/assistant/internal/eventlog"
	"github.com/boobalamurugan/assistant/internal/jobs"
)

// apologyReply is returned with status api_error when the conversational
// model call fails; the raw fault is never surfaced.
const apologyReply = "I'm sorry, I encountered an error processing your request. This might be due to API quota limitations. Please try again with a shorter message."

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type chatResponse struct {
	Response string  `json:"response"`
	Audio    *string `json:"audio"`
	Status   string  `json:"status"`
}

// handleChat runs one conversation turn: reply text from the model, then a
// best-effort synthesis attempt bounded by the audio deadline. The reply text
// always goes out promptly; audio is optional and its absence is tagged.
func (r *Router) handleChat(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	text, err := r.session.Reply(req.Context(), body.Message)
	if err != nil {
		r.logger.Printf("chat: model call failed: %v", err)
		captureError(req, err, "chat reply failed")
		r.eventLog.LogAsync(r.cfg.SessionID, eventlog.EventLLMError, map[string]any{"error": err.Error()})
		writeJSON(w, http.StatusOK, chatResponse{Response: apologyReply, Status: "api_error"})
		return
	}

	// Synthesis runs on a pool worker with its own context: a timeout
	// abandons the work rather than cancelling it.
	audio, err := r.pool.RunWithDeadline(req.Context(), r.cfg.AudioDeadline, func() []byte {
		return r.synth.Synthesize(context.Background(), text)
	})
	switch {
	case errors.Is(err, jobs.ErrDeadlineExceeded):
		r.logger.Printf("chat: audio synthesis exceeded %v deadline", r.cfg.AudioDeadline)
		r.eventLog.LogAsync(r.cfg.SessionID, eventlog.EventSynthesisTimeout, map[string]any{"text_length": len(text)})
		writeJSON(w, http.StatusOK, chatResponse{Response: text, Status: "audio_error"})
	case len(audio) == 0:
		r.eventLog.LogAsync(r.cfg.SessionID, eventlog.EventSynthesisAbsent, map[string]any{"text_length": len(text)})
		writeJSON(w, http.StatusOK, chatResponse{Response: text, Status: "no_audio"})
	default:
		encoded := base64.StdEncoding.EncodeToString(audio)
		r.eventLog.LogAsync(r.cfg.SessionID, eventlog.EventChatMessage, map[string]any{"audio_bytes": len(audio)})
		writeJSON(w, http.StatusOK, chatResponse{Response: text, Audio: &encoded, Status: "success"})
	}
}

// handleAudio synthesizes arbitrary text through the cached paid path,
// bypassing the free-provider preference.
func (r *Router) handleAudio(w http.ResponseWriter, req *http.Request) {
	text := req.PathValue("text")

	if r.paidTTS == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate audio"})
		return
	}

	r.eventLog.LogAsync(r.cfg.SessionID, eventlog.EventAudioRequested, map[string]any{"text_length": len(text)})

	audio, err := r.paidTTS.Synthesize(req.Context(), text)
	if err != nil {
		r.logger.Printf("audio: synthesis failed: %v", err)
		captureError(req, err, "on-demand audio failed")
		r.eventLog.LogAsync(r.cfg.SessionID, eventlog.EventAudioError, map[string]any{"error": err.Error()})
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate audio"})
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	_, _ = w.Write(audio)
}

// introduction builds the greeting text and best-effort audio. No deadline
// here; the index page tolerates a slow first load.
func (r *Router) introduction(ctx context.Context) (text string, audioB64 *string) {
	text = r.profile.Introduction()

	if audio := r.synth.Synthesize(ctx, text); len(audio) > 0 {
		encoded := base64.StdEncoding.EncodeToString(audio)
		audioB64 = &encoded
	}
	r.eventLog.LogAsync(r.cfg.SessionID, eventlog.EventIntroduction, map[string]any{"has_audio": audioB64 != nil})
	return text, audioB64
}

func (r *Router) handleIndex(w http.ResponseWriter, req *http.Request) {
	text, audioB64 := r.introduction(req.Context())

	data := struct {
		Introduction string
		IntroAudio   template.URL
	}{Introduction: text}
	if audioB64 != nil {
		// template.URL keeps the data URI from being filtered out.
		data.IntroAudio = template.URL("data:audio/mpeg;base64," + *audioB64)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		r.logger.Printf("index: render failed: %v", err)
	}
}

func (r *Router) handleIntroduction(w http.ResponseWriter, req *http.Request) {
	text, audioB64 := r.introduction(req.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"text":  text,
		"audio": audioB64,
	})
}
