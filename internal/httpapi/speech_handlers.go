package httpapi

import (
	"net/http"

	"github.com/boobalamurugan/assistant/internal/eventlog"
)

type transcribeResponse struct {
	Transcript string `json:"transcript"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

// handleTranscribe transcribes an uploaded audio file through the speech
// recognition provider.
func (r *Router) handleTranscribe(w http.ResponseWriter, req *http.Request) {
	file, _, err := req.FormFile("audio")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No audio file provided"})
		return
	}
	defer file.Close()

	if r.sttc == nil {
		writeJSON(w, http.StatusBadRequest, transcribeResponse{
			Status: "error",
			Error:  "Speech recognition is not configured. Set ASSEMBLY_AI_API_KEY to enable it.",
		})
		return
	}

	text, err := r.sttc.Transcribe(req.Context(), file)
	if err != nil {
		r.logger.Printf("transcribe: provider failed: %v", err)
		captureError(req, err, "transcription failed")
		r.eventLog.LogAsync(r.cfg.SessionID, eventlog.EventTranscriptionError, map[string]any{"error": err.Error()})
		writeJSON(w, http.StatusInternalServerError, transcribeResponse{
			Status: "error",
			Error:  "AssemblyAI error: " + err.Error(),
		})
		return
	}

	r.eventLog.LogAsync(r.cfg.SessionID, eventlog.EventTranscription, map[string]any{"transcript_length": len(text)})
	writeJSON(w, http.StatusOK, transcribeResponse{Transcript: text, Status: "success"})
}

// handleRecord is the deprecated server-side recording endpoint. Kept for
// older clients; recording moved into the browser.
func (r *Router) handleRecord(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"transcript": "",
		"message":    "This feature has been replaced with browser-based recording for better compatibility. Please use the microphone button in the interface.",
	})
}
