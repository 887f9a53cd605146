package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ytscribe/server/internal/pipeline"
	"github.com/ytscribe/server/internal/youtube"
)

// TranscriptRunner is the pipeline surface the handler needs.
type TranscriptRunner interface {
	Run(ctx context.Context, videoID string) (*pipeline.Result, error)
}

type TranscribeHandler struct {
	runner TranscriptRunner
}

func NewTranscribeHandler(runner TranscriptRunner) *TranscribeHandler {
	return &TranscribeHandler{runner: runner}
}

type transcribeRequest struct {
	VideoID string `json:"videoId"`
	URL     string `json:"url"`
}

// Transcribe runs the full acquisition pipeline for one video. The request
// carries either the bare video id or a full YouTube URL.
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req transcribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	videoID := req.VideoID
	if videoID == "" && req.URL != "" {
		id, ok := youtube.ExtractVideoID(req.URL)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid YouTube URL"})
			return
		}
		videoID = id
	}
	if videoID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Video ID is required"})
		return
	}

	result, err := h.runner.Run(r.Context(), videoID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pipeline.ErrValidation) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}
