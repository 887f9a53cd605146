package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ytscribe/server/internal/assemblyai"
	"github.com/ytscribe/server/internal/pipeline"
	"github.com/ytscribe/server/internal/transcript"
)

type fakeRunner struct {
	result *pipeline.Result
	err    error
	gotID  string
	called bool
}

func (f *fakeRunner) Run(ctx context.Context, videoID string) (*pipeline.Result, error) {
	f.called = true
	f.gotID = videoID
	return f.result, f.err
}

func doTranscribe(t *testing.T, runner *fakeRunner, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewTranscribeHandler(runner)
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Transcribe(rec, req)
	return rec
}

func TestTranscribeSuccess(t *testing.T) {
	runner := &fakeRunner{
		result: &pipeline.Result{
			VideoID: "dQw4w9WgXcQ",
			Words:   []transcript.Word{{Word: "Hello", Start: 0, End: 0.4}},
		},
	}

	rec := doTranscribe(t, runner, `{"videoId":"dQw4w9WgXcQ"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}

	var got pipeline.Result
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(*runner.result, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestTranscribeExtractsIDFromURL(t *testing.T) {
	runner := &fakeRunner{result: &pipeline.Result{VideoID: "dQw4w9WgXcQ"}}

	rec := doTranscribe(t, runner, `{"url":"https://youtu.be/dQw4w9WgXcQ"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if runner.gotID != "dQw4w9WgXcQ" {
		t.Errorf("runner got %q, want the extracted id", runner.gotID)
	}
}

func TestTranscribeClientErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing video id", `{}`},
		{"invalid body", `{bad json`},
		{"unusable URL", `{"url":"https://example.com/nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			rec := doTranscribe(t, runner, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("got status %d, want 400", rec.Code)
			}
			if runner.called {
				t.Error("pipeline ran for an invalid request")
			}
		})
	}
}

func TestTranscribeValidationMapsTo400(t *testing.T) {
	runner := &fakeRunner{err: pipeline.ErrValidation}
	rec := doTranscribe(t, runner, `{"videoId":"dQw4w9WgXcQ"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
}

func TestTranscribePipelineFailureMapsTo500(t *testing.T) {
	runner := &fakeRunner{err: &assemblyai.TranscriptionError{Detail: "audio too noisy"}}

	rec := doTranscribe(t, runner, `{"videoId":"dQw4w9WgXcQ"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp["error"], "audio too noisy") {
		t.Errorf("error message %q does not carry the cause", resp["error"])
	}
}
