package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ytscribe/server/internal/assemblyai"
	"github.com/ytscribe/server/internal/transcript"
	"github.com/ytscribe/server/internal/youtube"
)

// ErrValidation means the request never reached an external call: the video
// id was missing or not shaped like one.
var ErrValidation = errors.New("video ID is required")

// AudioFetcher materializes a local audio file for a video id.
type AudioFetcher interface {
	Download(ctx context.Context, videoID string) (string, error)
}

// Uploader pushes audio bytes to the transcription service and returns the
// remote reference for them.
type Uploader interface {
	Upload(ctx context.Context, audio io.Reader) (string, error)
}

// Transcriber drives a transcription job for an uploaded audio URL to a
// terminal payload.
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (*assemblyai.Transcript, error)
}

// Result is the pipeline's sole output.
type Result struct {
	VideoID string            `json:"videoId"`
	Words   []transcript.Word `json:"words"`
}

// Service runs the transcription acquisition pipeline: download the audio,
// upload it, poll the transcript job, normalize the payload.
type Service struct {
	fetcher     AudioFetcher
	uploader    Uploader
	transcriber Transcriber
}

func NewService(fetcher AudioFetcher, uploader Uploader, transcriber Transcriber) *Service {
	return &Service{
		fetcher:     fetcher,
		uploader:    uploader,
		transcriber: transcriber,
	}
}

// Run executes the full pipeline for one video, strictly in sequence. The
// scratch audio file is removed on every exit path once it exists; a removal
// failure is logged, never propagated. No partial transcript is returned for
// a failed request.
func (s *Service) Run(ctx context.Context, videoID string) (*Result, error) {
	if !youtube.ValidVideoID(videoID) {
		return nil, fmt.Errorf("%w: %q is not a video ID", ErrValidation, videoID)
	}

	audioPath, err := s.fetcher.Download(ctx, videoID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			slog.Error("failed to remove scratch audio", "path", audioPath, "error", err)
		}
	}()

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("read audio file: %w", err)
	}

	uploadURL, err := s.uploader.Upload(ctx, bytes.NewReader(audio))
	if err != nil {
		return nil, err
	}
	slog.Info("audio uploaded", "videoId", videoID, "uploadUrl", uploadURL)

	payload, err := s.transcriber.Transcribe(ctx, uploadURL)
	if err != nil {
		return nil, err
	}

	words, err := transcript.Normalize(payload)
	if err != nil {
		return nil, err
	}

	slog.Info("transcript ready", "videoId", videoID, "words", len(words))
	return &Result{VideoID: videoID, Words: words}, nil
}
