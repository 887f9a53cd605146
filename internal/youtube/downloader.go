package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrDownloadFailed covers both a non-zero yt-dlp exit and a missing output
// file after a clean exit.
var ErrDownloadFailed = errors.New("failed to download YouTube audio")

// Downloader materializes the audio track of a YouTube video as a local file
// under a scratch directory. Each download gets a uuid-suffixed path, so
// concurrent requests for the same video never share a file.
type Downloader struct {
	ScratchDir string
	Bin        string

	run func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func NewDownloader(scratchDir, bin string) *Downloader {
	if bin == "" {
		bin = "yt-dlp"
	}
	return &Downloader{
		ScratchDir: scratchDir,
		Bin:        bin,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
	}
}

// Download invokes yt-dlp for videoID and returns the path of the audio file
// it produced. The caller owns the file and is responsible for removing it.
func (d *Downloader) Download(ctx context.Context, videoID string) (string, error) {
	outPath := filepath.Join(d.ScratchDir, fmt.Sprintf("%s-%s.m4a", videoID, uuid.NewString()))
	watchURL := "https://www.youtube.com/watch?v=" + videoID

	slog.Info("downloading audio", "videoId", videoID, "path", outPath)

	output, err := d.run(ctx, d.Bin, "-f", "m4a/bestaudio/best", "-o", outPath, watchURL)
	if err != nil {
		slog.Error("yt-dlp failed", "videoId", videoID, "error", err, "output", string(output))
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	// yt-dlp can exit 0 without producing the requested file.
	if _, err := os.Stat(outPath); err != nil {
		return "", fmt.Errorf("%w: output file not found at %s", ErrDownloadFailed, outPath)
	}
	return outPath, nil
}
