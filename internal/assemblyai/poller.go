package assemblyai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrPollTimeout means the job never reached a terminal status within the
// attempt budget.
var ErrPollTimeout = errors.New("transcription timed out")

// TranscriptionError is a terminal error status reported by the service for
// a job, carrying the service's own detail message.
type TranscriptionError struct {
	Detail string
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: %s", e.Detail)
}

type pollState int

const (
	statePolling pollState = iota
	stateCompleted
	stateErrored
	stateTimedOut
)

// nextState is the poll loop's transition function. attempt is the number of
// status reads performed so far, terminal statuses win over the exhausted
// budget.
func nextState(status Status, attempt, maxAttempts int) pollState {
	switch status {
	case StatusCompleted:
		return stateCompleted
	case StatusError:
		return stateErrored
	}
	if attempt >= maxAttempts {
		return stateTimedOut
	}
	return statePolling
}

// Poller drives a transcript job to a terminal state by reading its status at
// a fixed interval. No backoff: interval and attempt cap are constants, which
// bounds the worst case at exactly MaxAttempts polls.
type Poller struct {
	Client      *Client
	Interval    time.Duration
	MaxAttempts int

	// Injected so the loop tests without real timers.
	sleep func(context.Context, time.Duration) error
}

func NewPoller(client *Client, interval time.Duration, maxAttempts int) *Poller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if maxAttempts <= 0 {
		maxAttempts = 60
	}
	return &Poller{
		Client:      client,
		Interval:    interval,
		MaxAttempts: maxAttempts,
		sleep:       sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Transcribe creates a job for audioURL and polls until it completes, errors
// out, or the attempt budget runs dry.
func (p *Poller) Transcribe(ctx context.Context, audioURL string) (*Transcript, error) {
	id, err := p.Client.CreateTranscript(ctx, audioURL)
	if err != nil {
		return nil, err
	}
	slog.Info("transcription job started", "id", id)

	for attempt := 1; ; attempt++ {
		t, err := p.Client.GetTranscript(ctx, id)
		if err != nil {
			return nil, err
		}

		switch nextState(t.Status, attempt, p.MaxAttempts) {
		case stateCompleted:
			slog.Info("transcription completed", "id", id, "attempts", attempt)
			return t, nil
		case stateErrored:
			return nil, &TranscriptionError{Detail: t.Error}
		case stateTimedOut:
			return nil, fmt.Errorf("%w after %d attempts", ErrPollTimeout, attempt)
		}

		slog.Debug("transcription pending", "id", id, "status", string(t.Status), "attempt", attempt)
		if err := p.sleep(ctx, p.Interval); err != nil {
			return nil, err
		}
	}
}
