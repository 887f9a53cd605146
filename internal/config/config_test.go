package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:5001" {
		t.Errorf("addr: got %q, want %q", cfg.Addr(), "0.0.0.0:5001")
	}
	if cfg.AssemblyAI.BaseURL != "https://api.assemblyai.com/v2" {
		t.Errorf("base URL: got %q", cfg.AssemblyAI.BaseURL)
	}
	if cfg.AssemblyAI.PollInterval != 10*time.Second {
		t.Errorf("poll interval: got %v, want 10s", cfg.AssemblyAI.PollInterval)
	}
	if cfg.AssemblyAI.PollMaxAttempts != 60 {
		t.Errorf("poll max attempts: got %d, want 60", cfg.AssemblyAI.PollMaxAttempts)
	}
	if cfg.Download.ScratchDir != "temp" {
		t.Errorf("scratch dir: got %q, want %q", cfg.Download.ScratchDir, "temp")
	}
}

func TestValidateMissingAPIKey(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing API key")
	}
}
