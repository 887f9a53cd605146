package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	AssemblyAI AssemblyAIConfig
	Download   DownloadConfig

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*"`
}

type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"SERVER_PORT" envDefault:"5001"`
}

type AssemblyAIConfig struct {
	BaseURL string `env:"ASSEMBLYAI_BASE_URL" envDefault:"https://api.assemblyai.com/v2"`
	APIKey  string `env:"ASSEMBLYAI_API_KEY"`

	// Fixed polling budget: interval * max attempts bounds the wall-clock
	// ceiling of one transcription request (10s * 60 = 10 minutes).
	PollInterval    time.Duration `env:"ASSEMBLYAI_POLL_INTERVAL" envDefault:"10s"`
	PollMaxAttempts int           `env:"ASSEMBLYAI_POLL_MAX_ATTEMPTS" envDefault:"60"`
}

type DownloadConfig struct {
	ScratchDir string `env:"SCRATCH_DIR" envDefault:"temp"`
	YtDlpBin   string `env:"YTDLP_BIN" envDefault:"yt-dlp"`
}

func Load() (*Config, error) {
	// Local development keeps secrets in .env.local; absence is fine.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) Validate() error {
	if c.AssemblyAI.APIKey == "" {
		return fmt.Errorf("missing required env var: ASSEMBLYAI_API_KEY")
	}
	return nil
}
