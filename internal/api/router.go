package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ytscribe/server/internal/api/handlers"
	"github.com/ytscribe/server/internal/api/middleware"
	"github.com/ytscribe/server/internal/assemblyai"
	"github.com/ytscribe/server/internal/config"
	"github.com/ytscribe/server/internal/pipeline"
	"github.com/ytscribe/server/internal/youtube"
)

type Router struct {
	mux *chi.Mux
	cfg *config.Config
}

func NewRouter(cfg *config.Config) *Router {
	return &Router{
		mux: chi.NewRouter(),
		cfg: cfg,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.CORSOrigins))

	health := handlers.NewHealthHandler()
	r.Get("/healthz", health.Healthz)

	// Pipeline wiring
	client := assemblyai.NewClient(rt.cfg.AssemblyAI.BaseURL, rt.cfg.AssemblyAI.APIKey)
	poller := assemblyai.NewPoller(client, rt.cfg.AssemblyAI.PollInterval, rt.cfg.AssemblyAI.PollMaxAttempts)
	downloader := youtube.NewDownloader(rt.cfg.Download.ScratchDir, rt.cfg.Download.YtDlpBin)
	svc := pipeline.NewService(downloader, client, poller)

	transcribeH := handlers.NewTranscribeHandler(svc)
	r.Route("/api", func(r chi.Router) {
		r.Post("/transcribe", transcribeH.Transcribe)
	})

	return r
}
