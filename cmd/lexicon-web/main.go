// lexicon-web serves the Sentience Lexicon viewer: a server-rendered
// paginated concept browser backed by the lexicon API, with optional
// Redis response caching.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sentiencelab/lexicon-viewer/internal/config"
	"github.com/sentiencelab/lexicon-viewer/pkg/client"
	"github.com/sentiencelab/lexicon-viewer/pkg/logging"
	"github.com/sentiencelab/lexicon-viewer/pkg/render"
	"github.com/sentiencelab/lexicon-viewer/pkg/viewer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup(logging.DefaultConfig())
		logger := logging.NewLogger("lexicon-web")
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.Log.Level),
		Pretty: cfg.Log.Pretty,
	})
	logger := logging.NewLogger("lexicon-web")

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Response cache enabled")
	} else {
		logger.Info().Msg("Response cache disabled (no Redis address)")
	}

	lexClient, err := client.New(client.Config{
		BaseURL:   cfg.Lexicon.BaseURL,
		UserAgent: cfg.Lexicon.UserAgent,
		PerPage:   cfg.Lexicon.PerPage,
		Timeout:   cfg.Lexicon.Timeout,
		Redis:     redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create lexicon client")
	}
	defer lexClient.Close()

	renderer, err := render.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse templates")
	}

	view := viewer.New(lexClient, logging.NewLogger("viewer"))

	router := newRouter(view, renderer, logger)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().
			Str("addr", server.Addr).
			Str("lexicon", cfg.Lexicon.BaseURL).
			Msg("Starting lexicon viewer")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Server failed")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}
}

// newRouter wires the HTTP routes of the viewer frontend.
func newRouter(view *viewer.Viewer, renderer *render.Renderer, logger zerolog.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/", conceptsHandler(view, renderer, logger))
	router.Get("/healthz", healthzHandler)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// conceptsHandler renders one page of the lexicon. The page query parameter
// selects the page; absent or empty it defaults to 1. A non-positive or
// non-numeric value is a client error, while upstream failures render the
// errored view with status 200.
func conceptsHandler(view *viewer.Viewer, renderer *render.Renderer, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if raw := r.URL.Query().Get("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				http.Error(w, "page must be a positive integer", http.StatusBadRequest)
				return
			}
			page = parsed
		}

		state := view.LoadPage(r.Context(), page)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.Page(w, state); err != nil {
			logger.Error().Err(err).Int("page", page).Msg("Failed to render page")
		}
	}
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
