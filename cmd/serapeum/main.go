package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/serapeum-ai/serapeum/internal/config"
	"github.com/serapeum-ai/serapeum/internal/i18n"
	logpkg "github.com/serapeum-ai/serapeum/internal/logger"
	"github.com/serapeum-ai/serapeum/internal/metrics"
	chiTransport "github.com/serapeum-ai/serapeum/internal/transport/chi"
	"github.com/serapeum-ai/serapeum/internal/transport/googlebooks"
	"github.com/serapeum-ai/serapeum/internal/transport/igdb"
	openaiLLM "github.com/serapeum-ai/serapeum/internal/transport/openai"
	"github.com/serapeum-ai/serapeum/internal/transport/tavily"
	"github.com/serapeum-ai/serapeum/internal/transport/tmdb"
	cataloguc "github.com/serapeum-ai/serapeum/internal/usecase/catalog"
	orchestratoruc "github.com/serapeum-ai/serapeum/internal/usecase/orchestrator"
	"github.com/serapeum-ai/serapeum/internal/version"
)

func main() {
	// Load .env if present — ignored in containerized deployments.
	_ = godotenv.Load()

	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting serapeum API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("llm_model", cfg.LLM.Model),
	)

	// Register metrics explicitly (no init())
	metrics.Register()

	// LLM client backs all three model roles: router, extractor, synthesizer.
	llm := openaiLLM.NewClient(&openaiLLM.Config{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTitles: cfg.Agent.MaxTitles,
		Logger:    logger,
	})

	// Catalog providers
	media := tmdb.New(&tmdb.Config{
		APIKey:  cfg.Catalog.TMDB.APIKey,
		BaseURL: cfg.Catalog.TMDB.BaseURL,
		Logger:  logger,
	})
	books := googlebooks.New(&googlebooks.Config{
		APIKey:  cfg.Catalog.GoogleBooks.APIKey,
		BaseURL: cfg.Catalog.GoogleBooks.BaseURL,
		Logger:  logger,
	})
	games := igdb.New(&igdb.Config{
		ClientID:     cfg.Catalog.IGDB.ClientID,
		ClientSecret: cfg.Catalog.IGDB.ClientSecret,
		BaseURL:      cfg.Catalog.IGDB.BaseURL,
		AuthURL:      cfg.Catalog.IGDB.AuthURL,
		Logger:       logger,
	})
	web := tavily.New(&tavily.Config{
		APIKey:  cfg.Search.TavilyAPIKey,
		BaseURL: cfg.Search.TavilyBaseURL,
		Logger:  logger,
	})

	// Use case services
	catalogSvc := cataloguc.New(media, books, games).
		WithFeatured(cfg.Agent.Featured)
	orchestratorSvc := orchestratoruc.New(llm, catalogSvc, web, llm, llm, i18n.NewCatalog(logger)).
		WithMaxTitles(cfg.Agent.MaxTitles).
		WithMaxWebResults(cfg.Search.MaxResults)

	// Create chi server
	server := chiTransport.NewServer(orchestratorSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
