// Package chi exposes the orchestration service over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/serapeum-ai/serapeum/internal/domain"
	"github.com/serapeum-ai/serapeum/internal/version"
)

// Error codes returned in HTTP error responses.
const (
	codeBadRequest    = "bad_request"
	codeInternalError = "internal_error"
)

// Orchestrator resolves a free-form query into an agent response.
type Orchestrator interface {
	Orchestrate(ctx context.Context, query, language string) domain.AgentResponse
}

// Server handles the HTTP API.
type Server struct {
	orchestrator Orchestrator
	logger       *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(orchestrator Orchestrator, logger *zap.Logger) *Server {
	return &Server{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// Register mounts all routes on the given router.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.Root)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Post("/api/orchestrate", s.Orchestrate)
}

type orchestrateRequest struct {
	Query    string `json:"query"`
	Language string `json:"language,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Orchestrate handles POST /api/orchestrate.
//
// Orchestration failures travel inside the response body as the "error"
// variant, so every routed request answers 200. Only malformed requests
// produce an HTTP-level error.
func (s *Server) Orchestrate(w http.ResponseWriter, r *http.Request) {
	var req orchestrateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Query is required")
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	resp := s.orchestrator.Orchestrate(r.Context(), req.Query, language)
	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

// Root handles GET / with a service banner.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "serapeum",
		"version": version.Version,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
