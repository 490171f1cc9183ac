// Package api exposes the recommendation engine over HTTP. The engine
// itself stays network-free; this server is a boundary collaborator.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/demirreren/brev-launcher/internal/catalog"
	"github.com/demirreren/brev-launcher/internal/recommend"
	api "github.com/demirreren/brev-launcher/pkg/api"
)

// Config holds server settings.
type Config struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns the default server settings.
func DefaultConfig() *Config {
	return &Config{
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}

// Server routes recommendation requests to an engine per catalog.
type Server struct {
	httpServer *http.Server
	curated    *recommend.Engine
	advanced   *recommend.Engine
}

// NewServer builds the router and both catalog-backed engines.
func NewServer(cfg *Config) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	patterns := catalog.NewPatternCatalog()
	s := &Server{
		curated:  recommend.NewEngine(patterns, catalog.NewCuratedCatalog()),
		advanced: recommend.NewEngine(patterns, catalog.NewAdvancedCatalog()),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Get("/health", s.handleHealth)
	r.Post("/v1/recommend", s.handleRecommend)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("recommendation API listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// RecommendRequest is the POST /v1/recommend body. Omitted policy
// fields take engine defaults.
type RecommendRequest struct {
	Artifacts []api.Artifact    `json:"artifacts"`
	Policy    *api.UsagePolicy  `json:"policy,omitempty"`
	Baseline  *catalog.Offering `json:"baseline,omitempty"`
}

type errorResponse struct {
	Error      string  `json:"error"`
	RequiredGB float64 `json:"required_gb,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	policy := api.DefaultUsagePolicy()
	if req.Policy != nil {
		policy = *req.Policy
	}

	engine := s.curated
	if policy.AdvancedCatalog {
		engine = s.advanced
	}

	result, err := engine.Recommend(api.ProjectSignals{Artifacts: req.Artifacts}, req.Baseline, policy)
	if err != nil {
		var noFit *recommend.NoFitError
		switch {
		case errors.As(err, &noFit):
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:      noFit.Error(),
				RequiredGB: noFit.RequiredGB,
			})
		case errors.Is(err, recommend.ErrInvalidPolicy):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		default:
			log.Error().Err(err).Msg("recommendation failed")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encoding response")
	}
}

// requestID tags every request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
