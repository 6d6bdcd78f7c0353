// Package server provides the HTTP JSON API for the portfolio site and its
// admin dashboard.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/siraphop/portfolio-api/internal/db"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      db.Store
	logger     *zap.Logger
}

// Config holds server configuration. The store is initialized by the caller
// and shared by reference; the server owns its lifecycle from Start onward.
type Config struct {
	Port   int
	Store  db.Store
	Logger *zap.Logger
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("server requires a store")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	s := &Server{
		store:  cfg.Store,
		logger: cfg.Logger,
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Content endpoints
	mux.HandleFunc("GET /content", s.handleGetContent)
	mux.HandleFunc("POST /content", s.handleUpsertContent)
	mux.HandleFunc("PUT /content", s.handleUpsertContentMany)

	// Project endpoints
	mux.HandleFunc("GET /projects", s.handleListProjects)
	mux.HandleFunc("POST /projects", s.handleCreateProject)
	mux.HandleFunc("PUT /projects", s.handleBulkProjects)
	mux.HandleFunc("GET /projects/{id}", s.handleGetProject)
	mux.HandleFunc("PUT /projects/{id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /projects/{id}", s.handleDeleteProject)

	// Skill endpoints
	mux.HandleFunc("GET /skills", s.handleListSkills)
	mux.HandleFunc("POST /skills", s.handleCreateSkill)
	mux.HandleFunc("PUT /skills", s.handleBulkSkills)
	mux.HandleFunc("GET /skills/{id}", s.handleGetSkill)
	mux.HandleFunc("PUT /skills/{id}", s.handleUpdateSkill)
	mux.HandleFunc("DELETE /skills/{id}", s.handleDeleteSkill)

	// Experience endpoints
	mux.HandleFunc("GET /experiences", s.handleListExperiences)
	mux.HandleFunc("POST /experiences", s.handleCreateExperience)
	mux.HandleFunc("PUT /experiences", s.handleBulkExperiences)
	mux.HandleFunc("GET /experiences/{id}", s.handleGetExperience)
	mux.HandleFunc("PUT /experiences/{id}", s.handleUpdateExperience)
	mux.HandleFunc("DELETE /experiences/{id}", s.handleDeleteExperience)

	// Seed endpoints
	mux.HandleFunc("GET /seed", s.handleSeedInfo)
	mux.HandleFunc("POST /seed", s.handleSeed)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.store.Close(ctx); err != nil {
		s.logger.Warn("failed to close store", zap.Error(err))
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers for the admin dashboard.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging with a per-request ID.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		s.logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// response is the envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// jsonResponse writes a success envelope.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	s.writeJSON(w, status, response{Success: true, Data: data})
}

// errorResponse writes a failure envelope.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, response{Success: false, Error: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}
