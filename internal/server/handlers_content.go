package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/siraphop/portfolio-api/internal/db"
)

// handleGetContent returns all content grouped by section, then key.
func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListContent(r.Context())
	if err != nil {
		s.storeError(w, err, "Content", "fetch content")
		return
	}

	s.jsonResponse(w, http.StatusOK, db.GroupContent(items))
}

// upsertContentRequest is the body of POST /content.
type upsertContentRequest struct {
	Section string `json:"section"`
	Key     string `json:"key"`
	Value   any    `json:"value"`
	Type    string `json:"type,omitempty"`
}

// handleUpsertContent creates or overwrites a single content row keyed on
// (section, key).
func (s *Server) handleUpsertContent(w http.ResponseWriter, r *http.Request) {
	var req upsertContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := s.store.UpsertContent(r.Context(), req.Section, req.Key, req.Value, req.Type)
	if err != nil {
		s.storeError(w, err, "Content", "save content")
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

// bulkContentRequest is the body of PUT /content.
type bulkContentRequest struct {
	Section string         `json:"section"`
	Updates map[string]any `json:"updates"`
}

// handleUpsertContentMany upserts several keys of one section in a single
// request. The write is not atomic: on failure the rows persisted before the
// failing key stay committed and are returned alongside the error.
func (s *Server) handleUpsertContentMany(w http.ResponseWriter, r *http.Request) {
	var req bulkContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// An explicitly empty updates object is a valid no-op; only an absent
	// one is rejected.
	if req.Section == "" || req.Updates == nil {
		s.errorResponse(w, http.StatusBadRequest, "Section and updates are required")
		return
	}

	results, err := db.UpsertContentMany(r.Context(), s.store, req.Section, req.Updates)
	if err != nil {
		status := HTTPStatus(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			s.logger.Error("bulk content update failed", zap.Error(err))
			message = "Failed to update content"
		}
		// Partial results: everything written before the failure.
		s.writeJSON(w, status, response{Success: false, Error: message, Data: results})
		return
	}

	s.jsonResponse(w, http.StatusOK, results)
}
