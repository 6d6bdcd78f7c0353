package server

import (
	"encoding/json"
	"net/http"

	"github.com/siraphop/portfolio-api/internal/db"
)

// handleListExperiences lists all experiences.
func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := s.store.ListExperiences(r.Context())
	if err != nil {
		s.storeError(w, err, "Experience", "fetch experiences")
		return
	}

	s.jsonResponse(w, http.StatusOK, experiences)
}

// handleGetExperience retrieves an experience by ID.
func (s *Server) handleGetExperience(w http.ResponseWriter, r *http.Request) {
	experience, err := s.store.GetExperience(r.Context(), r.PathValue("id"))
	if err != nil {
		s.storeError(w, err, "Experience", "fetch experience")
		return
	}
	if experience == nil {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, experience)
}

// handleCreateExperience creates an experience, answering 201 on success.
func (s *Server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	var in db.ExperienceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	experience, err := s.store.CreateExperience(r.Context(), in)
	if err != nil {
		s.storeError(w, err, "Experience", "create experience")
		return
	}

	s.jsonResponse(w, http.StatusCreated, experience)
}

// handleUpdateExperience applies a partial update to an experience.
func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	var patch db.ExperiencePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	experience, err := s.store.UpdateExperience(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.storeError(w, err, "Experience", "update experience")
		return
	}

	s.jsonResponse(w, http.StatusOK, experience)
}

// handleDeleteExperience removes an experience by ID.
func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteExperience(r.Context(), r.PathValue("id")); err != nil {
		s.storeError(w, err, "Experience", "delete experience")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Experience deleted successfully"})
}

// bulkExperiencesRequest is the body of PUT /experiences.
type bulkExperiencesRequest struct {
	Experiences []db.ExperienceEntry `json:"experiences"`
}

// handleBulkExperiences processes a best-effort bulk write of experiences.
func (s *Server) handleBulkExperiences(w http.ResponseWriter, r *http.Request) {
	var req bulkExperiencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Experiences == nil {
		s.errorResponse(w, http.StatusBadRequest, "Experiences array is required")
		return
	}

	results := db.ApplyExperiences(r.Context(), s.store, req.Experiences)
	s.jsonResponse(w, http.StatusOK, results)
}
