package server

import (
	"encoding/json"
	"net/http"

	"github.com/siraphop/portfolio-api/internal/db"
)

// parseFeatured reads the optional ?featured= query parameter. Values other
// than "true" and "false" leave the filter unset.
func parseFeatured(r *http.Request) *bool {
	switch r.URL.Query().Get("featured") {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// handleListProjects lists projects, optionally filtered by the featured flag.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context(), parseFeatured(r))
	if err != nil {
		s.storeError(w, err, "Project", "fetch projects")
		return
	}

	s.jsonResponse(w, http.StatusOK, projects)
}

// handleGetProject retrieves a project by ID.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.store.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		s.storeError(w, err, "Project", "fetch project")
		return
	}
	if project == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, project)
}

// handleCreateProject creates a project, answering 201 on success.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var in db.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := s.store.CreateProject(r.Context(), in)
	if err != nil {
		s.storeError(w, err, "Project", "create project")
		return
	}

	s.jsonResponse(w, http.StatusCreated, project)
}

// handleUpdateProject applies a partial update to a project.
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var patch db.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := s.store.UpdateProject(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.storeError(w, err, "Project", "update project")
		return
	}

	s.jsonResponse(w, http.StatusOK, project)
}

// handleDeleteProject removes a project by ID.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		s.storeError(w, err, "Project", "delete project")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

// bulkProjectsRequest is the body of PUT /projects.
type bulkProjectsRequest struct {
	Projects []db.ProjectEntry `json:"projects"`
}

// handleBulkProjects processes a best-effort bulk write: entries with an ID
// are updated, the rest created. Failed entries are skipped.
func (s *Server) handleBulkProjects(w http.ResponseWriter, r *http.Request) {
	var req bulkProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Projects == nil {
		s.errorResponse(w, http.StatusBadRequest, "Projects array is required")
		return
	}

	results := db.ApplyProjects(r.Context(), s.store, req.Projects)
	s.jsonResponse(w, http.StatusOK, results)
}
