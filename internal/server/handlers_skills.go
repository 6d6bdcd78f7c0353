package server

import (
	"encoding/json"
	"net/http"

	"github.com/siraphop/portfolio-api/internal/db"
)

// handleListSkills lists skills. With a ?category= filter the matching
// subset is returned as a flat list; without one the full set is grouped by
// category for the public site.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	skills, err := s.store.ListSkills(r.Context(), category)
	if err != nil {
		s.storeError(w, err, "Skill", "fetch skills")
		return
	}

	if category != "" {
		s.jsonResponse(w, http.StatusOK, skills)
		return
	}
	s.jsonResponse(w, http.StatusOK, db.GroupSkills(skills))
}

// handleGetSkill retrieves a skill by ID.
func (s *Server) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	skill, err := s.store.GetSkill(r.Context(), r.PathValue("id"))
	if err != nil {
		s.storeError(w, err, "Skill", "fetch skill")
		return
	}
	if skill == nil {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, skill)
}

// handleCreateSkill creates a skill, answering 201 on success.
func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var in db.SkillInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	skill, err := s.store.CreateSkill(r.Context(), in)
	if err != nil {
		s.storeError(w, err, "Skill", "create skill")
		return
	}

	s.jsonResponse(w, http.StatusCreated, skill)
}

// handleUpdateSkill applies a partial update to a skill.
func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	var patch db.SkillPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	skill, err := s.store.UpdateSkill(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		s.storeError(w, err, "Skill", "update skill")
		return
	}

	s.jsonResponse(w, http.StatusOK, skill)
}

// handleDeleteSkill removes a skill by ID.
func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteSkill(r.Context(), r.PathValue("id")); err != nil {
		s.storeError(w, err, "Skill", "delete skill")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Skill deleted successfully"})
}

// bulkSkillsRequest is the body of PUT /skills.
type bulkSkillsRequest struct {
	Skills []db.SkillEntry `json:"skills"`
}

// handleBulkSkills processes a best-effort bulk write of skills.
func (s *Server) handleBulkSkills(w http.ResponseWriter, r *http.Request) {
	var req bulkSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Skills == nil {
		s.errorResponse(w, http.StatusBadRequest, "Skills array is required")
		return
	}

	results := db.ApplySkills(r.Context(), s.store, req.Skills)
	s.jsonResponse(w, http.StatusOK, results)
}
