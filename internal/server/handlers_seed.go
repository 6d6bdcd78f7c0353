package server

import (
	"net/http"

	"github.com/siraphop/portfolio-api/internal/db"
)

// handleSeedInfo describes the seed endpoint without touching the store.
func (s *Server) handleSeedInfo(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Seed endpoint is ready. Use POST to replace all collections with sample data.",
		"methods": []string{"POST"},
	})
}

// handleSeed destructively replaces all four collections with the sample
// dataset.
func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	counts, err := db.Seed(r.Context(), s.store)
	if err != nil {
		s.storeError(w, err, "Seed", "seed database")
		return
	}

	s.jsonResponse(w, http.StatusOK, counts)
}
