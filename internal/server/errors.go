package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/siraphop/portfolio-api/internal/db"
)

// HTTPStatus returns the appropriate HTTP status code for a store error:
// 400 for validation failures, 404 for missing documents, 500 otherwise.
func HTTPStatus(err error) int {
	var vErr *db.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// storeError translates a store error into the response envelope. Validation
// messages are safe to echo back; store faults are logged and reported
// generically so database internals never leak to the caller.
func (s *Server) storeError(w http.ResponseWriter, err error, resource, operation string) {
	status := HTTPStatus(err)
	switch status {
	case http.StatusBadRequest:
		s.errorResponse(w, status, err.Error())
	case http.StatusNotFound:
		s.errorResponse(w, status, resource+" not found")
	default:
		s.logger.Error("store error", zap.String("operation", operation), zap.Error(err))
		s.errorResponse(w, status, "Failed to "+operation)
	}
}
