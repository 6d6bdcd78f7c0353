package db

import "errors"

// ErrNotFound indicates an operation targeted a document that does not exist.
// Single-document getters return (nil, nil) instead; this sentinel is used by
// update and delete paths, which have no result to return.
var ErrNotFound = errors.New("not found")

// ValidationError indicates a missing or malformed required field or
// identifier. It maps to a 400 response at the HTTP boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
