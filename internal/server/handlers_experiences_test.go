package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siraphop/portfolio-api/internal/db"
)

func createExperience(t *testing.T, s *Server, body map[string]any) db.Experience {
	t.Helper()
	w, env := doRequest(t, s, http.MethodPost, "/experiences", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)

	var e db.Experience
	decodeData(t, env, &e)
	return e
}

func TestHandleCreateExperience(t *testing.T) {
	s := newTestServer(t)

	e := createExperience(t, s, map[string]any{
		"company":   "Acme Corp",
		"position":  "Software Engineer",
		"startDate": "2023-01-15T00:00:00Z",
		"current":   true,
	})

	assert.False(t, e.ID.IsZero())
	assert.Equal(t, "Acme Corp", e.Company)
	assert.True(t, e.Current)
	assert.Nil(t, e.EndDate)
}

func TestHandleCreateExperience_Validation(t *testing.T) {
	s := newTestServer(t)

	w, env := doRequest(t, s, http.MethodPost, "/experiences", map[string]any{"company": "Acme"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "position is required")
	assert.Contains(t, env.Error, "startDate is required")
}

func TestHandleListExperiences_Sorted(t *testing.T) {
	s := newTestServer(t)
	createExperience(t, s, map[string]any{
		"company": "Older", "position": "Dev", "startDate": "2019-06-01T00:00:00Z", "order": 2,
	})
	createExperience(t, s, map[string]any{
		"company": "Newer", "position": "Dev", "startDate": "2022-06-01T00:00:00Z", "order": 1,
	})

	w, env := doRequest(t, s, http.MethodGet, "/experiences", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var experiences []db.Experience
	decodeData(t, env, &experiences)
	require.Len(t, experiences, 2)
	assert.Equal(t, "Newer", experiences[0].Company, "sorted by order ascending")
}

func TestHandleUpdateExperience(t *testing.T) {
	s := newTestServer(t)
	e := createExperience(t, s, map[string]any{
		"company": "Acme", "position": "Dev", "startDate": "2021-03-01T00:00:00Z", "current": true,
	})

	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	w, env := doRequest(t, s, http.MethodPut, "/experiences/"+e.ID.Hex(), map[string]any{
		"current": false,
		"endDate": end.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got db.Experience
	decodeData(t, env, &got)
	assert.False(t, got.Current)
	require.NotNil(t, got.EndDate)
	assert.True(t, got.EndDate.Equal(end))
	assert.Equal(t, "Acme", got.Company)
}

func TestHandleUpdateExperience_Absent(t *testing.T) {
	s := newTestServer(t)

	w, env := doRequest(t, s, http.MethodPut, "/experiences/aaaaaaaaaaaaaaaaaaaaaaaa", map[string]any{"company": "x"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Experience not found", env.Error)
}

func TestHandleDeleteExperience(t *testing.T) {
	s := newTestServer(t)
	e := createExperience(t, s, map[string]any{
		"company": "Acme", "position": "Dev", "startDate": "2021-03-01T00:00:00Z",
	})

	w, _ := doRequest(t, s, http.MethodDelete, "/experiences/"+e.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doRequest(t, s, http.MethodGet, "/experiences/"+e.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Experience not found", env.Error)
}

func TestHandleBulkExperiences(t *testing.T) {
	s := newTestServer(t)
	existing := createExperience(t, s, map[string]any{
		"company": "Acme", "position": "Dev", "startDate": "2021-03-01T00:00:00Z",
	})

	w, env := doRequest(t, s, http.MethodPut, "/experiences", map[string]any{
		"experiences": []map[string]any{
			{"id": existing.ID.Hex(), "position": "Senior Dev"},
			{"company": "Initech", "position": "Dev", "startDate": "2018-01-01T00:00:00Z"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var results []db.Experience
	decodeData(t, env, &results)
	assert.Len(t, results, 2)
}

func TestHandleBulkExperiences_MissingArray(t *testing.T) {
	s := newTestServer(t)

	w, env := doRequest(t, s, http.MethodPut, "/experiences", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "Experiences array is required")
}
