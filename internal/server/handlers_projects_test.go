package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siraphop/portfolio-api/internal/db"
)

func createProject(t *testing.T, s *Server, body map[string]any) db.Project {
	t.Helper()
	w, env := doRequest(t, s, http.MethodPost, "/projects", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)

	var p db.Project
	decodeData(t, env, &p)
	return p
}

func TestHandleCreateProject(t *testing.T) {
	s := newTestServer(t)

	p := createProject(t, s, map[string]any{
		"title":        "Portfolio Website",
		"description":  "Personal site",
		"technologies": []string{"Go", "React"},
		"featured":     true,
	})

	assert.False(t, p.ID.IsZero())
	assert.Equal(t, "Portfolio Website", p.Title)
	assert.True(t, p.Featured)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestHandleCreateProject_Validation(t *testing.T) {
	s := newTestServer(t)

	w, env := doRequest(t, s, http.MethodPost, "/projects", map[string]any{"title": "No description"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "description is required")
}

func TestHandleGetProject(t *testing.T) {
	s := newTestServer(t)
	p := createProject(t, s, map[string]any{"title": "A", "description": "a"})

	w, env := doRequest(t, s, http.MethodGet, "/projects/"+p.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got db.Project
	decodeData(t, env, &got)
	assert.Equal(t, p.ID, got.ID)
}

func TestHandleGetProject_InvalidID(t *testing.T) {
	s := newTestServer(t)

	w, env := doRequest(t, s, http.MethodGet, "/projects/not-a-hex-id", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestHandleGetProject_Absent(t *testing.T) {
	s := newTestServer(t)

	w, env := doRequest(t, s, http.MethodGet, "/projects/aaaaaaaaaaaaaaaaaaaaaaaa", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", env.Error)
}

func TestHandleListProjects_FeaturedFilter(t *testing.T) {
	s := newTestServer(t)
	createProject(t, s, map[string]any{"title": "A", "description": "a", "featured": true, "order": 2})
	createProject(t, s, map[string]any{"title": "B", "description": "b", "featured": false, "order": 1})

	w, env := doRequest(t, s, http.MethodGet, "/projects?featured=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var projects []db.Project
	decodeData(t, env, &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, "A", projects[0].Title)

	w, env = doRequest(t, s, http.MethodGet, "/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &projects)
	require.Len(t, projects, 2)
	assert.Equal(t, "B", projects[0].Title, "sorted by order ascending")
}

func TestHandleUpdateProject(t *testing.T) {
	s := newTestServer(t)
	p := createProject(t, s, map[string]any{"title": "Before", "description": "d"})

	w, env := doRequest(t, s, http.MethodPut, "/projects/"+p.ID.Hex(), map[string]any{"title": "After"})
	require.Equal(t, http.StatusOK, w.Code)

	var got db.Project
	decodeData(t, env, &got)
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, "d", got.Description, "untouched fields survive the patch")
}

func TestHandleUpdateProject_Absent(t *testing.T) {
	s := newTestServer(t)

	w, env := doRequest(t, s, http.MethodPut, "/projects/aaaaaaaaaaaaaaaaaaaaaaaa", map[string]any{"title": "x"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", env.Error)
}

func TestHandleDeleteProject(t *testing.T) {
	s := newTestServer(t)
	p := createProject(t, s, map[string]any{"title": "A", "description": "a"})

	w, env := doRequest(t, s, http.MethodDelete, "/projects/"+p.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w, _ = doRequest(t, s, http.MethodGet, "/projects/"+p.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleDeleteProject_Absent(t *testing.T) {
	s := newTestServer(t)

	w, _ := doRequest(t, s, http.MethodDelete, "/projects/aaaaaaaaaaaaaaaaaaaaaaaa", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleBulkProjects(t *testing.T) {
	s := newTestServer(t)
	existing := createProject(t, s, map[string]any{"title": "Old", "description": "d"})

	w, env := doRequest(t, s, http.MethodPut, "/projects", map[string]any{
		"projects": []map[string]any{
			{"id": existing.ID.Hex(), "title": "Renamed"},
			{"title": "Fresh", "description": "new project"},
			{"title": "Broken"}, // no description, skipped
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var results []db.Project
	decodeData(t, env, &results)
	assert.Len(t, results, 2)

	_, env = doRequest(t, s, http.MethodGet, "/projects", nil)
	var all []db.Project
	decodeData(t, env, &all)
	assert.Len(t, all, 2)
}

func TestHandleBulkProjects_MissingArray(t *testing.T) {
	s := newTestServer(t)

	w, env := doRequest(t, s, http.MethodPut, "/projects", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "Projects array is required")
}
