package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func validProjectInput() ProjectInput {
	return ProjectInput{
		Title:        "Portfolio Website",
		Description:  "A personal site",
		Technologies: []string{"Go", "MongoDB"},
		Featured:     true,
		Order:        1,
	}
}

func TestCreateProject_SetsTimestamps(t *testing.T) {
	store := NewMemory()

	p, err := store.CreateProject(context.Background(), validProjectInput())
	require.NoError(t, err)

	assert.False(t, p.ID.IsZero())
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt, "createdAt and updatedAt are the same instant on create")
}

func TestCreateProject_MissingFields(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	tests := []struct {
		name string
		in   ProjectInput
	}{
		{name: "missing title", in: ProjectInput{Description: "d"}},
		{name: "missing description", in: ProjectInput{Title: "t"}},
		{name: "missing both", in: ProjectInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.CreateProject(ctx, tt.in)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}

	projects, err := store.ListProjects(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, projects, "failed creates must not persist anything")
}

func TestGetProject_MalformedID(t *testing.T) {
	store := NewMemory()

	_, err := store.GetProject(context.Background(), "not-an-object-id")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestGetProject_Absent(t *testing.T) {
	store := NewMemory()

	p, err := store.GetProject(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestUpdateProject_MergesAndRevalidates(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	created, err := store.CreateProject(ctx, validProjectInput())
	require.NoError(t, err)

	updated, err := store.UpdateProject(ctx, created.ID.Hex(), ProjectPatch{
		Title:    strPtr("Renamed"),
		Featured: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "A personal site", updated.Description, "untouched fields survive the merge")
	assert.False(t, updated.Featured)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	// Emptying a required field via patch fails the merged validation.
	_, err = store.UpdateProject(ctx, created.ID.Hex(), ProjectPatch{Title: strPtr("")})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestUpdateProject_AbsentNeverCreates(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.UpdateProject(ctx, primitive.NewObjectID().Hex(), ProjectPatch{Title: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)

	projects, err := store.ListProjects(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, projects, "update never creates a document")
}

func TestDeleteProject_Absent(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	created, err := store.CreateProject(ctx, validProjectInput())
	require.NoError(t, err)

	err = store.DeleteProject(ctx, primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrNotFound)

	projects, err := store.ListProjects(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, projects, 1, "failed delete leaves the collection untouched")

	require.NoError(t, store.DeleteProject(ctx, created.ID.Hex()))
	projects, err = store.ListProjects(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestListProjects_SortAndFilter(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	inputs := []ProjectInput{
		{Title: "c", Description: "d", Order: 2, Featured: false},
		{Title: "a", Description: "d", Order: 1, Featured: true},
		{Title: "b", Description: "d", Order: 1, Featured: true},
	}
	for _, in := range inputs {
		_, err := store.CreateProject(ctx, in)
		require.NoError(t, err)
	}

	all, err := store.ListProjects(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Order ascending; within equal order the newest creation comes first.
	assert.Equal(t, "b", all[0].Title)
	assert.Equal(t, "a", all[1].Title)
	assert.Equal(t, "c", all[2].Title)

	featured, err := store.ListProjects(ctx, boolPtr(true))
	require.NoError(t, err)
	assert.Len(t, featured, 2)

	unfeatured, err := store.ListProjects(ctx, boolPtr(false))
	require.NoError(t, err)
	assert.Len(t, unfeatured, 1)
}

func TestCreateSkill_Validation(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	tests := []struct {
		name string
		in   SkillInput
	}{
		{name: "missing name", in: SkillInput{Category: CategoryFrontend, Level: 5}},
		{name: "missing category", in: SkillInput{Name: "Go", Level: 5}},
		{name: "unknown category", in: SkillInput{Name: "Go", Category: "devops", Level: 5}},
		{name: "level too low", in: SkillInput{Name: "Go", Category: CategoryBackend, Level: 0}},
		{name: "level too high", in: SkillInput{Name: "Go", Category: CategoryBackend, Level: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.CreateSkill(ctx, tt.in)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}

	skills, err := store.ListSkills(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestListSkills_SortAndFilter(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	inputs := []SkillInput{
		{Name: "Vue.js", Category: CategoryFrontend, Level: 7, Order: 2},
		{Name: "React", Category: CategoryFrontend, Level: 9, Order: 1},
		{Name: "Git", Category: CategoryTools, Level: 9, Order: 1},
		{Name: "Node.js", Category: CategoryBackend, Level: 8, Order: 1},
		{Name: "Express.js", Category: CategoryBackend, Level: 8, Order: 1},
	}
	for _, in := range inputs {
		_, err := store.CreateSkill(ctx, in)
		require.NoError(t, err)
	}

	all, err := store.ListSkills(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 5)
	// category asc, then order asc, then name asc
	assert.Equal(t, "Express.js", all[0].Name)
	assert.Equal(t, "Node.js", all[1].Name)
	assert.Equal(t, "React", all[2].Name)
	assert.Equal(t, "Vue.js", all[3].Name)
	assert.Equal(t, "Git", all[4].Name)

	frontend, err := store.ListSkills(ctx, CategoryFrontend)
	require.NoError(t, err)
	require.Len(t, frontend, 2)
	assert.Equal(t, "React", frontend[0].Name)
	assert.Equal(t, "Vue.js", frontend[1].Name)
}

func TestGroupSkills(t *testing.T) {
	skills := []Skill{
		{Name: "React", Category: CategoryFrontend},
		{Name: "Node.js", Category: CategoryBackend},
		{Name: "Vue.js", Category: CategoryFrontend},
	}

	grouped := GroupSkills(skills)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped[CategoryFrontend], 2)
	assert.Len(t, grouped[CategoryBackend], 1)
}

func validExperienceInput() ExperienceInput {
	return ExperienceInput{
		Company:   "Tech Solutions Inc.",
		Position:  "Developer",
		StartDate: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		Location:  "Bangkok, Thailand",
	}
}

func TestCreateExperience_Validation(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*ExperienceInput)
	}{
		{name: "missing company", mutate: func(in *ExperienceInput) { in.Company = "" }},
		{name: "missing position", mutate: func(in *ExperienceInput) { in.Position = "" }},
		{name: "missing start date", mutate: func(in *ExperienceInput) { in.StartDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validExperienceInput()
			tt.mutate(&in)
			_, err := store.CreateExperience(ctx, in)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestExperience_CurrentKeepsEndDate(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	in := validExperienceInput()
	in.Current = true
	in.EndDate = &end

	e, err := store.CreateExperience(ctx, in)
	require.NoError(t, err)

	// The current/endDate consistency invariant is soft: the store keeps
	// whatever the caller supplied.
	assert.True(t, e.Current)
	require.NotNil(t, e.EndDate)
	assert.Equal(t, end, *e.EndDate)

	updated, err := store.UpdateExperience(ctx, e.ID.Hex(), ExperiencePatch{Current: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, updated.EndDate, "setting current does not clear the end date")
}

func TestListExperiences_Sort(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	mk := func(company string, order int, start time.Time) {
		in := validExperienceInput()
		in.Company = company
		in.Order = order
		in.StartDate = start
		_, err := store.CreateExperience(ctx, in)
		require.NoError(t, err)
	}

	mk("old", 2, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
	mk("newer", 1, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC))
	mk("newest", 1, time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC))

	experiences, err := store.ListExperiences(ctx)
	require.NoError(t, err)
	require.Len(t, experiences, 3)
	assert.Equal(t, "newest", experiences[0].Company)
	assert.Equal(t, "newer", experiences[1].Company)
	assert.Equal(t, "old", experiences[2].Company)
}

func TestApplySkills_RoutesAndBestEffort(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	existing, err := store.CreateSkill(ctx, SkillInput{Name: "React", Category: CategoryFrontend, Level: 8, Order: 1})
	require.NoError(t, err)

	entries := []SkillEntry{
		// Update by ID
		{ID: existing.ID.Hex(), SkillPatch: SkillPatch{Level: intPtr(9)}},
		// Create without ID
		{SkillPatch: SkillPatch{Name: strPtr("Go"), Category: strPtr(CategoryBackend), Level: intPtr(7)}},
		// Invalid entry is skipped, not fatal
		{SkillPatch: SkillPatch{Name: strPtr("Broken")}},
		// Unknown ID is skipped as well
		{ID: primitive.NewObjectID().Hex(), SkillPatch: SkillPatch{Level: intPtr(5)}},
	}

	results := ApplySkills(ctx, store, entries)
	require.Len(t, results, 2)
	assert.Equal(t, 9, results[0].Level)
	assert.Equal(t, "Go", results[1].Name)

	skills, err := store.ListSkills(ctx, "")
	require.NoError(t, err)
	assert.Len(t, skills, 2)
}

func TestApplyProjects_RoutesAndBestEffort(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	existing, err := store.CreateProject(ctx, validProjectInput())
	require.NoError(t, err)

	entries := []ProjectEntry{
		{ID: existing.ID.Hex(), ProjectPatch: ProjectPatch{Order: intPtr(5)}},
		{ProjectPatch: ProjectPatch{Title: strPtr("New"), Description: strPtr("Fresh")}},
		{ProjectPatch: ProjectPatch{Title: strPtr("No description")}},
	}

	results := ApplyProjects(ctx, store, entries)
	require.Len(t, results, 2)
	assert.Equal(t, 5, results[0].Order)
	assert.Equal(t, "New", results[1].Title)
}

func TestApplyExperiences_RoutesAndBestEffort(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	existing, err := store.CreateExperience(ctx, validExperienceInput())
	require.NoError(t, err)

	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []ExperienceEntry{
		{ID: existing.ID.Hex(), ExperiencePatch: ExperiencePatch{Position: strPtr("Senior Developer")}},
		{ExperiencePatch: ExperiencePatch{Company: strPtr("Digital Agency Co."), Position: strPtr("Developer"), StartDate: &start}},
		{ExperiencePatch: ExperiencePatch{Company: strPtr("Missing fields")}},
	}

	results := ApplyExperiences(ctx, store, entries)
	require.Len(t, results, 2)
	assert.Equal(t, "Senior Developer", results[0].Position)
	assert.Equal(t, "Digital Agency Co.", results[1].Company)
}
