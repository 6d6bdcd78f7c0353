package db

import "context"

// Store is the document store behind the portfolio API. Two implementations
// exist: Mongo for production and Memory for tests and local development.
//
// Single-document getters return (nil, nil) when the document does not exist.
// Update and delete methods return ErrNotFound instead. Malformed identifiers
// fail with a ValidationError before any lookup happens.
type Store interface {
	// Content
	ListContent(ctx context.Context) ([]ContentItem, error)
	UpsertContent(ctx context.Context, section, key string, value any, valueType string) (*ContentItem, error)

	// Projects
	ListProjects(ctx context.Context, featured *bool) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	CreateProject(ctx context.Context, in ProjectInput) (*Project, error)
	UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*Project, error)
	DeleteProject(ctx context.Context, id string) error

	// Skills
	ListSkills(ctx context.Context, category string) ([]Skill, error)
	GetSkill(ctx context.Context, id string) (*Skill, error)
	CreateSkill(ctx context.Context, in SkillInput) (*Skill, error)
	UpdateSkill(ctx context.Context, id string, patch SkillPatch) (*Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	// Experiences
	ListExperiences(ctx context.Context) ([]Experience, error)
	GetExperience(ctx context.Context, id string) (*Experience, error)
	CreateExperience(ctx context.Context, in ExperienceInput) (*Experience, error)
	UpdateExperience(ctx context.Context, id string, patch ExperiencePatch) (*Experience, error)
	DeleteExperience(ctx context.Context, id string) error

	// Seeding: destructively replace a collection with the given documents.
	ResetContent(ctx context.Context, items []ContentItem) error
	ResetProjects(ctx context.Context, projects []Project) error
	ResetSkills(ctx context.Context, skills []Skill) error
	ResetExperiences(ctx context.Context, experiences []Experience) error

	Close(ctx context.Context) error
}

var (
	_ Store = (*Mongo)(nil)
	_ Store = (*Memory)(nil)
)
