// Package db provides MongoDB document storage for portfolio content.
package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Content sections shown on the public site.
const (
	SectionHero     = "hero"
	SectionAbout    = "about"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

// Content value types. The type discriminates the shape of Value.
const (
	TypeText   = "text"
	TypeHTML   = "html"
	TypeArray  = "array"
	TypeObject = "object"
	TypeImage  = "image"
)

// Skill categories.
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryTools    = "tools"
)

// ContentItem is a single editable content field, keyed by (section, key).
// The pair is unique within the content collection.
type ContentItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Section   string             `bson:"section" json:"section"`
	Key       string             `bson:"key" json:"key"`
	Value     any                `bson:"value" json:"value"`
	Type      string             `bson:"type" json:"type"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Project is a portfolio project shown on the public site.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	DemoURL      string             `bson:"demoUrl,omitempty" json:"demoUrl,omitempty"`
	CodeURL      string             `bson:"codeUrl,omitempty" json:"codeUrl,omitempty"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	Featured     bool               `bson:"featured" json:"featured"`
	Order        int                `bson:"order" json:"order"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Skill is a single skill with a 1-10 proficiency level.
// Skills carry no update timestamp.
type Skill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"`
	Level     int                `bson:"level" json:"level"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Experience is a work history entry. EndDate may coexist with Current;
// the store does not enforce consistency between the two.
type Experience struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Company      string             `bson:"company" json:"company"`
	Position     string             `bson:"position" json:"position"`
	Description  string             `bson:"description" json:"description"`
	StartDate    time.Time          `bson:"startDate" json:"startDate"`
	EndDate      *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Current      bool               `bson:"current" json:"current"`
	Location     string             `bson:"location" json:"location"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	Achievements []string           `bson:"achievements" json:"achievements"`
	Order        int                `bson:"order" json:"order"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// ProjectInput represents the fields accepted when creating a project.
type ProjectInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Image        string   `json:"image,omitempty"`
	DemoURL      string   `json:"demoUrl,omitempty"`
	CodeURL      string   `json:"codeUrl,omitempty"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}

// SkillInput represents the fields accepted when creating a skill.
type SkillInput struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required,oneof=frontend backend tools"`
	Level    int    `json:"level" validate:"required,min=1,max=10"`
	Order    int    `json:"order"`
}

// ExperienceInput represents the fields accepted when creating an experience.
type ExperienceInput struct {
	Company      string     `json:"company" validate:"required"`
	Position     string     `json:"position" validate:"required"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"startDate" validate:"required"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Current      bool       `json:"current"`
	Location     string     `json:"location"`
	Technologies []string   `json:"technologies"`
	Achievements []string   `json:"achievements"`
	Order        int        `json:"order"`
}

var validate = validator.New()

// Validate validates the ProjectInput using the validator.
func (in *ProjectInput) Validate() error {
	return wrapValidation(validate.Struct(in))
}

// Validate validates the SkillInput using the validator.
func (in *SkillInput) Validate() error {
	return wrapValidation(validate.Struct(in))
}

// Validate validates the ExperienceInput using the validator.
func (in *ExperienceInput) Validate() error {
	return wrapValidation(validate.Struct(in))
}

// wrapValidation converts validator errors into a ValidationError with a
// readable message.
func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Message: err.Error()}
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return &ValidationError{Message: strings.Join(parts, "; ")}
}

func newProject(in ProjectInput, now time.Time) Project {
	return Project{
		ID:           primitive.NewObjectID(),
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		DemoURL:      in.DemoURL,
		CodeURL:      in.CodeURL,
		Technologies: in.Technologies,
		Featured:     in.Featured,
		Order:        in.Order,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newSkill(in SkillInput, now time.Time) Skill {
	return Skill{
		ID:        primitive.NewObjectID(),
		Name:      in.Name,
		Category:  in.Category,
		Level:     in.Level,
		Order:     in.Order,
		CreatedAt: now,
	}
}

func newExperience(in ExperienceInput, now time.Time) Experience {
	return Experience{
		ID:           primitive.NewObjectID(),
		Company:      in.Company,
		Position:     in.Position,
		Description:  in.Description,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Current:      in.Current,
		Location:     in.Location,
		Technologies: in.Technologies,
		Achievements: in.Achievements,
		Order:        in.Order,
		CreatedAt:    now,
	}
}

// input reconstructs the validated fields of a project, used to re-check
// constraints after a patch is merged.
func (p *Project) input() ProjectInput {
	return ProjectInput{
		Title:        p.Title,
		Description:  p.Description,
		Image:        p.Image,
		DemoURL:      p.DemoURL,
		CodeURL:      p.CodeURL,
		Technologies: p.Technologies,
		Featured:     p.Featured,
		Order:        p.Order,
	}
}

func (s *Skill) input() SkillInput {
	return SkillInput{Name: s.Name, Category: s.Category, Level: s.Level, Order: s.Order}
}

func (e *Experience) input() ExperienceInput {
	return ExperienceInput{
		Company:      e.Company,
		Position:     e.Position,
		Description:  e.Description,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Current:      e.Current,
		Location:     e.Location,
		Technologies: e.Technologies,
		Achievements: e.Achievements,
		Order:        e.Order,
	}
}

// ValidSection reports whether s names a known content section.
func ValidSection(s string) bool {
	switch s {
	case SectionHero, SectionAbout, SectionSkills, SectionProjects, SectionContact:
		return true
	}
	return false
}

// ValidContentType reports whether t names a known content value type.
func ValidContentType(t string) bool {
	switch t {
	case TypeText, TypeHTML, TypeArray, TypeObject, TypeImage:
		return true
	}
	return false
}
