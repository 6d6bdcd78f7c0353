package db

import (
	"context"
	"time"
)

// Patch types carry partial updates. Pointer fields distinguish "not sent"
// from a zero value so that a merge only touches the fields present in the
// request body.

// ProjectPatch is a partial update of a project.
type ProjectPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	DemoURL      *string   `json:"demoUrl"`
	CodeURL      *string   `json:"codeUrl"`
	Technologies *[]string `json:"technologies"`
	Featured     *bool     `json:"featured"`
	Order        *int      `json:"order"`
}

func (p ProjectPatch) apply(dst *Project) {
	if p.Title != nil {
		dst.Title = *p.Title
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Image != nil {
		dst.Image = *p.Image
	}
	if p.DemoURL != nil {
		dst.DemoURL = *p.DemoURL
	}
	if p.CodeURL != nil {
		dst.CodeURL = *p.CodeURL
	}
	if p.Technologies != nil {
		dst.Technologies = *p.Technologies
	}
	if p.Featured != nil {
		dst.Featured = *p.Featured
	}
	if p.Order != nil {
		dst.Order = *p.Order
	}
}

// SkillPatch is a partial update of a skill.
type SkillPatch struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *int    `json:"level"`
	Order    *int    `json:"order"`
}

func (p SkillPatch) apply(dst *Skill) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Level != nil {
		dst.Level = *p.Level
	}
	if p.Order != nil {
		dst.Order = *p.Order
	}
}

// ExperiencePatch is a partial update of an experience.
type ExperiencePatch struct {
	Company      *string    `json:"company"`
	Position     *string    `json:"position"`
	Description  *string    `json:"description"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Current      *bool      `json:"current"`
	Location     *string    `json:"location"`
	Technologies *[]string  `json:"technologies"`
	Achievements *[]string  `json:"achievements"`
	Order        *int       `json:"order"`
}

func (p ExperiencePatch) apply(dst *Experience) {
	if p.Company != nil {
		dst.Company = *p.Company
	}
	if p.Position != nil {
		dst.Position = *p.Position
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.StartDate != nil {
		dst.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		dst.EndDate = p.EndDate
	}
	if p.Current != nil {
		dst.Current = *p.Current
	}
	if p.Location != nil {
		dst.Location = *p.Location
	}
	if p.Technologies != nil {
		dst.Technologies = *p.Technologies
	}
	if p.Achievements != nil {
		dst.Achievements = *p.Achievements
	}
	if p.Order != nil {
		dst.Order = *p.Order
	}
}

// Bulk entries are full-or-partial entities submitted by the admin dashboard
// in one request. An entry with an ID routes to an update; one without to a
// create.

// ProjectEntry is one element of a bulk project write.
type ProjectEntry struct {
	ID string `json:"id,omitempty"`
	ProjectPatch
}

// SkillEntry is one element of a bulk skill write.
type SkillEntry struct {
	ID string `json:"id,omitempty"`
	SkillPatch
}

// ExperienceEntry is one element of a bulk experience write.
type ExperienceEntry struct {
	ID string `json:"id,omitempty"`
	ExperiencePatch
}

func (e ProjectEntry) input() ProjectInput {
	var p Project
	e.ProjectPatch.apply(&p)
	return p.input()
}

func (e SkillEntry) input() SkillInput {
	var s Skill
	e.SkillPatch.apply(&s)
	return s.input()
}

func (e ExperienceEntry) input() ExperienceInput {
	var x Experience
	e.ExperiencePatch.apply(&x)
	return x.input()
}

// ApplyProjects processes bulk project entries best-effort: each entry is
// handled independently, failed entries are skipped, and only the entities
// that persisted are returned.
func ApplyProjects(ctx context.Context, s Store, entries []ProjectEntry) []Project {
	results := make([]Project, 0, len(entries))
	for _, entry := range entries {
		var (
			p   *Project
			err error
		)
		if entry.ID != "" {
			p, err = s.UpdateProject(ctx, entry.ID, entry.ProjectPatch)
		} else {
			p, err = s.CreateProject(ctx, entry.input())
		}
		if err != nil || p == nil {
			continue
		}
		results = append(results, *p)
	}
	return results
}

// ApplySkills processes bulk skill entries best-effort.
func ApplySkills(ctx context.Context, s Store, entries []SkillEntry) []Skill {
	results := make([]Skill, 0, len(entries))
	for _, entry := range entries {
		var (
			sk  *Skill
			err error
		)
		if entry.ID != "" {
			sk, err = s.UpdateSkill(ctx, entry.ID, entry.SkillPatch)
		} else {
			sk, err = s.CreateSkill(ctx, entry.input())
		}
		if err != nil || sk == nil {
			continue
		}
		results = append(results, *sk)
	}
	return results
}

// ApplyExperiences processes bulk experience entries best-effort.
func ApplyExperiences(ctx context.Context, s Store, entries []ExperienceEntry) []Experience {
	results := make([]Experience, 0, len(entries))
	for _, entry := range entries {
		var (
			e   *Experience
			err error
		)
		if entry.ID != "" {
			e, err = s.UpdateExperience(ctx, entry.ID, entry.ExperiencePatch)
		} else {
			e, err = s.CreateExperience(ctx, entry.input())
		}
		if err != nil || e == nil {
			continue
		}
		results = append(results, *e)
	}
	return results
}
