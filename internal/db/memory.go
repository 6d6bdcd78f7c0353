package db

import (
	"context"
	"sort"
	"sync"
	"time"
)

type contentKey struct {
	section string
	key     string
}

// Memory implements Store entirely in process. It backs the test suite and
// `serve --memory` for local development without a running MongoDB. Write
// ordering is arbitrated by a single mutex, mirroring the last-write-wins
// behavior of the real store.
type Memory struct {
	mu          sync.RWMutex
	content     map[contentKey]ContentItem
	projects    map[string]Project
	skills      map[string]Skill
	experiences map[string]Experience
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		content:     make(map[contentKey]ContentItem),
		projects:    make(map[string]Project),
		skills:      make(map[string]Skill),
		experiences: make(map[string]Experience),
	}
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close(_ context.Context) error { return nil }

// ListContent returns every content row, ordered by section then key.
func (m *Memory) ListContent(_ context.Context) ([]ContentItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]ContentItem, 0, len(m.content))
	for _, item := range m.content {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Section != items[j].Section {
			return items[i].Section < items[j].Section
		}
		return items[i].Key < items[j].Key
	})
	return items, nil
}

// UpsertContent creates or overwrites the row keyed on (section, key).
func (m *Memory) UpsertContent(_ context.Context, section, key string, value any, valueType string) (*ContentItem, error) {
	if err := validateContentUpsert(section, key, value); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ck := contentKey{section: section, key: key}
	item, ok := m.content[ck]

	stored := ""
	if ok {
		stored = item.Type
	}
	valueType = effectiveContentType(stored, valueType)
	value, err := NormalizeValue(valueType, value)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if ok {
		// Existing rows keep their type; only value and timestamp change.
		item.Value = value
		item.UpdatedAt = now
	} else {
		item = ContentItem{Section: section, Key: key, Value: value, Type: valueType, UpdatedAt: now}
		fillContentDefaults(&item, now)
	}
	m.content[ck] = item
	return &item, nil
}

// ResetContent replaces all content rows.
func (m *Memory) ResetContent(_ context.Context, items []ContentItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.content = make(map[contentKey]ContentItem, len(items))
	now := time.Now().UTC()
	for i := range items {
		fillContentDefaults(&items[i], now)
		m.content[contentKey{section: items[i].Section, key: items[i].Key}] = items[i]
	}
	return nil
}

// ListProjects returns projects sorted by order ascending, newest first.
func (m *Memory) ListProjects(_ context.Context, featured *bool) ([]Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	projects := make([]Project, 0, len(m.projects))
	for _, p := range m.projects {
		if featured != nil && p.Featured != *featured {
			continue
		}
		projects = append(projects, p)
	}
	sortProjects(projects)
	return projects, nil
}

// GetProject returns a project by ID, or (nil, nil) when absent.
func (m *Memory) GetProject(_ context.Context, id string) (*Project, error) {
	if _, err := parseObjectID(id, "project"); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// CreateProject validates the input and stores a new project.
func (m *Memory) CreateProject(_ context.Context, in ProjectInput) (*Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p := newProject(in, time.Now().UTC())
	m.projects[p.ID.Hex()] = p
	return &p, nil
}

// UpdateProject merges the patch over the stored project and re-validates.
func (m *Memory) UpdateProject(_ context.Context, id string, patch ProjectPatch) (*Project, error) {
	if _, err := parseObjectID(id, "project"); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, ErrNotFound
	}

	patch.apply(&p)
	in := p.input()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()
	m.projects[id] = p
	return &p, nil
}

// DeleteProject removes a project by ID.
func (m *Memory) DeleteProject(_ context.Context, id string) error {
	if _, err := parseObjectID(id, "project"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return ErrNotFound
	}
	delete(m.projects, id)
	return nil
}

// ResetProjects replaces all projects.
func (m *Memory) ResetProjects(_ context.Context, projects []Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.projects = make(map[string]Project, len(projects))
	now := time.Now().UTC()
	for i := range projects {
		fillProjectDefaults(&projects[i], now)
		m.projects[projects[i].ID.Hex()] = projects[i]
	}
	return nil
}

// ListSkills returns skills sorted by category, order, then name.
func (m *Memory) ListSkills(_ context.Context, category string) ([]Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	skills := make([]Skill, 0, len(m.skills))
	for _, s := range m.skills {
		if category != "" && s.Category != category {
			continue
		}
		skills = append(skills, s)
	}
	sortSkills(skills)
	return skills, nil
}

// GetSkill returns a skill by ID, or (nil, nil) when absent.
func (m *Memory) GetSkill(_ context.Context, id string) (*Skill, error) {
	if _, err := parseObjectID(id, "skill"); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.skills[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// CreateSkill validates the input and stores a new skill.
func (m *Memory) CreateSkill(_ context.Context, in SkillInput) (*Skill, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := newSkill(in, time.Now().UTC())
	m.skills[s.ID.Hex()] = s
	return &s, nil
}

// UpdateSkill merges the patch over the stored skill and re-validates.
func (m *Memory) UpdateSkill(_ context.Context, id string, patch SkillPatch) (*Skill, error) {
	if _, err := parseObjectID(id, "skill"); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.skills[id]
	if !ok {
		return nil, ErrNotFound
	}

	patch.apply(&s)
	in := s.input()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m.skills[id] = s
	return &s, nil
}

// DeleteSkill removes a skill by ID.
func (m *Memory) DeleteSkill(_ context.Context, id string) error {
	if _, err := parseObjectID(id, "skill"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.skills[id]; !ok {
		return ErrNotFound
	}
	delete(m.skills, id)
	return nil
}

// ResetSkills replaces all skills.
func (m *Memory) ResetSkills(_ context.Context, skills []Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.skills = make(map[string]Skill, len(skills))
	now := time.Now().UTC()
	for i := range skills {
		fillSkillDefaults(&skills[i], now)
		m.skills[skills[i].ID.Hex()] = skills[i]
	}
	return nil
}

// ListExperiences returns experiences sorted by order, then most recent
// start date first.
func (m *Memory) ListExperiences(_ context.Context) ([]Experience, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	experiences := make([]Experience, 0, len(m.experiences))
	for _, e := range m.experiences {
		experiences = append(experiences, e)
	}
	sortExperiences(experiences)
	return experiences, nil
}

// GetExperience returns an experience by ID, or (nil, nil) when absent.
func (m *Memory) GetExperience(_ context.Context, id string) (*Experience, error) {
	if _, err := parseObjectID(id, "experience"); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.experiences[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// CreateExperience validates the input and stores a new experience.
func (m *Memory) CreateExperience(_ context.Context, in ExperienceInput) (*Experience, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e := newExperience(in, time.Now().UTC())
	m.experiences[e.ID.Hex()] = e
	return &e, nil
}

// UpdateExperience merges the patch over the stored experience and
// re-validates.
func (m *Memory) UpdateExperience(_ context.Context, id string, patch ExperiencePatch) (*Experience, error) {
	if _, err := parseObjectID(id, "experience"); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.experiences[id]
	if !ok {
		return nil, ErrNotFound
	}

	patch.apply(&e)
	in := e.input()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m.experiences[id] = e
	return &e, nil
}

// DeleteExperience removes an experience by ID.
func (m *Memory) DeleteExperience(_ context.Context, id string) error {
	if _, err := parseObjectID(id, "experience"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.experiences[id]; !ok {
		return ErrNotFound
	}
	delete(m.experiences, id)
	return nil
}

// ResetExperiences replaces all experiences.
func (m *Memory) ResetExperiences(_ context.Context, experiences []Experience) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.experiences = make(map[string]Experience, len(experiences))
	now := time.Now().UTC()
	for i := range experiences {
		fillExperienceDefaults(&experiences[i], now)
		m.experiences[experiences[i].ID.Hex()] = experiences[i]
	}
	return nil
}

// Sort helpers mirror the sort specs the Mongo implementation pushes down
// to the server.

func sortProjects(projects []Project) {
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].Order != projects[j].Order {
			return projects[i].Order < projects[j].Order
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
}

func sortSkills(skills []Skill) {
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Category != skills[j].Category {
			return skills[i].Category < skills[j].Category
		}
		if skills[i].Order != skills[j].Order {
			return skills[i].Order < skills[j].Order
		}
		return skills[i].Name < skills[j].Name
	})
}

func sortExperiences(experiences []Experience) {
	sort.Slice(experiences, func(i, j int) bool {
		if experiences[i].Order != experiences[j].Order {
			return experiences[i].Order < experiences[j].Order
		}
		return experiences[i].StartDate.After(experiences[j].StartDate)
	})
}
