package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListSkills retrieves skills sorted by category, order, then name.
// A non-empty category restricts the result to that category.
func (m *Mongo) ListSkills(ctx context.Context, category string) ([]Skill, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "category", Value: 1},
		{Key: "order", Value: 1},
		{Key: "name", Value: 1},
	})

	cursor, err := m.skills().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer cursor.Close(ctx)

	var skills []Skill
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills: %w", err)
	}
	return skills, nil
}

// GetSkill retrieves a skill by ID, returning (nil, nil) when absent.
func (m *Mongo) GetSkill(ctx context.Context, id string) (*Skill, error) {
	oid, err := parseObjectID(id, "skill")
	if err != nil {
		return nil, err
	}

	var s Skill
	err = m.skills().FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return &s, nil
}

// CreateSkill validates the input and inserts a new skill.
func (m *Mongo) CreateSkill(ctx context.Context, in SkillInput) (*Skill, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s := newSkill(in, time.Now().UTC())
	if _, err := m.skills().InsertOne(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return &s, nil
}

// UpdateSkill merges the patch over the stored document, re-validates, and
// replaces it. Never creates a document.
func (m *Mongo) UpdateSkill(ctx context.Context, id string, patch SkillPatch) (*Skill, error) {
	oid, err := parseObjectID(id, "skill")
	if err != nil {
		return nil, err
	}

	var s Skill
	err = m.skills().FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}

	patch.apply(&s)
	in := s.input()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := m.skills().ReplaceOne(ctx, bson.M{"_id": oid}, s); err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return &s, nil
}

// DeleteSkill removes a skill by ID, returning ErrNotFound when no document
// matched.
func (m *Mongo) DeleteSkill(ctx context.Context, id string) error {
	oid, err := parseObjectID(id, "skill")
	if err != nil {
		return err
	}

	result, err := m.skills().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetSkills replaces the skills collection with the given documents.
func (m *Mongo) ResetSkills(ctx context.Context, skills []Skill) error {
	if _, err := m.skills().DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear skills: %w", err)
	}
	if len(skills) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]any, len(skills))
	for i := range skills {
		fillSkillDefaults(&skills[i], now)
		docs[i] = skills[i]
	}
	if _, err := m.skills().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert skills: %w", err)
	}
	return nil
}

func fillSkillDefaults(s *Skill, now time.Time) {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
}

// GroupSkills partitions skills by category for grouped display on the
// public site. Input order is preserved within each category.
func GroupSkills(skills []Skill) map[string][]Skill {
	grouped := make(map[string][]Skill)
	for _, s := range skills {
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	return grouped
}
