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

// ListExperiences retrieves experiences sorted by order ascending, then most
// recent start date first.
func (m *Mongo) ListExperiences(ctx context.Context) ([]Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "startDate", Value: -1}})

	cursor, err := m.experiences().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer cursor.Close(ctx)

	var experiences []Experience
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, fmt.Errorf("failed to decode experiences: %w", err)
	}
	return experiences, nil
}

// GetExperience retrieves an experience by ID, returning (nil, nil) when
// absent.
func (m *Mongo) GetExperience(ctx context.Context, id string) (*Experience, error) {
	oid, err := parseObjectID(id, "experience")
	if err != nil {
		return nil, err
	}

	var e Experience
	err = m.experiences().FindOne(ctx, bson.M{"_id": oid}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return &e, nil
}

// CreateExperience validates the input and inserts a new experience.
// An EndDate alongside Current is stored as given; the store does not
// reconcile the two fields.
func (m *Mongo) CreateExperience(ctx context.Context, in ExperienceInput) (*Experience, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	e := newExperience(in, time.Now().UTC())
	if _, err := m.experiences().InsertOne(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return &e, nil
}

// UpdateExperience merges the patch over the stored document, re-validates,
// and replaces it. Never creates a document.
func (m *Mongo) UpdateExperience(ctx context.Context, id string, patch ExperiencePatch) (*Experience, error) {
	oid, err := parseObjectID(id, "experience")
	if err != nil {
		return nil, err
	}

	var e Experience
	err = m.experiences().FindOne(ctx, bson.M{"_id": oid}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}

	patch.apply(&e)
	in := e.input()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := m.experiences().ReplaceOne(ctx, bson.M{"_id": oid}, e); err != nil {
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return &e, nil
}

// DeleteExperience removes an experience by ID, returning ErrNotFound when
// no document matched.
func (m *Mongo) DeleteExperience(ctx context.Context, id string) error {
	oid, err := parseObjectID(id, "experience")
	if err != nil {
		return err
	}

	result, err := m.experiences().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetExperiences replaces the experiences collection with the given
// documents.
func (m *Mongo) ResetExperiences(ctx context.Context, experiences []Experience) error {
	if _, err := m.experiences().DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear experiences: %w", err)
	}
	if len(experiences) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]any, len(experiences))
	for i := range experiences {
		fillExperienceDefaults(&experiences[i], now)
		docs[i] = experiences[i]
	}
	if _, err := m.experiences().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert experiences: %w", err)
	}
	return nil
}

func fillExperienceDefaults(e *Experience, now time.Time) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
}
