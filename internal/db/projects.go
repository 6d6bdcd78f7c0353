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

// ListProjects retrieves projects sorted by order ascending, newest first
// within the same order. A non-nil featured pointer filters on the flag.
func (m *Mongo) ListProjects(ctx context.Context, featured *bool) ([]Project, error) {
	filter := bson.M{}
	if featured != nil {
		filter["featured"] = *featured
	}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})

	cursor, err := m.projects().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

// GetProject retrieves a project by ID, returning (nil, nil) when absent.
func (m *Mongo) GetProject(ctx context.Context, id string) (*Project, error) {
	oid, err := parseObjectID(id, "project")
	if err != nil {
		return nil, err
	}

	var p Project
	err = m.projects().FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

// CreateProject validates the input and inserts a new project. CreatedAt and
// UpdatedAt are set to the same instant.
func (m *Mongo) CreateProject(ctx context.Context, in ProjectInput) (*Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p := newProject(in, time.Now().UTC())
	if _, err := m.projects().InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &p, nil
}

// UpdateProject merges the patch over the stored document, re-validates the
// result, and replaces it. A missing project returns ErrNotFound; the path
// never creates a document.
func (m *Mongo) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*Project, error) {
	oid, err := parseObjectID(id, "project")
	if err != nil {
		return nil, err
	}

	var p Project
	err = m.projects().FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	patch.apply(&p)
	in := p.input()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()

	if _, err := m.projects().ReplaceOne(ctx, bson.M{"_id": oid}, p); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &p, nil
}

// DeleteProject removes a project by ID, returning ErrNotFound when no
// document matched.
func (m *Mongo) DeleteProject(ctx context.Context, id string) error {
	oid, err := parseObjectID(id, "project")
	if err != nil {
		return err
	}

	result, err := m.projects().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetProjects replaces the projects collection with the given documents.
func (m *Mongo) ResetProjects(ctx context.Context, projects []Project) error {
	if _, err := m.projects().DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}
	if len(projects) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]any, len(projects))
	for i := range projects {
		fillProjectDefaults(&projects[i], now)
		docs[i] = projects[i]
	}
	if _, err := m.projects().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert projects: %w", err)
	}
	return nil
}

func fillProjectDefaults(p *Project, now time.Time) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
}
