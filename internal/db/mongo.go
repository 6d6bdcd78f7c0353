package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on top of a MongoDB database with four collections:
// content, projects, skills, experiences.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a MongoDB client, verifies the connection, and ensures
// the unique (section, key) index on the content collection.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m := &Mongo{client: client, db: client.Database(dbName)}

	// (section, key) is the natural primary key for content rows.
	_, err = m.content().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "section", Value: 1}, {Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create content index: %w", err)
	}

	return m, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from database: %w", err)
	}
	return nil
}

func (m *Mongo) content() *mongo.Collection     { return m.db.Collection("content") }
func (m *Mongo) projects() *mongo.Collection    { return m.db.Collection("projects") }
func (m *Mongo) skills() *mongo.Collection      { return m.db.Collection("skills") }
func (m *Mongo) experiences() *mongo.Collection { return m.db.Collection("experiences") }

// parseObjectID validates that id is a well-formed ObjectID hex string.
// Malformed identifiers are a validation failure, distinct from a lookup
// that finds nothing.
func parseObjectID(id, resource string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &ValidationError{Message: fmt.Sprintf("invalid %s ID", resource)}
	}
	return oid, nil
}
