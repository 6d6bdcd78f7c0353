package db

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GroupContent converts flat content rows into a nested mapping of
// section -> key -> value for the public site and admin dashboard.
// The (section, key) uniqueness index prevents duplicate keys; if one slips
// through anyway, the last row wins.
func GroupContent(items []ContentItem) map[string]map[string]any {
	grouped := make(map[string]map[string]any)
	for _, item := range items {
		section, ok := grouped[item.Section]
		if !ok {
			section = make(map[string]any)
			grouped[item.Section] = section
		}
		section[item.Key] = item.Value
	}
	return grouped
}

// NormalizeValue checks that value matches the shape declared by valueType
// and returns the canonical representation. Content values are a tagged
// union: text/html/image carry a string, array a []string, object a
// map[string]any. JSON-decoded arrays arrive as []any and are converted.
func NormalizeValue(valueType string, value any) (any, error) {
	switch valueType {
	case TypeText, TypeHTML, TypeImage:
		s, ok := value.(string)
		if !ok {
			return nil, &ValidationError{Message: fmt.Sprintf("value must be a string for type %q", valueType)}
		}
		return s, nil
	case TypeArray:
		switch v := value.(type) {
		case []string:
			return v, nil
		case []any:
			out := make([]string, len(v))
			for i, elem := range v {
				s, ok := elem.(string)
				if !ok {
					return nil, &ValidationError{Message: "value must be an array of strings for type \"array\""}
				}
				out[i] = s
			}
			return out, nil
		default:
			return nil, &ValidationError{Message: "value must be an array of strings for type \"array\""}
		}
	case TypeObject:
		m, ok := value.(map[string]any)
		if !ok {
			return nil, &ValidationError{Message: "value must be an object for type \"object\""}
		}
		return m, nil
	default:
		return nil, &ValidationError{Message: fmt.Sprintf("invalid content type %q", valueType)}
	}
}

// validateContentUpsert checks the required arguments of a content upsert.
func validateContentUpsert(section, key string, value any) error {
	if section == "" || key == "" || value == nil {
		return &ValidationError{Message: "section, key, and value are required"}
	}
	if !ValidSection(section) {
		return &ValidationError{Message: fmt.Sprintf("invalid section %q", section)}
	}
	return nil
}

// effectiveContentType resolves the type a content value is validated
// against. An existing row keeps its stored type regardless of what the
// request declares; the request type (defaulted to text) only applies when
// the row is being created.
func effectiveContentType(stored, requested string) string {
	if stored != "" {
		return stored
	}
	if requested == "" {
		return TypeText
	}
	return requested
}

// UpsertContentMany applies one upsert per key against the same section,
// sequentially in key order. The operation is deliberately not atomic: a
// failure aborts the remaining keys and the rows written so far stay
// committed. The rows persisted before the failure are returned alongside
// the error so the caller can report partial progress.
func UpsertContentMany(ctx context.Context, s Store, section string, updates map[string]any) ([]ContentItem, error) {
	keys := make([]string, 0, len(updates))
	for key := range updates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]ContentItem, 0, len(keys))
	for _, key := range keys {
		item, err := s.UpsertContent(ctx, section, key, updates[key], "")
		if err != nil {
			return results, err
		}
		results = append(results, *item)
	}
	return results, nil
}

// ListContent retrieves every content row, ordered by section then key.
func (m *Mongo) ListContent(ctx context.Context) ([]ContentItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "section", Value: 1}, {Key: "key", Value: 1}})
	cursor, err := m.content().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	defer cursor.Close(ctx)

	var items []ContentItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	return items, nil
}

// UpsertContent creates or overwrites the row keyed on (section, key).
// The type is only written when the row is created; updates change the value
// and timestamp but never reclassify the type, and the value is checked
// against the stored type rather than whatever the request declares.
func (m *Mongo) UpsertContent(ctx context.Context, section, key string, value any, valueType string) (*ContentItem, error) {
	if err := validateContentUpsert(section, key, value); err != nil {
		return nil, err
	}

	filter := bson.M{"section": section, "key": key}

	var existing ContentItem
	err := m.content().FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"type": 1})).Decode(&existing)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to read content %s.%s: %w", section, key, err)
	}

	valueType = effectiveContentType(existing.Type, valueType)
	value, err = NormalizeValue(valueType, value)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set":         bson.M{"value": value, "updatedAt": time.Now().UTC()},
		"$setOnInsert": bson.M{"type": valueType},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var item ContentItem
	if err := m.content().FindOneAndUpdate(ctx, filter, update, opts).Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to upsert content %s.%s: %w", section, key, err)
	}
	return &item, nil
}

// ResetContent replaces the content collection with the given rows.
func (m *Mongo) ResetContent(ctx context.Context, items []ContentItem) error {
	if _, err := m.content().DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear content: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]any, len(items))
	for i := range items {
		fillContentDefaults(&items[i], now)
		docs[i] = items[i]
	}
	if _, err := m.content().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert content: %w", err)
	}
	return nil
}

func fillContentDefaults(item *ContentItem, now time.Time) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	if item.Type == "" {
		item.Type = TypeText
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}
}
