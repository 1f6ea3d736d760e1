package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore implements Store over in-memory document sets. It computes the
// type-discovery group-by as a one-pass application-side fold with the same
// semantics as the store-native aggregation, and doubles as the test stand-in
// for a live database.
type MemoryStore struct {
	names       []string
	collections map[string][]bson.D
	failures    map[string]error
	listErr     error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]bson.D),
		failures:    make(map[string]error),
	}
}

// AddCollection registers a collection with its documents. Listing order
// follows registration order.
func (s *MemoryStore) AddCollection(name string, docs []bson.D) {
	if _, exists := s.collections[name]; !exists {
		s.names = append(s.names, name)
	}
	s.collections[name] = docs
}

// FailCollection makes every query against the named collection return err.
func (s *MemoryStore) FailCollection(name string, err error) {
	s.failures[name] = err
}

// FailListing makes ListCollections return err.
func (s *MemoryStore) FailListing(err error) {
	s.listErr = err
}

// ListCollections returns collection names in registration order.
func (s *MemoryStore) ListCollections(ctx context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names, nil
}

// FieldTypes folds over the collection once, grouping top-level keys and
// accumulating the distinct native type label of each value. Key order
// follows first observation; label order follows observation order.
func (s *MemoryStore) FieldTypes(ctx context.Context, collection string) ([]FieldTypes, error) {
	if err := s.failures[collection]; err != nil {
		return nil, err
	}
	docs, exists := s.collections[collection]
	if !exists {
		return nil, fmt.Errorf("collection %q not found", collection)
	}

	var order []string
	grouped := make(map[string][]string)
	for _, doc := range docs {
		for _, elem := range doc {
			labels, seen := grouped[elem.Key]
			if !seen {
				order = append(order, elem.Key)
			}
			label := NativeLabel(elem.Value)
			if !containsLabel(labels, label) {
				grouped[elem.Key] = append(labels, label)
			}
		}
	}

	result := make([]FieldTypes, 0, len(order))
	for _, field := range order {
		result = append(result, FieldTypes{Field: field, Types: grouped[field]})
	}
	return result, nil
}

// ProjectObjects returns the object-valued instances of the named field.
func (s *MemoryStore) ProjectObjects(ctx context.Context, collection, field string) ([]bson.D, error) {
	if err := s.failures[collection]; err != nil {
		return nil, err
	}
	docs, exists := s.collections[collection]
	if !exists {
		return nil, fmt.Errorf("collection %q not found", collection)
	}

	var subDocs []bson.D
	for _, doc := range docs {
		for _, elem := range doc {
			if elem.Key != field {
				continue
			}
			if sub, ok := elem.Value.(bson.D); ok {
				subDocs = append(subDocs, sub)
			}
		}
	}
	return subDocs, nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// NativeLabel returns the BSON type label for a decoded value, matching what
// the store-native $type operator reports for the same value.
func NativeLabel(value interface{}) string {
	switch value.(type) {
	case nil, bson.Null:
		return "null"
	case bson.D, bson.M, map[string]interface{}:
		return "object"
	case bson.A, []interface{}:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	case float32, float64:
		return "double"
	case int, int32:
		return "int"
	case int64:
		return "long"
	case bson.Decimal128:
		return "decimal"
	case bson.ObjectID:
		return "objectId"
	case bson.DateTime, time.Time:
		return "date"
	case bson.Binary:
		return "binData"
	case bson.Regex:
		return "regex"
	case bson.Timestamp:
		return "timestamp"
	default:
		return "undefined"
	}
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
