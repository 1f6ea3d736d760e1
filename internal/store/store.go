// Package store provides document store access for GoSchema.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// FieldTypes holds the distinct store-native type labels observed for one
// top-level field across a collection.
type FieldTypes struct {
	Field string
	Types []string
}

// Store is the document store capability consumed by schema inference.
//
// FieldTypes must compute the per-key distinct type labels in a single pass
// over the collection, whether store-side (aggregation) or in-process.
// ProjectObjects returns the values of the named field for documents where
// that value is an object.
type Store interface {
	// ListCollections returns all collection names in the target database.
	ListCollections(ctx context.Context) ([]string, error)

	// FieldTypes returns, per distinct top-level key in the collection, the
	// set of distinct native type labels observed for that key's value.
	FieldTypes(ctx context.Context, collection string) ([]FieldTypes, error)

	// ProjectObjects projects the named field across all documents and
	// returns the values whose runtime type is an object.
	ProjectObjects(ctx context.Context, collection, field string) ([]bson.D, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the store connection.
	Close(ctx context.Context) error
}
