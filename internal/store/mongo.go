package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/dbsmedya/goschema/internal/config"
)

// MongoStore implements Store against a MongoDB database using the official
// driver. Field type discovery runs store-side as an aggregation so the
// group-by stays a single pass over each collection.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a connection to the configured MongoDB database and
// verifies it with a ping. Connection failures propagate immediately; there
// is no retry.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*MongoStore, error) {
	uri := BuildURI(cfg)

	clientOptions := options.Client().ApplyURI(uri)
	if cfg.ConnectTimeout > 0 {
		clientOptions.SetConnectTimeout(time.Duration(cfg.ConnectTimeout) * time.Second)
	}

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
		defer cancel()
	}

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		if dErr := client.Disconnect(ctx); dErr != nil {
			return nil, fmt.Errorf("mongodb ping failed: %w (disconnect: %v)", err, dErr)
		}
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// BuildURI constructs a MongoDB connection URI from configuration.
func BuildURI(cfg *config.DatabaseConfig) string {
	var uri strings.Builder

	uri.WriteString("mongodb://")
	if cfg.User != "" {
		fmt.Fprintf(&uri, "%s:%s@", cfg.User, cfg.Password)
	}
	fmt.Fprintf(&uri, "%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)

	authSource := cfg.AuthSource
	if authSource == "" {
		authSource = "admin"
	}
	fmt.Fprintf(&uri, "?authSource=%s", authSource)

	switch cfg.TLS {
	case "required":
		uri.WriteString("&tls=true")
	case "insecure":
		uri.WriteString("&tls=true&tlsInsecure=true")
	case "disable", "":
		uri.WriteString("&tls=false")
	}

	return uri.String()
}

// ListCollections returns all collection names in the database.
func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// fieldTypesPipeline builds the aggregation that groups the collection's
// flattened top-level key/value pairs by key, accumulating the distinct
// BSON type label of each value. Sorted by key so field order is stable
// across runs ($addToSet order is not).
func fieldTypesPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "kv", Value: bson.D{{Key: "$objectToArray", Value: "$$ROOT"}}},
		}}},
		bson.D{{Key: "$unwind", Value: "$kv"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$kv.k"},
			{Key: "types", Value: bson.D{{Key: "$addToSet", Value: bson.D{{Key: "$type", Value: "$kv.v"}}}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// fieldTypesRow is the shape of one aggregation result document.
type fieldTypesRow struct {
	Field string   `bson:"_id"`
	Types []string `bson:"types"`
}

// FieldTypes runs the type-discovery aggregation for a collection.
func (s *MongoStore) FieldTypes(ctx context.Context, collection string) ([]FieldTypes, error) {
	cursor, err := s.db.Collection(collection).Aggregate(ctx, fieldTypesPipeline())
	if err != nil {
		return nil, fmt.Errorf("type discovery aggregation failed for %q: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var rows []fieldTypesRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode type discovery results for %q: %w", collection, err)
	}

	result := make([]FieldTypes, 0, len(rows))
	for _, row := range rows {
		result = append(result, FieldTypes{Field: row.Field, Types: row.Types})
	}
	return result, nil
}

// projectObjectsProjection builds the projection for sampling one field.
// _id is included by default and must be suppressed explicitly, except when
// it is the sampled field itself: {_id: 0, _id: 1} is a path collision the
// server rejects.
func projectObjectsProjection(field string) bson.D {
	if field == "_id" {
		return bson.D{{Key: "_id", Value: 1}}
	}
	return bson.D{
		{Key: "_id", Value: 0},
		{Key: field, Value: 1},
	}
}

// ProjectObjects returns the object-valued instances of the named field
// across all documents in the collection. The filter runs store-side so only
// qualifying documents come over the wire.
func (s *MongoStore) ProjectObjects(ctx context.Context, collection, field string) ([]bson.D, error) {
	filter := bson.D{{Key: field, Value: bson.D{{Key: "$type", Value: "object"}}}}
	findOptions := options.Find().SetProjection(projectObjectsProjection(field))

	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("sub-document projection failed for %q.%s: %w", collection, field, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode sub-documents for %q.%s: %w", collection, field, err)
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

// Ping verifies the connection is alive.
func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

// Close disconnects from the database.
func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb disconnect failed: %w", err)
	}
	return nil
}
