package schema

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dbsmedya/goschema/internal/logger"
	"github.com/dbsmedya/goschema/internal/store"
	"github.com/dbsmedya/goschema/internal/types"
)

// DefaultMaxDepth caps schema tree recursion when no ceiling is configured.
const DefaultMaxDepth = 10

// Inferrer discovers the structural schema of schemaless collections by
// aggregating observed top-level field types and recursively sampling
// sub-documents and composite array elements.
type Inferrer struct {
	store      store.Store
	log        *logger.Logger
	maxDepth   int
	skipSystem bool
}

// NewInferrer creates an inference service backed by the given store.
//
// maxDepth bounds recursion into nested objects and arrays; values <= 0 fall
// back to DefaultMaxDepth. When skipSystem is set, collections with a
// "system." prefix are skipped during full-database generation.
func NewInferrer(st store.Store, log *logger.Logger, maxDepth int, skipSystem bool) (*Inferrer, error) {
	if st == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &Inferrer{
		store:      st,
		log:        log,
		maxDepth:   maxDepth,
		skipSystem: skipSystem,
	}, nil
}

// GenerateAll infers the schema of every collection in the database, in
// listing order. The first failing collection aborts the whole run; no
// partial results are returned.
func (inf *Inferrer) GenerateAll(ctx context.Context) (*types.FullSchema, error) {
	startTime := time.Now()

	names, err := inf.store.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	full := types.NewFullSchema()
	for _, name := range names {
		if inf.skipSystem && strings.HasPrefix(name, "system.") {
			inf.log.Debugw("Skipping system collection", "collection", name)
			continue
		}

		inf.log.Infow("Inferring collection schema", "collection", name)
		fields, err := inf.Collection(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to infer schema for collection %q: %w", name, err)
		}
		full.Set(name, fields)
	}

	inf.log.Infow("Schema inference complete",
		"collections", full.Len(),
		"duration", time.Since(startTime),
	)

	return full, nil
}

// Collection performs top-level discovery for a single collection.
//
// One store round-trip computes the distinct native type labels observed per
// top-level key across all documents. The full observed type-set is kept per
// field. A field whose set contains "object" gets its sub-fields populated by
// sampling the object-valued instances of that field.
func (inf *Inferrer) Collection(ctx context.Context, name string) ([]types.FieldSchema, error) {
	fieldTypes, err := inf.store.FieldTypes(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("field type discovery failed: %w", err)
	}

	fields := make([]types.FieldSchema, 0, len(fieldTypes))
	for _, ft := range fieldTypes {
		fs := types.FieldSchema{
			Name:  ft.Field,
			Types: NormalizeLabels(ft.Types),
		}

		if containsTag(fs.Types, TypeObject) {
			subFields, err := inf.subDocumentFields(ctx, name, ft.Field)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", ft.Field, err)
			}
			fs.SubFields = subFields
		}

		fields = append(fields, fs)
	}

	return fields, nil
}

// subDocumentFields samples every object-valued instance of the named field
// across the collection and derives each sub-document's fields independently.
// Results are concatenated without de-duplication; the flattener tolerates
// the duplicate field names (last write wins).
func (inf *Inferrer) subDocumentFields(ctx context.Context, collection, field string) ([]types.FieldSchema, error) {
	subDocs, err := inf.store.ProjectObjects(ctx, collection, field)
	if err != nil {
		return nil, fmt.Errorf("sub-document sampling failed: %w", err)
	}

	inf.log.Debugw("Sampled sub-documents",
		"collection", collection,
		"field", field,
		"count", len(subDocs),
	)

	return inf.documentFields(subDocs, 1), nil
}

// documentFields derives field schemas from a set of documents at the given
// depth. Each document contributes its own key set independently, in document
// order; heterogeneous documents produce duplicate field entries by design.
//
// Arrays are expanded only when their first element is composite, in which
// case the entire array's object elements are derived at depth+1. Objects
// recurse as a single-element document set. Recursion past maxDepth marks
// the node truncated instead of descending.
func (inf *Inferrer) documentFields(docs []bson.D, depth int) []types.FieldSchema {
	var fields []types.FieldSchema

	for _, doc := range docs {
		for _, elem := range doc {
			tag := Classify(elem.Value)
			fs := types.FieldSchema{
				Name:  elem.Key,
				Types: []string{tag},
			}

			switch tag {
			case TypeArray:
				arr := asArray(elem.Value)
				if len(arr) > 0 {
					first := Classify(arr[0])
					if first == TypeObject || first == TypeArray {
						if depth+1 > inf.maxDepth {
							fs.Truncated = true
						} else {
							fs.SubFields = inf.documentFields(arrayDocuments(arr), depth+1)
						}
					}
				}
			case TypeObject:
				if depth+1 > inf.maxDepth {
					fs.Truncated = true
				} else {
					fs.SubFields = inf.documentFields([]bson.D{asDocument(elem.Value)}, depth+1)
				}
			}

			fields = append(fields, fs)
		}
	}

	return fields
}

// asArray converts a value classified as "array" to its element slice.
func asArray(value interface{}) bson.A {
	switch v := value.(type) {
	case bson.A:
		return v
	case []interface{}:
		return bson.A(v)
	default:
		return nil
	}
}

// asDocument converts a value classified as "object" to an ordered document.
// Map-backed values lose key order; the driver decodes into bson.D so this
// only matters for hand-built test fixtures.
func asDocument(value interface{}) bson.D {
	switch v := value.(type) {
	case bson.D:
		return v
	case bson.M:
		doc := make(bson.D, 0, len(v))
		for key, val := range v {
			doc = append(doc, bson.E{Key: key, Value: val})
		}
		return doc
	case map[string]interface{}:
		doc := make(bson.D, 0, len(v))
		for key, val := range v {
			doc = append(doc, bson.E{Key: key, Value: val})
		}
		return doc
	default:
		return nil
	}
}

// arrayDocuments extracts the object elements of an array for derivation.
// Primitive and nested-array elements carry no named keys, so they contribute
// no fields of their own.
func arrayDocuments(arr bson.A) []bson.D {
	var docs []bson.D
	for _, elem := range arr {
		if Classify(elem) == TypeObject {
			docs = append(docs, asDocument(elem))
		}
	}
	return docs
}
