// Package types contains shared schema types used across multiple packages to avoid import cycles.
package types

import (
	"bytes"
	"encoding/json"

	"github.com/elliotchance/orderedmap/v2"
)

// FieldSchema is a node of the inferred schema tree.
//
// Types holds the set of type tags observed for the field across the sampled
// documents. SubFields is populated only when the field was classified as an
// object, or as an array whose sampled first element was itself composite.
// Truncated marks a node whose sub-fields were cut off by the depth ceiling.
type FieldSchema struct {
	Name      string        `json:"name"`
	Types     []string      `json:"types"`
	SubFields []FieldSchema `json:"subFields,omitempty"`
	Truncated bool          `json:"truncated,omitempty"`
}

// FullSchema maps collection names to their top-level field schemas.
// Collection order follows the store's listing order; serialization preserves it.
type FullSchema struct {
	collections *orderedmap.OrderedMap[string, []FieldSchema]
}

// NewFullSchema creates an empty FullSchema.
func NewFullSchema() *FullSchema {
	return &FullSchema{
		collections: orderedmap.NewOrderedMap[string, []FieldSchema](),
	}
}

// Set stores the field schemas for a collection, preserving insertion order.
func (s *FullSchema) Set(collection string, fields []FieldSchema) {
	s.collections.Set(collection, fields)
}

// Get returns the field schemas for a collection.
func (s *FullSchema) Get(collection string) ([]FieldSchema, bool) {
	return s.collections.Get(collection)
}

// Collections returns collection names in insertion order.
func (s *FullSchema) Collections() []string {
	return s.collections.Keys()
}

// Len returns the number of collections.
func (s *FullSchema) Len() int {
	return s.collections.Len()
}

// MarshalJSON serializes collections in insertion order.
func (s *FullSchema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for el := s.collections.Front(); el != nil; el = el.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(el.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(el.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FlatFields maps dotted field paths to comma-joined type strings for one
// collection. Insertion order follows traversal order.
type FlatFields = orderedmap.OrderedMap[string, string]

// NewFlatFields creates an empty FlatFields map.
func NewFlatFields() *FlatFields {
	return orderedmap.NewOrderedMap[string, string]()
}

// FlattenSchema maps collection names to flattened path/type maps.
// Always derived from a FullSchema, never mutated in place.
type FlattenSchema struct {
	collections *orderedmap.OrderedMap[string, *FlatFields]
}

// NewFlattenSchema creates an empty FlattenSchema.
func NewFlattenSchema() *FlattenSchema {
	return &FlattenSchema{
		collections: orderedmap.NewOrderedMap[string, *FlatFields](),
	}
}

// Set stores the flattened fields for a collection.
func (s *FlattenSchema) Set(collection string, fields *FlatFields) {
	s.collections.Set(collection, fields)
}

// Get returns the flattened fields for a collection.
func (s *FlattenSchema) Get(collection string) (*FlatFields, bool) {
	return s.collections.Get(collection)
}

// Collections returns collection names in insertion order.
func (s *FlattenSchema) Collections() []string {
	return s.collections.Keys()
}

// Len returns the number of collections.
func (s *FlattenSchema) Len() int {
	return s.collections.Len()
}

// MarshalJSON serializes collections and their paths in insertion order.
func (s *FlattenSchema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for el := s.collections.Front(); el != nil; el = el.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(el.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		inner, err := marshalFlatFields(el.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(inner)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalFlatFields serializes a path/type map in insertion order.
func marshalFlatFields(fields *FlatFields) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for el := fields.Front(); el != nil; el = el.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(el.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(el.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
