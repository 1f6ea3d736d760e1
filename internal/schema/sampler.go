// Package schema provides the core schema inference logic for GoSchema.
package schema

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Canonical type tags reported in inferred schemas.
const (
	TypeObject    = "object"
	TypeArray     = "array"
	TypeString    = "string"
	TypeNumber    = "number"
	TypeBoolean   = "boolean"
	TypeNull      = "null"
	TypeObjectID  = "objectId"
	TypeDate      = "date"
	TypeBinary    = "binData"
	TypeRegex     = "regex"
	TypeTimestamp = "timestamp"
	TypeUndefined = "undefined"
)

// Classify returns the canonical type tag for a decoded BSON value.
// Sequences always classify as "array" regardless of element homogeneity;
// everything else is a typeof-style test on the value itself, never a
// structural inspection. Pure function, no side effects.
func Classify(value interface{}) string {
	switch value.(type) {
	case nil, bson.Null:
		return TypeNull
	case bson.D, bson.M, map[string]interface{}:
		return TypeObject
	case bson.A, []interface{}:
		return TypeArray
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, bson.Decimal128:
		return TypeNumber
	case bson.ObjectID:
		return TypeObjectID
	case bson.DateTime, time.Time:
		return TypeDate
	case bson.Binary:
		return TypeBinary
	case bson.Regex:
		return TypeRegex
	case bson.Timestamp:
		return TypeTimestamp
	default:
		return TypeUndefined
	}
}

// labelTags maps store-native type labels (BSON $type strings) to canonical tags.
var labelTags = map[string]string{
	"double":    TypeNumber,
	"int":       TypeNumber,
	"long":      TypeNumber,
	"decimal":   TypeNumber,
	"bool":      TypeBoolean,
	"string":    TypeString,
	"object":    TypeObject,
	"array":     TypeArray,
	"null":      TypeNull,
	"objectId":  TypeObjectID,
	"date":      TypeDate,
	"binData":   TypeBinary,
	"regex":     TypeRegex,
	"timestamp": TypeTimestamp,
	"undefined": TypeUndefined,
}

// NormalizeLabel converts a store-native type label to its canonical tag.
// Unknown labels pass through unchanged so new store types stay visible.
func NormalizeLabel(label string) string {
	if tag, ok := labelTags[label]; ok {
		return tag
	}
	return label
}

// NormalizeLabels converts a set of store-native labels to canonical tags,
// removing duplicates introduced by the mapping (e.g. int and long both fold
// into number) and sorting for deterministic output.
func NormalizeLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	tags := make([]string, 0, len(labels))
	for _, label := range labels {
		tag := NormalizeLabel(label)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// containsTag reports whether a tag set contains the given tag.
func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
