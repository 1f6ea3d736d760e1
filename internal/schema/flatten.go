package schema

import (
	"strings"

	"github.com/dbsmedya/goschema/internal/types"
)

// DefaultFilteredFields are the path substrings excluded from flattened
// output when nothing is configured: raw buffer payloads and the document
// version marker neither diff nor document usefully.
var DefaultFilteredFields = []string{"buffer", "__v"}

// Flattener collapses a schema tree into per-collection dotted-path maps.
//
// A path is dropped when it contains any of the configured exclusion
// substrings; the check runs against each node's full dotted path
// independently. With retainParents unset, a node with sub-fields is
// represented only by its children; set, every node (leaf and internal)
// gets its own entry.
type Flattener struct {
	filteredFields []string
	retainParents  bool
}

// NewFlattener creates a Flattener with the given exclusion substrings.
// A nil slice falls back to DefaultFilteredFields; pass an empty non-nil
// slice to disable filtering.
func NewFlattener(filteredFields []string, retainParents bool) *Flattener {
	if filteredFields == nil {
		filteredFields = DefaultFilteredFields
	}
	return &Flattener{
		filteredFields: filteredFields,
		retainParents:  retainParents,
	}
}

// Flatten derives a FlattenSchema from a FullSchema. Pure and total: it never
// fails on well-formed input and never mutates its argument.
func (f *Flattener) Flatten(full *types.FullSchema) *types.FlattenSchema {
	flat := types.NewFlattenSchema()
	for _, collection := range full.Collections() {
		fields, _ := full.Get(collection)
		out := types.NewFlatFields()
		f.flattenFields(fields, "", out)
		flat.Set(collection, out)
	}
	return flat
}

// FlattenFields collapses a single collection's field schemas.
func (f *Flattener) FlattenFields(fields []types.FieldSchema) *types.FlatFields {
	out := types.NewFlatFields()
	f.flattenFields(fields, "", out)
	return out
}

// flattenFields walks field schemas depth-first, building dotted paths.
// Later writes to an existing path overwrite earlier ones silently, which is
// how duplicate entries from per-document sub-schema derivation collapse.
func (f *Flattener) flattenFields(fields []types.FieldSchema, prefix string, out *types.FlatFields) {
	for _, field := range fields {
		path := field.Name
		if prefix != "" {
			path = prefix + "." + field.Name
		}

		if !f.excluded(path) {
			if len(field.SubFields) == 0 || f.retainParents {
				out.Set(path, strings.Join(field.Types, ","))
			}
		}

		if len(field.SubFields) > 0 {
			f.flattenFields(field.SubFields, path, out)
		}
	}
}

// excluded reports whether a dotted path contains any filtered substring.
func (f *Flattener) excluded(path string) bool {
	for _, filtered := range f.filteredFields {
		if strings.Contains(path, filtered) {
			return true
		}
	}
	return false
}
