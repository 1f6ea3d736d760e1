// Package writer persists schema artifacts as JSON documents.
package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dbsmedya/goschema/internal/logger"
	"github.com/dbsmedya/goschema/internal/types"
)

// Writer serializes schema structures to caller-supplied file paths.
// Key ordering in the output matches traversal order; the schema types
// marshal through ordered maps.
type Writer struct {
	pretty bool
	log    *logger.Logger
}

// New creates a Writer. When pretty is set, output is indented.
func New(pretty bool, log *logger.Logger) *Writer {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Writer{pretty: pretty, log: log}
}

// WriteFull writes the nested schema artifact.
func (w *Writer) WriteFull(path string, full *types.FullSchema) error {
	if err := w.write(path, full); err != nil {
		return fmt.Errorf("failed to write full schema: %w", err)
	}
	w.log.Infow("Wrote full schema", "path", path, "collections", full.Len())
	return nil
}

// WriteFlat writes the flattened schema artifact.
func (w *Writer) WriteFlat(path string, flat *types.FlattenSchema) error {
	if err := w.write(path, flat); err != nil {
		return fmt.Errorf("failed to write flat schema: %w", err)
	}
	w.log.Infow("Wrote flat schema", "path", path, "collections", flat.Len())
	return nil
}

// write marshals v and writes it to path, creating parent directories.
func (w *Writer) write(path string, v interface{}) error {
	var data []byte
	var err error
	if w.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	return nil
}
