package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test database defaults
	if cfg.Database.Port != 27017 {
		t.Errorf("expected database port 27017, got %d", cfg.Database.Port)
	}
	if cfg.Database.AuthSource != "admin" {
		t.Errorf("expected auth_source 'admin', got %s", cfg.Database.AuthSource)
	}
	if cfg.Database.TLS != "disable" {
		t.Errorf("expected database TLS 'disable', got %s", cfg.Database.TLS)
	}
	if cfg.Database.ConnectTimeout != 10 {
		t.Errorf("expected connect_timeout 10, got %d", cfg.Database.ConnectTimeout)
	}

	// Test inference defaults
	if cfg.Inference.MaxDepth != 10 {
		t.Errorf("expected max_depth 10, got %d", cfg.Inference.MaxDepth)
	}
	if len(cfg.Inference.FilteredFields) != 2 {
		t.Errorf("expected 2 default filtered fields, got %d", len(cfg.Inference.FilteredFields))
	}
	if cfg.Inference.FilteredFields[0] != "buffer" || cfg.Inference.FilteredFields[1] != "__v" {
		t.Errorf("unexpected default filtered fields: %v", cfg.Inference.FilteredFields)
	}
	if !cfg.Inference.SkipSystem {
		t.Error("expected skip_system enabled by default")
	}
	if cfg.Inference.RetainParents {
		t.Error("expected retain_parents disabled by default")
	}

	// Test output defaults
	if cfg.Output.FullSchemaPath != "full_schema.json" {
		t.Errorf("expected full_schema.json, got %s", cfg.Output.FullSchemaPath)
	}
	if cfg.Output.FlatSchemaPath != "flat_schema.json" {
		t.Errorf("expected flat_schema.json, got %s", cfg.Output.FlatSchemaPath)
	}
	if !cfg.Output.Pretty {
		t.Error("expected pretty output by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected logging format 'json', got %s", cfg.Logging.Format)
	}
	if cfg.Logging.MaxSizeMB != 100 {
		t.Errorf("expected max_size_mb 100, got %d", cfg.Logging.MaxSizeMB)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyOverrides("debug", "text", 5, []string{"secret"}, true)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected format 'text', got %s", cfg.Logging.Format)
	}
	if cfg.Inference.MaxDepth != 5 {
		t.Errorf("expected max_depth 5, got %d", cfg.Inference.MaxDepth)
	}
	if len(cfg.Inference.FilteredFields) != 1 || cfg.Inference.FilteredFields[0] != "secret" {
		t.Errorf("unexpected filtered fields: %v", cfg.Inference.FilteredFields)
	}
	if !cfg.Inference.RetainParents {
		t.Error("expected retain_parents enabled")
	}
}

func TestApplyOverridesZeroValuesIgnored(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyOverrides("", "", 0, nil, false)

	if cfg.Logging.Level != "info" {
		t.Errorf("empty override should keep level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Inference.MaxDepth != 10 {
		t.Errorf("zero override should keep max_depth 10, got %d", cfg.Inference.MaxDepth)
	}
	if len(cfg.Inference.FilteredFields) != 2 {
		t.Errorf("nil override should keep default filtered fields, got %v", cfg.Inference.FilteredFields)
	}
}
