package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Database.Host = "localhost"
	cfg.Database.Database = "appdb"
	return cfg
}

func TestValidateValid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidateMissingHost(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Host = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "database.host") {
		t.Errorf("expected database.host error, got %v", err)
	}
}

func TestValidateMissingDatabase(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Database = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "database.database") {
		t.Errorf("expected database.database error, got %v", err)
	}
}

func TestValidateInvalidPort(t *testing.T) {
	tests := []int{0, -1, 70000}
	for _, port := range tests {
		cfg := validConfig()
		cfg.Database.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidateInvalidTLS(t *testing.T) {
	cfg := validConfig()
	cfg.Database.TLS = "preferred"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "database.tls") {
		t.Errorf("expected database.tls error, got %v", err)
	}
}

func TestValidateMaxDepth(t *testing.T) {
	cfg := validConfig()
	cfg.Inference.MaxDepth = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "inference.max_depth") {
		t.Errorf("expected inference.max_depth error, got %v", err)
	}
}

func TestValidateEmptyFilteredField(t *testing.T) {
	cfg := validConfig()
	cfg.Inference.FilteredFields = []string{"buffer", ""}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "inference.filtered_fields") {
		t.Errorf("expected inference.filtered_fields error, got %v", err)
	}
}

func TestValidateOutputPaths(t *testing.T) {
	cfg := validConfig()
	cfg.Output.FlatSchemaPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty flat schema path")
	}

	cfg = validConfig()
	cfg.Output.FullSchemaPath = "schema.json"
	cfg.Output.FlatSchemaPath = "schema.json"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for identical output paths")
	}
	if !strings.Contains(err.Error(), "must differ") {
		t.Errorf("expected path collision error, got %v", err)
	}
}

func TestValidateInvalidLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid log level")
	}

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid log format")
	}
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Host = ""
	cfg.Database.Database = ""
	cfg.Inference.MaxDepth = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(verrs), verrs)
	}
}
