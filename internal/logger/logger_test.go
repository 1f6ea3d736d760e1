package logger

import (
	"path/filepath"
	"testing"

	"github.com/dbsmedya/goschema/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{
			name: "json format info level",
			cfg: &config.LoggingConfig{
				Level:  "info",
				Format: "json",
				Output: "stdout",
			},
			wantErr: false,
		},
		{
			name: "text format debug level",
			cfg: &config.LoggingConfig{
				Level:  "debug",
				Format: "text",
				Output: "stdout",
			},
			wantErr: false,
		},
		{
			name: "rotated file output",
			cfg: &config.LoggingConfig{
				Level:      "warn",
				Format:     "json",
				Output:     filepath.Join(tmpDir, "goschema.log"),
				MaxSizeMB:  10,
				MaxBackups: 1,
				MaxAgeDays: 7,
			},
			wantErr: false,
		},
		{
			name: "stderr output",
			cfg: &config.LoggingConfig{
				Level:  "error",
				Format: "text",
				Output: "stderr",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if logger == nil && !tt.wantErr {
				t.Error("New() returned nil logger without error")
			}
			if logger != nil {
				_ = logger.Sync()
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	logger := NewDefault()
	if logger == nil {
		t.Fatal("NewDefault() returned nil")
	}
	_ = logger.Sync()
}

func TestWithCollection(t *testing.T) {
	logger := NewDefault()
	child := logger.WithCollection("users")
	if child == nil {
		t.Fatal("WithCollection returned nil")
	}
	if child == logger {
		t.Error("WithCollection should return a new logger")
	}
}

func TestWithField(t *testing.T) {
	logger := NewDefault()
	child := logger.WithField("address.city")
	if child == nil {
		t.Fatal("WithField returned nil")
	}
}

func TestWithFields(t *testing.T) {
	logger := NewDefault()
	child := logger.WithFields(map[string]interface{}{
		"collection": "users",
		"depth":      3,
	})
	if child == nil {
		t.Fatal("WithFields returned nil")
	}
}
