package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateDatabase()...)
	errors = append(errors, c.validateInference()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateDatabase() ValidationErrors {
	var errors ValidationErrors

	if c.Database.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "database.host",
			Message: "host is required",
		})
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "database.port",
			Message: fmt.Sprintf("port must be between 1 and 65535, got %d", c.Database.Port),
		})
	}
	if c.Database.Database == "" {
		errors = append(errors, ValidationError{
			Field:   "database.database",
			Message: "database name is required",
		})
	}
	switch c.Database.TLS {
	case "", "disable", "required", "insecure":
	default:
		errors = append(errors, ValidationError{
			Field:   "database.tls",
			Message: fmt.Sprintf("tls must be one of disable, required, insecure, got %q", c.Database.TLS),
		})
	}
	if c.Database.ConnectTimeout < 0 {
		errors = append(errors, ValidationError{
			Field:   "database.connect_timeout",
			Message: "connect_timeout must not be negative",
		})
	}

	return errors
}

func (c *Config) validateInference() ValidationErrors {
	var errors ValidationErrors

	if c.Inference.MaxDepth < 1 {
		errors = append(errors, ValidationError{
			Field:   "inference.max_depth",
			Message: fmt.Sprintf("max_depth must be at least 1, got %d", c.Inference.MaxDepth),
		})
	}
	for _, field := range c.Inference.FilteredFields {
		if field == "" {
			errors = append(errors, ValidationError{
				Field:   "inference.filtered_fields",
				Message: "filtered field substrings must not be empty",
			})
			break
		}
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	if c.Output.FullSchemaPath == "" {
		errors = append(errors, ValidationError{
			Field:   "output.full_schema_path",
			Message: "full schema output path is required",
		})
	}
	if c.Output.FlatSchemaPath == "" {
		errors = append(errors, ValidationError{
			Field:   "output.flat_schema_path",
			Message: "flat schema output path is required",
		})
	}
	if c.Output.FullSchemaPath != "" && c.Output.FullSchemaPath == c.Output.FlatSchemaPath {
		errors = append(errors, ValidationError{
			Field:   "output.flat_schema_path",
			Message: "full and flat schema paths must differ",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("level must be one of debug, info, warn, error, got %q", c.Logging.Level),
		})
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("format must be json or text, got %q", c.Logging.Format),
		})
	}

	return errors
}
