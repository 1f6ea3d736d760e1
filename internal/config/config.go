// Package config provides configuration structures and loading for GoSchema.
package config

// Config represents the complete application configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database" mapstructure:"database"`
	Inference InferenceConfig `yaml:"inference" mapstructure:"inference"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// DatabaseConfig represents a MongoDB database connection configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" mapstructure:"host"`
	Port           int    `yaml:"port" mapstructure:"port"`
	User           string `yaml:"user" mapstructure:"user"`
	Password       string `yaml:"password" mapstructure:"password"`
	Database       string `yaml:"database" mapstructure:"database"`
	AuthSource     string `yaml:"auth_source" mapstructure:"auth_source"`
	TLS            string `yaml:"tls" mapstructure:"tls"` // disable, required, insecure
	ConnectTimeout int    `yaml:"connect_timeout" mapstructure:"connect_timeout"`
}

// InferenceConfig represents schema inference settings.
type InferenceConfig struct {
	MaxDepth       int      `yaml:"max_depth" mapstructure:"max_depth"`
	FilteredFields []string `yaml:"filtered_fields" mapstructure:"filtered_fields"`
	SkipSystem     bool     `yaml:"skip_system" mapstructure:"skip_system"`
	RetainParents  bool     `yaml:"retain_parents" mapstructure:"retain_parents"`
}

// OutputConfig represents artifact output settings.
type OutputConfig struct {
	FullSchemaPath string `yaml:"full_schema_path" mapstructure:"full_schema_path"`
	FlatSchemaPath string `yaml:"flat_schema_path" mapstructure:"flat_schema_path"`
	Pretty         bool   `yaml:"pretty" mapstructure:"pretty"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format     string `yaml:"format" mapstructure:"format"` // json or text
	Output     string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" mapstructure:"max_age_days"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Port:           27017,
			AuthSource:     "admin",
			TLS:            "disable",
			ConnectTimeout: 10,
		},
		Inference: InferenceConfig{
			MaxDepth:       10,
			FilteredFields: []string{"buffer", "__v"},
			SkipSystem:     true,
			RetainParents:  false,
		},
		Output: OutputConfig{
			FullSchemaPath: "full_schema.json",
			FlatSchemaPath: "flat_schema.json",
			Pretty:         true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Output:     "stdout",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string, maxDepth int, filterFields []string, retainParents bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if maxDepth > 0 {
		c.Inference.MaxDepth = maxDepth
	}
	if len(filterFields) > 0 {
		c.Inference.FilteredFields = filterFields
	}
	if retainParents {
		c.Inference.RetainParents = true
	}
}
