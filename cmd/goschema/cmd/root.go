package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile       string
	logLevel      string
	logFormat     string
	maxDepth      int
	filterFields  []string
	retainParents bool
)

var rootCmd = &cobra.Command{
	Use:   "goschema",
	Short: "MongoDB Schema Inferrer",
	Long: `A CLI tool that infers the structural schema of a schemaless MongoDB
database: the field names that actually occur per collection, their observed
value types, and the recursive shape of nested objects and arrays.

Features:
  - Store-side type discovery (one aggregation pass per collection)
  - Recursive sub-document and array element sampling
  - Flattened dotted-path schema view with exclusion filters
  - Configurable recursion depth ceiling
  - JSON artifacts with stable key ordering`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "goschema.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Inference overrides
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0,
		"Override recursion depth ceiling for nested schema discovery")
	rootCmd.PersistentFlags().StringSliceVar(&filterFields, "filter-field", nil,
		"Override path substrings excluded from flattened output (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&retainParents, "retain-parents", false,
		"Emit a flattened entry for object-typed parents as well as their children")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel      string
	LogFormat     string
	MaxDepth      int
	FilterFields  []string
	RetainParents bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:      logLevel,
		LogFormat:     logFormat,
		MaxDepth:      maxDepth,
		FilterFields:  filterFields,
		RetainParents: retainParents,
	}
}
