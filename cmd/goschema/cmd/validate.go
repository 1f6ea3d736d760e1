package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goschema/internal/config"
	"github.com/dbsmedya/goschema/internal/store"
)

var validateOffline bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and check database connectivity",
	Long: `Validate checks the configuration file and, unless --offline is set,
verifies that the configured database is reachable.

Checks performed:
  - Configuration syntax and required fields
  - Inference settings (depth ceiling, exclusion filters)
  - Output paths
  - Database connectivity (ping)

Example:
  goschema validate --config goschema.yaml`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateOffline, "offline", false,
		"Skip database connectivity checks")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.MaxDepth, overrides.FilterFields, overrides.RetainParents)

	cmd.Printf("=== Configuration Validation ===\n")
	cmd.Printf("Config file: %s\n\n", configFile)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cmd.Printf("Database:        %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)
	cmd.Printf("Max depth:       %d\n", cfg.Inference.MaxDepth)
	cmd.Printf("Filtered fields: %v\n", cfg.Inference.FilteredFields)
	cmd.Printf("Full schema:     %s\n", cfg.Output.FullSchemaPath)
	cmd.Printf("Flat schema:     %s\n", cfg.Output.FlatSchemaPath)
	cmd.Printf("\nConfiguration OK\n")

	if validateOffline {
		cmd.Printf("Skipping connectivity checks (--offline)\n")
		return nil
	}

	ctx := store.SetupSignalHandler()

	st, err := store.Connect(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer st.Close(context.Background())

	if err := st.Ping(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	cmd.Printf("Database connection OK\n")

	return nil
}
