package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goschema/internal/config"
	"github.com/dbsmedya/goschema/internal/logger"
	"github.com/dbsmedya/goschema/internal/schema"
	"github.com/dbsmedya/goschema/internal/store"
	"github.com/dbsmedya/goschema/internal/writer"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Infer schemas for all collections and write JSON artifacts",
	Long: `Generate connects to the configured database, infers the schema of
every collection, and writes two JSON artifacts: the full nested schema and
the flattened dotted-path schema.

The process follows these steps:
  1. Discover top-level field types per collection (one aggregation pass)
  2. Recursively sample sub-documents for object-typed fields
  3. Flatten the schema tree into dotted paths, applying exclusion filters
  4. Write both artifacts with stable key ordering

A failure on any collection aborts the whole run; no partial artifacts are
written.

Example:
  goschema generate --config goschema.yaml`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
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

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Infow("Starting schema generation",
		"database", cfg.Database.Database,
		"config", configFile,
	)

	// Setup context with signal handling
	ctx := store.SetupSignalHandler()

	// Connect to the document store
	st, err := store.Connect(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer st.Close(context.Background())

	// Infer all collection schemas
	inferrer, err := schema.NewInferrer(st, log, cfg.Inference.MaxDepth, cfg.Inference.SkipSystem)
	if err != nil {
		return fmt.Errorf("failed to create inferrer: %w", err)
	}

	full, err := inferrer.GenerateAll(ctx)
	if err != nil {
		return fmt.Errorf("schema generation failed: %w", err)
	}

	// Flatten
	flattener := schema.NewFlattener(cfg.Inference.FilteredFields, cfg.Inference.RetainParents)
	flat := flattener.Flatten(full)

	// Write artifacts
	w := writer.New(cfg.Output.Pretty, log)
	if err := w.WriteFull(cfg.Output.FullSchemaPath, full); err != nil {
		return err
	}
	if err := w.WriteFlat(cfg.Output.FlatSchemaPath, flat); err != nil {
		return err
	}

	log.Infow("Schema generation finished",
		"collections", full.Len(),
		"duration", time.Since(startTime),
	)

	cmd.Printf("Inferred %d collection(s) in %s\n", full.Len(), time.Since(startTime).Round(time.Millisecond))
	cmd.Printf("  Full schema: %s\n", cfg.Output.FullSchemaPath)
	cmd.Printf("  Flat schema: %s\n", cfg.Output.FlatSchemaPath)

	return nil
}
