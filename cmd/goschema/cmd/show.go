package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goschema/internal/config"
	"github.com/dbsmedya/goschema/internal/logger"
	"github.com/dbsmedya/goschema/internal/render"
	"github.com/dbsmedya/goschema/internal/schema"
	"github.com/dbsmedya/goschema/internal/store"
)

var showCollection string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the inferred schema of a single collection",
	Long: `Show infers the schema of one collection and prints its flattened
dotted-path view as an aligned table.

Example:
  goschema show --config goschema.yaml --collection users`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showCollection, "collection", "n", "",
		"Collection name to inspect (required)")
	showCmd.MarkFlagRequired("collection")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := store.SetupSignalHandler()

	st, err := store.Connect(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer st.Close(context.Background())

	inferrer, err := schema.NewInferrer(st, log, cfg.Inference.MaxDepth, cfg.Inference.SkipSystem)
	if err != nil {
		return fmt.Errorf("failed to create inferrer: %w", err)
	}

	fields, err := inferrer.Collection(ctx, showCollection)
	if err != nil {
		return fmt.Errorf("failed to infer schema for %q: %w", showCollection, err)
	}

	flattener := schema.NewFlattener(cfg.Inference.FilteredFields, cfg.Inference.RetainParents)
	flat := flattener.FlattenFields(fields)

	fmt.Fprintln(cmd.OutOrStdout(), render.SchemaTable(showCollection, flat))

	return nil
}
