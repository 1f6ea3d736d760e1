package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goschema/internal/config"
	"github.com/dbsmedya/goschema/internal/store"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List all collections in the configured database",
	Long: `Collections connects to the configured database and lists its
collection names in listing order.

Example:
  goschema collections --config goschema.yaml`,
	RunE: runCollections,
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
}

func runCollections(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := store.SetupSignalHandler()

	st, err := store.Connect(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer st.Close(context.Background())

	names, err := st.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	if len(names) == 0 {
		cmd.Printf("No collections found in %s\n", cfg.Database.Database)
		return nil
	}

	cmd.Printf("Collections in %s:\n\n", cfg.Database.Database)
	for i, name := range names {
		cmd.Printf("%d. %s\n", i+1, name)
	}
	cmd.Printf("\nTotal: %d collection(s)\n", len(names))

	return nil
}
