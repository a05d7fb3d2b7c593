package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"worldforge/internal/service"
	"worldforge/internal/storage"
	"worldforge/internal/tags"
)

// version is set at build time with -ldflags "-X worldforge/internal/cli.version=...".
var version = "dev"

var (
	dbPath       string
	taxonomyPath string
)

// worldService is opened lazily by commands that need the database.
// Tests replace it with a mock.
var worldService service.WorldService

var rootCmd = &cobra.Command{
	Use:   "worldforge",
	Short: "Organize a fictional world from the command line",
	Long: `worldforge manages worldbuilding projects: search characters, places,
events, magic systems, lore and notes, get tag suggestions for lore text
and explore how entities are connected.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./data/worldforge.db", "path to the SQLite database")
	rootCmd.PersistentFlags().StringVar(&taxonomyPath, "taxonomy", "", "tag taxonomy YAML file (built-in when empty)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openWorld returns the world service, opening the database on first use.
func openWorld() (service.WorldService, func(), error) {
	if worldService != nil {
		return worldService, func() {}, nil
	}

	db, err := storage.New(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	taxonomy, err := tags.LoadTaxonomy(taxonomyPath)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	svc := service.NewWorldService(
		storage.NewProjectRepo(db),
		storage.NewEntityRepo(db),
		storage.NewConnectionRepo(db),
		storage.NewRelationRepo(db),
		taxonomy,
	)
	return svc, func() { _ = db.Close() }, nil
}

// withWorld runs fn against an open world service.
func withWorld(cmd *cobra.Command, fn func(ctx context.Context, world service.WorldService) error) error {
	world, closeFn, err := openWorld()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, world)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
