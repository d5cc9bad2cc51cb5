package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/news-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

func newSeedCmd(configPath *string) *cobra.Command {
	var skipData bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and load the development dataset",
		Long: "Apply the embedded migrations and replace every row with the " +
			"development dataset. Existing data is truncated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := setupAppDatabase(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Error("Error closing database connection", "error", err)
				}
			}()

			return runSeed(ctx, db, log, !skipData)
		},
	}
	cmd.Flags().BoolVar(&skipData, "schema-only", false, "apply migrations without loading data")

	return cmd
}

// runSeed migrates the schema and, when loadData is set, reloads the
// development dataset. Every log line carries the same run_id.
func runSeed(ctx context.Context, db *sqlx.DB, log *slog.Logger, loadData bool) error {
	log = log.With(slog.String("run_id", uuid.NewString()))
	start := time.Now()

	if err := postgres.Migrate(ctx, db.DB, log); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("schema is up to date")

	if !loadData {
		return nil
	}

	data := postgres.DevelopmentDataset()
	if err := postgres.Seed(ctx, db, data); err != nil {
		return fmt.Errorf("failed to seed dataset: %w", err)
	}

	log.Info("development dataset loaded",
		"topics", len(data.Topics),
		"users", len(data.Users),
		"articles", len(data.Articles),
		"comments", len(data.Comments),
		"duration", time.Since(start))
	return nil
}
