package main

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/news-api/internal/config"
	"github.com/phrazzld/news-api/internal/platform/postgres"
	"github.com/phrazzld/news-api/internal/redact"
)

// setupAppDatabase opens the connection pool described by cfg.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("database connection failed", "error", redact.Error(err))
		return nil, err
	}

	logger.Info("database connection established",
		"driver", postgres.DriverName,
		"max_open_conns", cfg.Database.MaxOpenConns)
	return db, nil
}
