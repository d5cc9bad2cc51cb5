package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/news-api/internal/config"
	"github.com/phrazzld/news-api/internal/platform/logger"
)

// loadConfig loads configuration and installs the configured logger.
func loadConfig(path string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadWithFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"metrics_enabled", cfg.Metrics.Enabled)
	log.Debug("database configuration",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
		"conn_max_lifetime", cfg.Database.ConnMaxLifetime)

	return cfg, log, nil
}
