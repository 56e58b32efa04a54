package main

import (
	"fmt"

	"github.com/goran-ethernal/ShadowLogs/internal/db"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/internal/store"
	"github.com/goran-ethernal/ShadowLogs/internal/store/postgres"
	"github.com/goran-ethernal/ShadowLogs/internal/store/sqlite"
	"github.com/goran-ethernal/ShadowLogs/pkg/config"
)

// openLogStore opens the log store backend selected by cfg.Driver.
func openLogStore(cfg config.DatabaseConfig, log *logger.Logger) (store.LogStore, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg, log), nil
	case config.DriverSQLite, "":
		sqlDB, err := db.NewSQLiteDBFromConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return sqlite.NewLogStore(sqlDB, log), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
