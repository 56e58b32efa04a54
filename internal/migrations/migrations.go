package migrations

import (
	"database/sql"
	_ "embed"

	"github.com/goran-ethernal/ShadowLogs/internal/db"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed 001_shadow_logs.sql
var mig001 string

// All returns the migrations of the shadow log database in order.
func All() []db.Migration {
	return []db.Migration{
		{
			ID:  "001_shadow_logs.sql",
			SQL: mig001,
		},
	}
}

// RunMigrations brings the shadow log database at dbPath up to date.
func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, All())
}

// Rollback reverts at most steps migrations on an open database (0 reverts all).
func Rollback(log *logger.Logger, sqlDB *sql.DB, steps int) error {
	return db.RunMigrationsDBExtended(log, sqlDB, All(), migrate.Down, steps)
}
