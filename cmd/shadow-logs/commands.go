package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goran-ethernal/ShadowLogs/internal/common"
	"github.com/goran-ethernal/ShadowLogs/internal/config"
	"github.com/goran-ethernal/ShadowLogs/internal/db"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/internal/migrations"
	"github.com/goran-ethernal/ShadowLogs/internal/store/postgres"
	pkgconfig "github.com/goran-ethernal/ShadowLogs/pkg/config"
	"github.com/spf13/cobra"
)

var (
	migrateDown  bool
	migrateSteps int
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the shadow_logs schema",
	Long: `Apply the shadow_logs schema to the configured database.
SQLite databases are migrated with versioned migrations and can be rolled back
with --down. Postgres tables are created if they do not exist.`,
	RunE: runMigrate,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := pkgconfig.JSONSchemaBytes()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, string(out))
		return err
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "roll migrations back instead of applying them (sqlite only)")
	migrateCmd.Flags().IntVar(&migrateSteps, "steps", 0, "number of migrations to roll back (0 = all)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewComponentLoggerFromConfig(common.ComponentLogStore, cfg.Logging)

	switch cfg.DB.Driver {
	case pkgconfig.DriverPostgres:
		if migrateDown {
			return errors.New("--down is only supported for the sqlite driver")
		}

		logStore := postgres.Open(cfg.DB, log)
		defer logStore.Close()

		if err := logStore.CreateSchema(context.Background()); err != nil {
			return err
		}

	default:
		if migrateDown {
			sqlDB, err := db.NewSQLiteDB(cfg.DB.Path)
			if err != nil {
				return fmt.Errorf("failed to open sqlite database: %w", err)
			}
			defer sqlDB.Close()

			if err := migrations.Rollback(log, sqlDB, migrateSteps); err != nil {
				return fmt.Errorf("failed to roll back migrations: %w", err)
			}
			log.Infof("rolled back migrations on %s", cfg.DB.Path)
			return nil
		}

		if err := migrations.RunMigrations(cfg.DB.Path); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	log.Info("shadow_logs schema is up to date")
	return nil
}
