package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
)

const (
	UpDownSeparator = "-- +migrate Up"
	downMarker      = "-- +migrate Down"

	// NoLimitMigrations applies every pending migration.
	NoLimitMigrations = 0
)

// Migration is one embedded SQL file with a Down section followed by an Up section.
type Migration struct {
	ID  string
	SQL string
}

// parse splits the migration into its sql-migrate form.
func (m Migration) parse() (*migrate.Migration, error) {
	down, up, found := strings.Cut(m.SQL, UpDownSeparator)
	if !found {
		return nil, fmt.Errorf("migration %s missing '%s' separator", m.ID, UpDownSeparator)
	}

	if _, afterMarker, ok := strings.Cut(down, downMarker); ok {
		down = afterMarker
	}

	return &migrate.Migration{
		Id:   m.ID,
		Up:   []string{strings.TrimSpace(up)},
		Down: []string{strings.TrimSpace(down)},
	}, nil
}

// RunMigrations will execute pending migrations if needed to keep
// the database at dbPath updated with the latest changes.
func RunMigrations(dbPath string, migrations []Migration) error {
	db, err := NewSQLiteDB(dbPath)
	if err != nil {
		return fmt.Errorf("error creating DB %w", err)
	}
	defer db.Close()

	return RunMigrationsDB(logger.GetDefaultLogger(), db, migrations)
}

// RunMigrationsDB applies every pending migration on an open database.
func RunMigrationsDB(logger *logger.Logger, db *sql.DB, migrations []Migration) error {
	return RunMigrationsDBExtended(logger, db, migrations, migrate.Up, NoLimitMigrations)
}

// RunMigrationsDBExtended runs at most maxMigrations migrations in direction dir
// (migrate.Up or migrate.Down). Pass NoLimitMigrations to run all of them.
func RunMigrationsDBExtended(logger *logger.Logger,
	db *sql.DB,
	migrations []Migration,
	dir migrate.MigrationDirection,
	maxMigrations int) error {
	source := &migrate.MemoryMigrationSource{}
	ids := make([]string, 0, len(migrations))

	for _, m := range migrations {
		parsed, err := m.parse()
		if err != nil {
			return err
		}
		source.Migrations = append(source.Migrations, parsed)
		ids = append(ids, m.ID)
	}

	// partial runs must tolerate applied migrations missing from the source
	if maxMigrations != NoLimitMigrations {
		migrate.SetIgnoreUnknown(true)
	}

	direction := "up"
	if dir == migrate.Down {
		direction = "down"
	}

	list := strings.Join(ids, ", ")
	logger.Debugf("running %s migrations (max %d/%d): %s", direction, maxMigrations, len(ids), list)

	n, err := migrate.ExecMax(db, "sqlite3", source, dir, maxMigrations)
	if err != nil {
		return fmt.Errorf("error executing migrations (max %d/%d) %s: %w", maxMigrations, len(ids), list, err)
	}

	logger.Infof("successfully ran %d migrations from: %s", n, list)
	return nil
}
