package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/goran-ethernal/ShadowLogs/internal/db"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, sqlDB *sql.DB, name string) bool {
	t.Helper()

	var count int
	err := sqlDB.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&count)
	require.NoError(t, err)

	return count == 1
}

func TestRunMigrationsAndRollback(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "shadow.db")

	require.NoError(t, RunMigrations(dbPath))
	// applying twice is a no-op
	require.NoError(t, RunMigrations(dbPath))

	sqlDB, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	defer sqlDB.Close()

	require.True(t, tableExists(t, sqlDB, "shadow_logs"))

	_, err = sqlDB.Exec(`INSERT INTO shadow_logs (address, block_hash, block_number, block_log_index, data,
		transaction_hash, transaction_index, transaction_log_index) VALUES (X'12', X'aa', 1, 0, X'', X'bb', 0, 0)`)
	require.NoError(t, err)

	// the primary key rejects a second log at the same position
	_, err = sqlDB.Exec(`INSERT INTO shadow_logs (address, block_hash, block_number, block_log_index, data,
		transaction_hash, transaction_index, transaction_log_index) VALUES (X'34', X'aa', 1, 0, X'', X'cc', 0, 0)`)
	require.Error(t, err)

	require.NoError(t, Rollback(logger.NewNopLogger(), sqlDB, 0))
	require.False(t, tableExists(t, sqlDB, "shadow_logs"))
}
