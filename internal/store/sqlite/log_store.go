package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/goran-ethernal/ShadowLogs/internal/db" // registers the blob meddler
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/internal/metrics"
	"github.com/goran-ethernal/ShadowLogs/internal/query"
	"github.com/goran-ethernal/ShadowLogs/internal/store"
	"github.com/russross/meddler"
)

const (
	backendName = "sqlite"
	tableName   = "shadow_logs"
)

// Compile-time check to ensure LogStore implements store.LogStore interface.
var _ store.LogStore = (*LogStore)(nil)

// LogStore implements store.LogStore using SQLite as the backend.
type LogStore struct {
	db  *sql.DB
	log *logger.Logger
}

// NewLogStore creates a new SQLite-backed LogStore.
func NewLogStore(db *sql.DB, log *logger.Logger) *LogStore {
	return &LogStore{
		db:  db,
		log: log,
	}
}

// Query retrieves the shadow logs matching the predicate.
func (s *LogStore) Query(ctx context.Context, predicate query.Predicate) ([]*store.LogRecord, error) {
	where, args := predicate.Where()
	q := fmt.Sprintf(
		"SELECT %s FROM %s %s ORDER BY block_number ASC, block_log_index ASC",
		selectColumns, tableName, where,
	)

	start := time.Now()
	metrics.DBQueryInc(backendName, "query")
	defer func() {
		metrics.DBQueryDuration(backendName, "query", time.Since(start))
	}()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		metrics.DBErrorsInc(backendName, errorType(err))
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	var dbLogs []*dbLog
	if err := meddler.ScanAll(rows, &dbLogs); err != nil {
		metrics.DBErrorsInc(backendName, errorType(err))
		return nil, fmt.Errorf("failed to scan logs: %w", err)
	}

	records := make([]*store.LogRecord, len(dbLogs))
	for i, l := range dbLogs {
		records[i] = l.toRecord()
	}

	s.log.Debugf("query %s returned %d logs in %v", predicate, len(records), time.Since(start))

	return records, nil
}

// Ping checks the database connection.
func (s *LogStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *LogStore) Close() error {
	return s.db.Close()
}

// InsertLogs writes records into the shadow_logs table. The service itself never
// writes; this exists for fixtures and local seeding.
func InsertLogs(ctx context.Context, db *sql.DB, records []*store.LogRecord) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, r := range records {
		if err := meddler.Insert(tx, tableName, fromRecord(r)); err != nil {
			return fmt.Errorf("failed to insert log %d/%d: %w", r.BlockNumber, r.BlockLogIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "query"
	}
}
