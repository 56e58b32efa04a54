package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/internal/metrics"
	"github.com/goran-ethernal/ShadowLogs/internal/query"
	"github.com/goran-ethernal/ShadowLogs/internal/store"
	"github.com/goran-ethernal/ShadowLogs/pkg/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const backendName = "postgres"

// Compile-time check to ensure LogStore implements store.LogStore interface.
var _ store.LogStore = (*LogStore)(nil)

type logRow struct {
	bun.BaseModel `bun:"table:shadow_logs,alias:l"`

	Address             []byte `bun:"address,type:bytea,notnull"`
	BlockHash           []byte `bun:"block_hash,type:bytea,notnull"`
	BlockNumber         uint64 `bun:"block_number,type:bigint,pk"`
	BlockLogIndex       uint64 `bun:"block_log_index,type:bigint,pk"`
	Data                []byte `bun:"data,type:bytea,notnull"`
	Removed             bool   `bun:"removed,notnull,default:false"`
	Topic0              []byte `bun:"topic_0,type:bytea"`
	Topic1              []byte `bun:"topic_1,type:bytea"`
	Topic2              []byte `bun:"topic_2,type:bytea"`
	Topic3              []byte `bun:"topic_3,type:bytea"`
	TransactionHash     []byte `bun:"transaction_hash,type:bytea,notnull"`
	TransactionIndex    uint64 `bun:"transaction_index,type:bigint,notnull"`
	TransactionLogIndex uint64 `bun:"transaction_log_index,type:bigint,notnull"`
}

func (r *logRow) toRecord() *store.LogRecord {
	return &store.LogRecord{
		Address:             r.Address,
		BlockHash:           r.BlockHash,
		BlockNumber:         r.BlockNumber,
		BlockLogIndex:       r.BlockLogIndex,
		Data:                r.Data,
		Removed:             r.Removed,
		Topic0:              r.Topic0,
		Topic1:              r.Topic1,
		Topic2:              r.Topic2,
		Topic3:              r.Topic3,
		TransactionHash:     r.TransactionHash,
		TransactionIndex:    r.TransactionIndex,
		TransactionLogIndex: r.TransactionLogIndex,
	}
}

// LogStore implements store.LogStore on top of Postgres.
type LogStore struct {
	db  *bun.DB
	log *logger.Logger
}

// Open connects to the Postgres database described by cfg.DSN.
// The connection is established lazily on first use.
func Open(cfg config.DatabaseConfig, log *logger.Logger) *LogStore {
	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConnections)

	return NewLogStore(bun.NewDB(sqlDB, pgdialect.New()), log)
}

// NewLogStore creates a LogStore over an existing bun database handle.
func NewLogStore(db *bun.DB, log *logger.Logger) *LogStore {
	return &LogStore{
		db:  db,
		log: log,
	}
}

// CreateSchema creates the shadow_logs table and its address index if they are missing.
func (s *LogStore) CreateSchema(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().Model((*logRow)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("failed to create shadow_logs table: %w", err)
	}

	_, err := s.db.NewCreateIndex().
		Model((*logRow)(nil)).
		Index("idx_shadow_logs_address").
		Column("address").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create shadow_logs address index: %w", err)
	}

	return nil
}

func (s *LogStore) selectQuery(rows *[]logRow, predicate query.Predicate) *bun.SelectQuery {
	q := s.db.NewSelect().Model(rows)
	for _, clause := range predicate.Clauses {
		q = q.Where(clause.Fragment, clause.Args...)
	}
	return q.OrderExpr("block_number ASC, block_log_index ASC")
}

// Query retrieves the shadow logs matching the predicate.
func (s *LogStore) Query(ctx context.Context, predicate query.Predicate) ([]*store.LogRecord, error) {
	start := time.Now()
	metrics.DBQueryInc(backendName, "query")
	defer func() {
		metrics.DBQueryDuration(backendName, "query", time.Since(start))
	}()

	var rows []logRow
	if err := s.selectQuery(&rows, predicate).Scan(ctx); err != nil && !errors.Is(err, sql.ErrNoRows) {
		metrics.DBErrorsInc(backendName, "query")
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}

	records := make([]*store.LogRecord, len(rows))
	for i := range rows {
		records[i] = rows[i].toRecord()
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
