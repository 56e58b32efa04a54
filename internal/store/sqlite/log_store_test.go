package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/goran-ethernal/ShadowLogs/internal/db"
	"github.com/goran-ethernal/ShadowLogs/internal/filter"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/internal/migrations"
	"github.com/goran-ethernal/ShadowLogs/internal/query"
	"github.com/goran-ethernal/ShadowLogs/internal/store"
	"github.com/goran-ethernal/ShadowLogs/pkg/config"
	"github.com/stretchr/testify/require"
)

func setupTestLogStore(t *testing.T, records ...*store.LogRecord) *LogStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "shadow.db")
	require.NoError(t, migrations.RunMigrations(dbPath))

	if len(records) > 0 {
		rwDB, err := db.NewSQLiteDB(dbPath)
		require.NoError(t, err)
		require.NoError(t, InsertLogs(context.Background(), rwDB, records))
		require.NoError(t, rwDB.Close())
	}

	cfg := config.DatabaseConfig{Path: dbPath, ReadOnly: true}
	cfg.ApplyDefaults()

	roDB, err := db.NewSQLiteDBFromConfig(cfg)
	require.NoError(t, err)

	logStore := NewLogStore(roDB, logger.NewNopLogger())
	t.Cleanup(func() { logStore.Close() })

	return logStore
}

func createTestRecord(address byte, blockNumber, logIndex uint64, topics ...[]byte) *store.LogRecord {
	r := &store.LogRecord{
		Address:             []byte{address},
		BlockHash:           []byte{0xbb, byte(blockNumber)},
		BlockNumber:         blockNumber,
		BlockLogIndex:       logIndex,
		Data:                []byte{0x01, 0x02, 0x03},
		TransactionHash:     []byte{0xcc, byte(logIndex)},
		TransactionIndex:    logIndex / 2,
		TransactionLogIndex: logIndex % 2,
	}
	slots := []*[]byte{&r.Topic0, &r.Topic1, &r.Topic2, &r.Topic3}
	for i, topic := range topics {
		*slots[i] = topic
	}
	return r
}

func strPtr(s string) *string { return &s }

func buildPredicate(t *testing.T, v *filter.Validated) query.Predicate {
	t.Helper()

	predicate, err := query.Build(v)
	require.NoError(t, err)
	return predicate
}

func TestLogStore_QueryOrdering(t *testing.T) {
	t.Parallel()

	// inserted out of order on purpose
	logStore := setupTestLogStore(t,
		createTestRecord(0x12, 10, 1),
		createTestRecord(0x12, 0, 0),
		createTestRecord(0x12, 10, 0),
		createTestRecord(0x12, 5, 3),
		createTestRecord(0x12, 5, 2),
	)

	records, err := logStore.Query(context.Background(), buildPredicate(t, &filter.Validated{FromBlock: 0, ToBlock: 10}))
	require.NoError(t, err)
	require.Len(t, records, 5)

	type position struct{ block, index uint64 }
	got := make([]position, len(records))
	for i, r := range records {
		got[i] = position{r.BlockNumber, r.BlockLogIndex}
	}
	require.Equal(t, []position{{0, 0}, {5, 2}, {5, 3}, {10, 0}, {10, 1}}, got)
}

func TestLogStore_QueryFilters(t *testing.T) {
	t.Parallel()

	transfer := []byte{0xdd, 0xf2}
	approval := []byte{0x8c, 0x5b}
	alice := []byte{0xa1}

	logStore := setupTestLogStore(t,
		createTestRecord(0x12, 1, 0, transfer, alice),
		createTestRecord(0x12, 2, 0, approval, alice),
		createTestRecord(0x34, 3, 0, transfer),
		createTestRecord(0x56, 4, 0),
		createTestRecord(0x12, 20, 0, transfer, alice),
	)

	tests := []struct {
		name     string
		filter   filter.Validated
		expected []uint64
	}{
		{
			name:     "range only",
			filter:   filter.Validated{FromBlock: 0, ToBlock: 10},
			expected: []uint64{1, 2, 3, 4},
		},
		{
			name:     "single block",
			filter:   filter.Validated{FromBlock: 20, ToBlock: 20},
			expected: []uint64{20},
		},
		{
			name:     "inverted range matches nothing",
			filter:   filter.Validated{FromBlock: 10, ToBlock: 0},
			expected: []uint64{},
		},
		{
			name:     "address set",
			filter:   filter.Validated{FromBlock: 0, ToBlock: 30, Addresses: []string{"0x34", "0x56"}},
			expected: []uint64{3, 4},
		},
		{
			name: "topic0",
			filter: filter.Validated{
				FromBlock: 0, ToBlock: 30,
				Topics: [filter.MaxTopics]*string{strPtr("0xddf2")},
			},
			expected: []uint64{1, 3, 20},
		},
		{
			name: "topic1 only",
			filter: filter.Validated{
				FromBlock: 0, ToBlock: 10,
				Topics: [filter.MaxTopics]*string{nil, strPtr("0xa1")},
			},
			expected: []uint64{1, 2},
		},
		{
			name: "address and topics",
			filter: filter.Validated{
				FromBlock: 0, ToBlock: 10,
				Addresses: []string{"0x12"},
				Topics:    [filter.MaxTopics]*string{strPtr("0x8c5b"), strPtr("0xa1")},
			},
			expected: []uint64{2},
		},
		{
			name: "unset topic slot in row does not match",
			filter: filter.Validated{
				FromBlock: 0, ToBlock: 10,
				Topics: [filter.MaxTopics]*string{nil, nil, strPtr("0x00")},
			},
			expected: []uint64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, err := logStore.Query(context.Background(), buildPredicate(t, &tt.filter))
			require.NoError(t, err)

			blocks := make([]uint64, len(records))
			for i, r := range records {
				blocks[i] = r.BlockNumber
			}
			require.Equal(t, tt.expected, blocks)
		})
	}
}

func TestLogStore_RecordFields(t *testing.T) {
	t.Parallel()

	expected := &store.LogRecord{
		Address:             []byte{0x12},
		BlockHash:           []byte{0xab, 0xcd},
		BlockNumber:         10,
		BlockLogIndex:       7,
		Data:                []byte{0xde, 0xad},
		Removed:             true,
		Topic0:              []byte{0x01},
		Topic1:              []byte{0x02},
		TransactionHash:     []byte{0xef},
		TransactionIndex:    3,
		TransactionLogIndex: 1,
	}

	logStore := setupTestLogStore(t, expected)

	records, err := logStore.Query(context.Background(), buildPredicate(t, &filter.Validated{FromBlock: 10, ToBlock: 10}))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, expected, records[0])
	require.Nil(t, records[0].Topic2)
	require.Nil(t, records[0].Topic3)
}

func TestLogStore_CanceledContext(t *testing.T) {
	t.Parallel()

	logStore := setupTestLogStore(t, createTestRecord(0x12, 1, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := logStore.Query(ctx, buildPredicate(t, &filter.Validated{FromBlock: 0, ToBlock: 10}))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLogStore_Ping(t *testing.T) {
	t.Parallel()

	logStore := setupTestLogStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, logStore.Ping(ctx))
}

func TestLogStore_ReadOnly(t *testing.T) {
	t.Parallel()

	logStore := setupTestLogStore(t)

	err := InsertLogs(context.Background(), logStore.db, []*store.LogRecord{createTestRecord(0x12, 1, 0)})
	require.Error(t, err)

	var count int
	require.NoError(t, logStore.db.QueryRow("SELECT COUNT(*) FROM shadow_logs").Scan(&count))
	require.Zero(t, count)
}

func TestInsertLogs_Duplicate(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "shadow.db")
	require.NoError(t, migrations.RunMigrations(dbPath))

	rwDB, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer rwDB.Close()

	record := createTestRecord(0x12, 1, 0)
	require.NoError(t, InsertLogs(context.Background(), rwDB, []*store.LogRecord{record}))
	require.Error(t, InsertLogs(context.Background(), rwDB, []*store.LogRecord{record}))
}
