package store

import (
	"context"

	"github.com/goran-ethernal/ShadowLogs/internal/query"
)

// LogRecord is one row of the shadow_logs table.
type LogRecord struct {
	Address             []byte
	BlockHash           []byte
	BlockNumber         uint64
	BlockLogIndex       uint64
	Data                []byte
	Removed             bool
	Topic0              []byte
	Topic1              []byte
	Topic2              []byte
	Topic3              []byte
	TransactionHash     []byte
	TransactionIndex    uint64
	TransactionLogIndex uint64
}

// Topics returns the four topic slots, nil for absent topics.
func (r *LogRecord) Topics() [4][]byte {
	return [4][]byte{r.Topic0, r.Topic1, r.Topic2, r.Topic3}
}

// LogStore is read-only access to persisted shadow logs.
type LogStore interface {
	// Query returns the records matching the predicate ordered by
	// block number, then block log index, ascending.
	Query(ctx context.Context, predicate query.Predicate) ([]*LogRecord, error)

	// Ping checks the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close() error
}
