package sqlite

import (
	"github.com/goran-ethernal/ShadowLogs/internal/store"
)

const selectColumns = `address, block_hash, block_number, block_log_index, data, removed,
		topic_0, topic_1, topic_2, topic_3,
		transaction_hash, transaction_index, transaction_log_index`

// dbLog represents a shadow log row in the database
type dbLog struct {
	Address             []byte `meddler:"address"`
	BlockHash           []byte `meddler:"block_hash"`
	BlockNumber         uint64 `meddler:"block_number"`
	BlockLogIndex       uint64 `meddler:"block_log_index"`
	Data                []byte `meddler:"data"`
	Removed             bool   `meddler:"removed"`
	Topic0              []byte `meddler:"topic_0,blob"`
	Topic1              []byte `meddler:"topic_1,blob"`
	Topic2              []byte `meddler:"topic_2,blob"`
	Topic3              []byte `meddler:"topic_3,blob"`
	TransactionHash     []byte `meddler:"transaction_hash"`
	TransactionIndex    uint64 `meddler:"transaction_index"`
	TransactionLogIndex uint64 `meddler:"transaction_log_index"`
}

func (l *dbLog) toRecord() *store.LogRecord {
	return &store.LogRecord{
		Address:             l.Address,
		BlockHash:           l.BlockHash,
		BlockNumber:         l.BlockNumber,
		BlockLogIndex:       l.BlockLogIndex,
		Data:                l.Data,
		Removed:             l.Removed,
		Topic0:              l.Topic0,
		Topic1:              l.Topic1,
		Topic2:              l.Topic2,
		Topic3:              l.Topic3,
		TransactionHash:     l.TransactionHash,
		TransactionIndex:    l.TransactionIndex,
		TransactionLogIndex: l.TransactionLogIndex,
	}
}

func fromRecord(r *store.LogRecord) *dbLog {
	return &dbLog{
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
