package shadow

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goran-ethernal/ShadowLogs/internal/store"
)

// LogEntry is the wire form of a shadow log.
type LogEntry struct {
	Address          string     `json:"address"`
	BlockHash        string     `json:"blockHash"`
	BlockNumber      string     `json:"blockNumber"`
	Data             string     `json:"data"`
	LogIndex         string     `json:"logIndex"`
	Removed          bool       `json:"removed"`
	Topics           [4]*string `json:"topics"`
	TransactionHash  string     `json:"transactionHash"`
	TransactionIndex string     `json:"transactionIndex"`
}

// EncodeLogRecord converts a stored record into its wire form.
// Binary columns become 0x-prefixed lowercase hex. The block number is the
// lowercase hex of its 8-byte big-endian form, 16 characters without a prefix.
// Log and transaction indices are decimal.
func EncodeLogRecord(r *store.LogRecord) LogEntry {
	entry := LogEntry{
		Address:          hexutil.Encode(r.Address),
		BlockHash:        hexutil.Encode(r.BlockHash),
		BlockNumber:      EncodeBlockNumber(r.BlockNumber),
		Data:             hexutil.Encode(r.Data),
		LogIndex:         strconv.FormatUint(r.BlockLogIndex, 10),
		Removed:          r.Removed,
		TransactionHash:  hexutil.Encode(r.TransactionHash),
		TransactionIndex: strconv.FormatUint(r.TransactionIndex, 10),
	}

	for i, topic := range r.Topics() {
		if topic == nil {
			continue
		}
		encoded := hexutil.Encode(topic)
		entry.Topics[i] = &encoded
	}

	return entry
}

// EncodeBlockNumber renders n as 16 lowercase hex characters of its big-endian bytes.
func EncodeBlockNumber(n uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	return hex.EncodeToString(buf[:])
}
