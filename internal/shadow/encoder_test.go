package shadow

import (
	"encoding/json"
	"testing"

	"github.com/goran-ethernal/ShadowLogs/internal/store"
	"github.com/stretchr/testify/require"
)

func TestEncodeBlockNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		number   uint64
		expected string
	}{
		{0, "0000000000000000"},
		{10, "000000000000000a"},
		{255, "00000000000000ff"},
		{0x1234abcd, "000000001234abcd"},
		{1<<63 - 1, "7fffffffffffffff"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, EncodeBlockNumber(tt.number))
	}
}

func TestEncodeLogRecord(t *testing.T) {
	t.Parallel()

	record := &store.LogRecord{
		Address:          []byte{0x12},
		BlockHash:        []byte{0xAB, 0xCD},
		BlockNumber:      10,
		BlockLogIndex:    17,
		Data:             []byte{},
		Removed:          true,
		Topic0:           []byte{0xDE, 0xAD},
		Topic2:           []byte{0x00},
		TransactionHash:  []byte{0xFF, 0x01},
		TransactionIndex: 3,
	}

	entry := EncodeLogRecord(record)

	require.Equal(t, "0x12", entry.Address)
	require.Equal(t, "0xabcd", entry.BlockHash)
	require.Equal(t, "000000000000000a", entry.BlockNumber)
	require.Equal(t, "0x", entry.Data)
	require.Equal(t, "17", entry.LogIndex)
	require.True(t, entry.Removed)
	require.Equal(t, "0xff01", entry.TransactionHash)
	require.Equal(t, "3", entry.TransactionIndex)

	require.NotNil(t, entry.Topics[0])
	require.Equal(t, "0xdead", *entry.Topics[0])
	require.Nil(t, entry.Topics[1])
	require.NotNil(t, entry.Topics[2])
	require.Equal(t, "0x00", *entry.Topics[2])
	require.Nil(t, entry.Topics[3])
}

func TestLogEntry_JSON(t *testing.T) {
	t.Parallel()

	entry := EncodeLogRecord(&store.LogRecord{
		Address:         []byte{0x12},
		BlockHash:       []byte{0x01},
		BlockNumber:     1,
		Data:            []byte{0x02},
		Topic0:          []byte{0x03},
		TransactionHash: []byte{0x04},
	})

	out, err := json.Marshal(entry)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"address": "0x12",
		"blockHash": "0x01",
		"blockNumber": "0000000000000001",
		"data": "0x02",
		"logIndex": "0",
		"removed": false,
		"topics": ["0x03", null, null, null],
		"transactionHash": "0x04",
		"transactionIndex": "0"
	}`, string(out))
}
