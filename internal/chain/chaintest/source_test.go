package chaintest

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h0 := common.HexToHash("0x01")
	h10 := common.HexToHash("0x0a")

	source := NewSource().AddBlock(0, h0).AddBlock(10, h10)

	number, found, err := source.BlockNumberByTag(ctx, rpc.LatestBlockNumber)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(10), number)

	number, found, err = source.BlockNumberByTag(ctx, rpc.EarliestBlockNumber)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(0), number)

	_, found, err = source.BlockNumberByTag(ctx, rpc.BlockNumber(5))
	require.NoError(t, err)
	require.False(t, found)

	number, found, err = source.BlockNumberByHash(ctx, h10)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(10), number)

	_, found, err = source.BlockNumberByHash(ctx, common.HexToHash("0xff"))
	require.NoError(t, err)
	require.False(t, found)

	source.FailWith(errors.New("down"))
	_, _, err = source.BlockNumberByTag(ctx, rpc.LatestBlockNumber)
	require.EqualError(t, err, "down")
}
