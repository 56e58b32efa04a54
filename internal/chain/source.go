package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

// Source is the canonical chain data source the resolver reads from.
// found is false when the chain has no block for the given tag, number or hash.
type Source interface {
	// BlockNumberByTag returns the number of the block a tag or explicit number points to.
	BlockNumberByTag(ctx context.Context, tag rpc.BlockNumber) (number uint64, found bool, err error)

	// BlockNumberByHash returns the number of the canonical block with the given hash.
	BlockNumberByHash(ctx context.Context, hash common.Hash) (number uint64, found bool, err error)
}
