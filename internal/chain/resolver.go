package chain

import (
	"context"
	"errors"
	"fmt"
	"math"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goran-ethernal/ShadowLogs/internal/common"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/internal/metrics"
)

// LatestTag is the identifier used when a filter leaves a block bound unset.
const LatestTag = "latest"

const hashHexLength = 2 + 2*ethcommon.HashLength

var tags = map[string]rpc.BlockNumber{
	"latest":    rpc.LatestBlockNumber,
	"earliest":  rpc.EarliestBlockNumber,
	"pending":   rpc.PendingBlockNumber,
	"safe":      rpc.SafeBlockNumber,
	"finalized": rpc.FinalizedBlockNumber,
}

// Resolver turns block identifiers (hash, tag or number) into block heights.
// Every call is a point-in-time read of the source; two resolutions of "latest"
// may disagree if the chain advances in between.
type Resolver struct {
	source Source
	log    *logger.Logger
}

// NewResolver creates a resolver over the given chain data source.
func NewResolver(source Source, log *logger.Logger) *Resolver {
	return &Resolver{
		source: source,
		log:    log,
	}
}

// Resolve returns the block number identified by id.
// id is a 32-byte 0x-prefixed block hash, one of the tags latest, earliest,
// pending, safe, finalized (case-insensitive), or a decimal or 0x-prefixed hex number.
func (r *Resolver) Resolve(ctx context.Context, id string) (uint64, error) {
	if common.HasHexPrefix(id) && len(id) == hashHexLength {
		hash, err := ParseBlockHash(id)
		if err != nil {
			metrics.BlockResolutionInc("hash", "malformed")
			return 0, err
		}
		return r.resolveHash(ctx, id, hash)
	}

	tag, err := parseBlockTag(id)
	if err != nil {
		metrics.BlockResolutionInc("tag", "malformed")
		return 0, err
	}

	return r.resolveTag(ctx, id, tag)
}

func (r *Resolver) resolveHash(ctx context.Context, id string, hash ethcommon.Hash) (uint64, error) {
	number, found, err := r.source.BlockNumberByHash(ctx, hash)
	if err != nil {
		metrics.BlockResolutionInc("hash", "error")
		return 0, &ResolverUnavailableError{Identifier: id, Err: err}
	}
	if !found {
		metrics.BlockResolutionInc("hash", "not_found")
		return 0, &BlockNotFoundError{Identifier: id, ByHash: true}
	}

	metrics.BlockResolutionInc("hash", "found")
	r.log.Debugf("resolved block hash %s to %d", id, number)

	return number, nil
}

func (r *Resolver) resolveTag(ctx context.Context, id string, tag rpc.BlockNumber) (uint64, error) {
	kind := "tag"
	if tag >= 0 {
		kind = "number"
	}

	number, found, err := r.source.BlockNumberByTag(ctx, tag)
	if err != nil {
		metrics.BlockResolutionInc(kind, "error")
		return 0, &ResolverUnavailableError{Identifier: id, Err: err}
	}
	if !found {
		metrics.BlockResolutionInc(kind, "not_found")
		return 0, &BlockNotFoundError{Identifier: id}
	}

	metrics.BlockResolutionInc(kind, "found")
	r.log.Debugf("resolved block %s to %d", id, number)

	return number, nil
}

// ParseBlockHash parses a 0x-prefixed 32-byte block hash.
func ParseBlockHash(id string) (ethcommon.Hash, error) {
	if !common.HasHexPrefix(id) || len(id) != hashHexLength {
		return ethcommon.Hash{}, &MalformedIdentifierError{
			Identifier: id,
			Err:        fmt.Errorf("block hash must be 0x followed by %d hex characters", 2*ethcommon.HashLength),
		}
	}

	raw, err := hexutil.Decode(id)
	if err != nil {
		return ethcommon.Hash{}, &MalformedIdentifierError{Identifier: id, Err: err}
	}

	return ethcommon.BytesToHash(raw), nil
}

func parseBlockTag(id string) (rpc.BlockNumber, error) {
	if id == "" {
		return 0, &MalformedIdentifierError{Identifier: id, Err: errors.New("empty block identifier")}
	}

	if tag, ok := tags[common.ToLowerWithTrim(id)]; ok {
		return tag, nil
	}

	number, err := common.ParseUint64orHex(&id)
	if err != nil {
		return 0, &MalformedIdentifierError{Identifier: id, Err: err}
	}
	if number > math.MaxInt64 {
		return 0, &MalformedIdentifierError{Identifier: id, Err: errors.New("block number exceeds maximum")}
	}

	return rpc.BlockNumber(number), nil
}
