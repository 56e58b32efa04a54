package filter

import (
	"context"
	"fmt"

	"github.com/goran-ethernal/ShadowLogs/internal/chain"
)

// Resolver turns a block identifier into a block number.
type Resolver interface {
	Resolve(ctx context.Context, id string) (uint64, error)
}

// Validator resolves raw filters into validated ones.
type Validator struct {
	resolver      Resolver
	maxBlockRange uint64
}

// Option configures a Validator.
type Option func(*Validator)

// WithMaxBlockRange rejects filters spanning more than limit blocks (0 disables the check).
func WithMaxBlockRange(limit uint64) Option {
	return func(v *Validator) {
		v.maxBlockRange = limit
	}
}

// NewValidator creates a validator resolving block identifiers with resolver.
func NewValidator(resolver Resolver, opts ...Option) *Validator {
	v := &Validator{resolver: resolver}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks raw and resolves its block locator.
//
//	blockHash  fromBlock  toBlock   range
//	-          -          -         latest .. latest
//	-          -          set       latest .. toBlock
//	-          set        -         fromBlock .. latest
//	-          set        set       fromBlock .. toBlock
//	set        -          -         blockHash .. blockHash
//	set        set or set           ErrAmbiguousRange
func (v *Validator) Validate(ctx context.Context, raw RawFilter) (*Validated, error) {
	if raw.BlockHash != nil && (raw.FromBlock != nil || raw.ToBlock != nil) {
		return nil, ErrAmbiguousRange
	}

	// malformed addresses are rejected before the chain source is queried
	addresses, err := normalizeAddresses(raw.Address)
	if err != nil {
		return nil, err
	}

	if raw.BlockHash != nil {
		if _, err := chain.ParseBlockHash(*raw.BlockHash); err != nil {
			return nil, err
		}
	}

	fromBlock, toBlock, err := v.resolveRange(ctx, raw)
	if err != nil {
		return nil, err
	}

	if len(raw.Topics) > MaxTopics {
		return nil, ErrTooManyTopics
	}

	topics, err := normalizeTopics(raw.Topics)
	if err != nil {
		return nil, err
	}

	if v.maxBlockRange > 0 && toBlock >= fromBlock && toBlock-fromBlock >= v.maxBlockRange {
		return nil, &BlockRangeTooLargeError{FromBlock: fromBlock, ToBlock: toBlock, Limit: v.maxBlockRange}
	}

	return &Validated{
		FromBlock: fromBlock,
		ToBlock:   toBlock,
		Addresses: addresses,
		Topics:    topics,
	}, nil
}

func (v *Validator) resolveRange(ctx context.Context, raw RawFilter) (uint64, uint64, error) {
	if raw.BlockHash != nil {
		number, err := v.resolver.Resolve(ctx, *raw.BlockHash)
		if err != nil {
			return 0, 0, err
		}
		return number, number, nil
	}

	fromID, toID := chain.LatestTag, chain.LatestTag
	if raw.FromBlock != nil {
		fromID = *raw.FromBlock
	}
	if raw.ToBlock != nil {
		toID = *raw.ToBlock
	}

	fromBlock, err := v.resolver.Resolve(ctx, fromID)
	if err != nil {
		return 0, 0, err
	}

	if raw.FromBlock == nil && raw.ToBlock == nil {
		return fromBlock, fromBlock, nil
	}

	toBlock, err := v.resolver.Resolve(ctx, toID)
	if err != nil {
		return 0, 0, err
	}

	return fromBlock, toBlock, nil
}

func normalizeAddresses(raw []string) ([]string, error) {
	addresses := make([]string, 0, len(raw))
	for i, address := range raw {
		normalized, err := normalizeHex(address)
		if err != nil {
			return nil, &MalformedFieldError{Field: fmt.Sprintf("address[%d]", i), Value: address, Err: err}
		}
		addresses = append(addresses, normalized)
	}
	return addresses, nil
}

func normalizeTopics(raw []string) ([MaxTopics]*string, error) {
	var topics [MaxTopics]*string
	for i, topic := range raw {
		normalized, err := normalizeHex(topic)
		if err != nil {
			return topics, &MalformedFieldError{Field: fmt.Sprintf("topics[%d]", i), Value: topic, Err: err}
		}
		topics[i] = &normalized
	}
	return topics, nil
}
