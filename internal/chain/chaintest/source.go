// Package chaintest provides an in-memory chain data source for tests.
package chaintest

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

// Source is a fixed set of canonical blocks keyed by hash.
type Source struct {
	mu     sync.RWMutex
	byHash map[common.Hash]uint64
	byNum  map[uint64]struct{}
	latest uint64
	err    error
}

// NewSource creates a source with no blocks.
func NewSource() *Source {
	return &Source{
		byHash: make(map[common.Hash]uint64),
		byNum:  make(map[uint64]struct{}),
	}
}

// AddBlock registers a canonical block. The highest added block becomes latest.
func (s *Source) AddBlock(number uint64, hash common.Hash) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byHash[hash] = number
	s.byNum[number] = struct{}{}
	if number > s.latest {
		s.latest = number
	}

	return s
}

// FailWith makes every subsequent call return err.
func (s *Source) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = err
}

func (s *Source) BlockNumberByTag(_ context.Context, tag rpc.BlockNumber) (uint64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return 0, false, s.err
	}
	if len(s.byNum) == 0 {
		return 0, false, nil
	}

	switch tag {
	case rpc.EarliestBlockNumber:
		return 0, s.has(0), nil
	case rpc.LatestBlockNumber, rpc.PendingBlockNumber, rpc.SafeBlockNumber, rpc.FinalizedBlockNumber:
		return s.latest, true, nil
	default:
		number := uint64(tag.Int64())
		return number, s.has(number), nil
	}
}

func (s *Source) BlockNumberByHash(_ context.Context, hash common.Hash) (uint64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return 0, false, s.err
	}

	number, ok := s.byHash[hash]
	return number, ok, nil
}

func (s *Source) has(number uint64) bool {
	_, ok := s.byNum[number]
	return ok
}
