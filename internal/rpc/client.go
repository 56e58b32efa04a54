package rpc

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goran-ethernal/ShadowLogs/internal/chain"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/pkg/config"
)

// Compile-time check to ensure Client implements chain.Source interface.
var _ chain.Source = (*Client)(nil)

const (
	methodBlockByNumber = "eth_getBlockByNumber"
	methodBlockByHash   = "eth_getBlockByHash"
)

// Client reads canonical block headers from an Ethereum node.
// It implements the chain.Source interface.
type Client struct {
	eth   *ethclient.Client
	retry *config.RetryConfig
	log   *logger.Logger
}

// NewClient creates a new RPC client connected to the configured endpoint.
func NewClient(ctx context.Context, cfg config.ChainConfig, log *logger.Logger) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, err
	}

	return NewClientFromRPC(rpcClient, cfg.Retry, log), nil
}

// NewClientFromRPC wraps an already connected rpc.Client.
func NewClientFromRPC(rpcClient *rpc.Client, retry *config.RetryConfig, log *logger.Logger) *Client {
	return &Client{
		eth:   ethclient.NewClient(rpcClient),
		retry: retry,
		log:   log,
	}
}

// Close closes the RPC client connection.
func (c *Client) Close() {
	c.eth.Close()
}

// BlockNumberByTag returns the number of the block the tag points to.
// Explicit numbers are looked up too, so a number above the chain head reports not found.
func (c *Client) BlockNumberByTag(ctx context.Context, tag rpc.BlockNumber) (uint64, bool, error) {
	var number *big.Int
	if tag != rpc.LatestBlockNumber {
		number = big.NewInt(tag.Int64())
	}

	return c.blockNumber(ctx, methodBlockByNumber, func() (*types.Header, error) {
		return c.eth.HeaderByNumber(ctx, number)
	})
}

// BlockNumberByHash returns the number of the block with the given hash.
func (c *Client) BlockNumberByHash(ctx context.Context, hash common.Hash) (uint64, bool, error) {
	return c.blockNumber(ctx, methodBlockByHash, func() (*types.Header, error) {
		return c.eth.HeaderByHash(ctx, hash)
	})
}

func (c *Client) blockNumber(ctx context.Context,
	method string, fetch func() (*types.Header, error)) (uint64, bool, error) {
	RPCMethodInc(method)
	start := time.Now()
	defer func() { RPCMethodDuration(method, time.Since(start)) }()

	var header *types.Header
	err := retryWithBackoff(ctx, c.retry, c.log, method, func() error {
		h, err := fetch()
		if errors.Is(err, ethereum.NotFound) {
			header = nil
			return nil
		}
		if err != nil {
			return err
		}

		header = h
		return nil
	})
	if err != nil {
		RPCMethodError(method, ErrorType(err))
		return 0, false, err
	}

	if header == nil || header.Number == nil {
		return 0, false, nil
	}

	return header.Number.Uint64(), true, nil
}
