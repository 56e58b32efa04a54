package chain

import (
	"fmt"

	"github.com/goran-ethernal/ShadowLogs/internal/common"
)

// BlockNotFoundError is returned when the chain has no block for an identifier.
type BlockNotFoundError struct {
	Identifier string
	ByHash     bool
}

func (e *BlockNotFoundError) Error() string {
	if e.ByHash {
		return fmt.Sprintf("no block found for block hash: %s", e.Identifier)
	}
	return fmt.Sprintf("no block found for block number or tag: %s", e.Identifier)
}

// ErrorCode returns the JSON-RPC error code.
func (e *BlockNotFoundError) ErrorCode() int { return common.ErrCodeDefault }

// MalformedIdentifierError is returned when a block identifier is neither a hash, a tag nor a number.
type MalformedIdentifierError struct {
	Identifier string
	Err        error
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed block identifier %q: %v", e.Identifier, e.Err)
}

func (e *MalformedIdentifierError) Unwrap() error { return e.Err }

// ErrorCode returns the JSON-RPC error code.
func (e *MalformedIdentifierError) ErrorCode() int { return common.ErrCodeDefault }

// ResolverUnavailableError is returned when the chain data source call itself fails.
type ResolverUnavailableError struct {
	Identifier string
	Err        error
}

func (e *ResolverUnavailableError) Error() string {
	return fmt.Sprintf("failed to resolve block %s: %v", e.Identifier, e.Err)
}

func (e *ResolverUnavailableError) Unwrap() error { return e.Err }

// ErrorCode returns the JSON-RPC error code.
func (e *ResolverUnavailableError) ErrorCode() int { return common.ErrCodeInternal }
