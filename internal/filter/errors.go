package filter

import (
	"errors"
	"fmt"

	"github.com/goran-ethernal/ShadowLogs/internal/common"
)

var (
	// ErrAmbiguousRange is returned when blockHash is combined with fromBlock or toBlock.
	ErrAmbiguousRange = &codedError{
		msg:  "parameters fromBlock and toBlock cannot be used if blockHash parameter is present",
		code: common.ErrCodeAmbiguousRange,
	}

	// ErrTooManyTopics is returned when more than four topics are supplied.
	ErrTooManyTopics = &codedError{
		msg:  "only up to four topics are allowed",
		code: common.ErrCodeTooManyTopics,
	}
)

type codedError struct {
	msg  string
	code int
}

func (e *codedError) Error() string  { return e.msg }
func (e *codedError) ErrorCode() int { return e.code }

// MalformedFieldError is returned when an address or topic is not valid hex.
type MalformedFieldError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *MalformedFieldError) Unwrap() error { return e.Err }

// ErrorCode returns the JSON-RPC error code.
func (e *MalformedFieldError) ErrorCode() int { return common.ErrCodeDefault }

// BlockRangeTooLargeError is returned when a resolved range exceeds the configured limit.
type BlockRangeTooLargeError struct {
	FromBlock uint64
	ToBlock   uint64
	Limit     uint64
}

func (e *BlockRangeTooLargeError) Error() string {
	return fmt.Sprintf("block range %d-%d exceeds the maximum of %d blocks", e.FromBlock, e.ToBlock, e.Limit)
}

// ErrorCode returns the JSON-RPC error code.
func (e *BlockRangeTooLargeError) ErrorCode() int { return common.ErrCodeLimitExceeded }

// IndexedError ties an error to the position of the filter object that caused it.
type IndexedError struct {
	Index int
	Err   error
}

func (e *IndexedError) Error() string {
	return fmt.Sprintf("filter[%d]: %v", e.Index, e.Err)
}

func (e *IndexedError) Unwrap() error { return e.Err }

// ErrorCode returns the code of the wrapped error, or the internal error code.
func (e *IndexedError) ErrorCode() int {
	var coded interface{ ErrorCode() int }
	if errors.As(e.Err, &coded) {
		return coded.ErrorCode()
	}
	return common.ErrCodeInternal
}
