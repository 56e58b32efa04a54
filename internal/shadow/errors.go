package shadow

import (
	"fmt"

	"github.com/goran-ethernal/ShadowLogs/internal/common"
)

// QueryError is returned when the log store query for a filter fails or times out.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to query shadow logs: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// ErrorCode returns the JSON-RPC error code.
func (e *QueryError) ErrorCode() int { return common.ErrCodeInternal }

// ResultLimitExceededError is returned when a request matches more logs than allowed.
type ResultLimitExceededError struct {
	Limit int
}

func (e *ResultLimitExceededError) Error() string {
	return fmt.Sprintf("query returned more than %d results", e.Limit)
}

// ErrorCode returns the JSON-RPC error code.
func (e *ResultLimitExceededError) ErrorCode() int { return common.ErrCodeLimitExceeded }
