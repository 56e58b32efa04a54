package rpc

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

type codedRPCError struct {
	code int
}

func (e *codedRPCError) Error() string  { return fmt.Sprintf("rpc error %d", e.code) }
func (e *codedRPCError) ErrorCode() int { return e.code }

func TestErrorType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "canceled", err: fmt.Errorf("wrapped: %w", context.Canceled), expected: "canceled"},
		{name: "deadline", err: context.DeadlineExceeded, expected: "timeout"},
		{name: "http status", err: rpc.HTTPError{StatusCode: 502, Status: "502 Bad Gateway"}, expected: "http_502"},
		{name: "json-rpc error", err: fmt.Errorf("call: %w", &codedRPCError{code: -32000}), expected: "rpc_-32000"},
		{name: "connection refused", err: syscall.ECONNREFUSED, expected: "transient"},
		{name: "unknown", err: errors.New("boom"), expected: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, ErrorType(tt.err))
		})
	}
}
