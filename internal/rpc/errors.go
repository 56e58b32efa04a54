package rpc

import (
	"context"
	"errors"
	"strconv"

	"github.com/ethereum/go-ethereum/rpc"
)

// ErrorType classifies an RPC failure for the error metrics.
func ErrorType(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return "http_" + strconv.Itoa(httpErr.StatusCode)
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return "rpc_" + strconv.Itoa(rpcErr.ErrorCode())
	}

	if retryableError(err) {
		return "transient"
	}

	return "other"
}
