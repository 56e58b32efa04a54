package api

import (
	"time"

	"github.com/goran-ethernal/ShadowLogs/internal/filter"
	"github.com/goran-ethernal/ShadowLogs/internal/shadow"
)

// GetLogsRequest is the single positional parameter of shadow_getLogs.
type GetLogsRequest struct {
	ID      string             `json:"id"`
	JSONRPC string             `json:"jsonRpc"`
	Method  string             `json:"method"`
	Params  []filter.RawFilter `json:"params"`
}

// GetLogsResponse is the result of shadow_getLogs. ID and JSONRPC echo the request.
type GetLogsResponse struct {
	ID      string            `json:"id"`
	JSONRPC string            `json:"jsonRpc"`
	Result  []shadow.LogEntry `json:"result"`
}

// ErrorResponse represents an error response of the plain HTTP endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Store     string    `json:"store"`
	Error     string    `json:"error,omitempty"`
}
