package common

// JSON-RPC error codes returned by shadow_getLogs.
const (
	ErrCodeDefault        = -1
	ErrCodeAmbiguousRange = -32001
	ErrCodeTooManyTopics  = 32002
	ErrCodeLimitExceeded  = -32005
	ErrCodeInternal       = -32603
)
