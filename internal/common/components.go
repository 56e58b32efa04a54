package common

const (
	ComponentRPCServer     = "rpc-server"
	ComponentBlockResolver = "block-resolver"
	ComponentLogQuery      = "log-query"
	ComponentLogStore      = "log-store"
	ComponentChainClient   = "chain-client"
	ComponentMetrics       = "metrics"
)

var AllComponents = map[string]struct{}{
	ComponentRPCServer:     {},
	ComponentBlockResolver: {},
	ComponentLogQuery:      {},
	ComponentLogStore:      {},
	ComponentChainClient:   {},
	ComponentMetrics:       {},
}
