package api

import (
	"context"

	"github.com/goran-ethernal/ShadowLogs/internal/filter"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/internal/metrics"
	"github.com/goran-ethernal/ShadowLogs/internal/shadow"
)

const (
	// Namespace is the JSON-RPC namespace the API is registered under.
	Namespace = "shadow"

	methodGetLogs = Namespace + "_getLogs"
)

// LogSearcher runs log searches for a list of filter objects.
type LogSearcher interface {
	GetLogs(ctx context.Context, filters []filter.RawFilter) ([]shadow.LogEntry, error)
}

// ShadowAPI is the shadow JSON-RPC namespace.
type ShadowAPI struct {
	searcher LogSearcher
	log      *logger.Logger
}

// NewShadowAPI creates the shadow namespace service.
func NewShadowAPI(searcher LogSearcher, log *logger.Logger) *ShadowAPI {
	return &ShadowAPI{
		searcher: searcher,
		log:      log,
	}
}

// GetLogs returns the shadow logs matching the filter objects of the request.
// @Summary shadow_getLogs
// @Description JSON-RPC 2.0 call. The only positional parameter is the request object; its
// @Description params hold the filter objects. Logs are returned grouped by filter object in
// @Description request order, ascending by block number and log index within each group.
// @Tags JSON-RPC
// @Accept json
// @Produce json
// @Param request body GetLogsRequest true "Request object passed as params[0]"
// @Success 200 {object} GetLogsResponse "JSON-RPC result"
// @Router / [post]
func (api *ShadowAPI) GetLogs(ctx context.Context, request GetLogsRequest) (_ *GetLogsResponse, err error) {
	defer metrics.InstrumentAPICall(methodGetLogs, &err)()

	api.log.Debugf("%s id=%q filters=%d", methodGetLogs, request.ID, len(request.Params))

	logs, err := api.searcher.GetLogs(ctx, request.Params)
	if err != nil {
		api.log.Debugf("%s id=%q failed: %v", methodGetLogs, request.ID, err)
		return nil, err
	}

	return &GetLogsResponse{
		ID:      request.ID,
		JSONRPC: request.JSONRPC,
		Result:  logs,
	}, nil
}
