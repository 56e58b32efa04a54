package shadow

import (
	"context"
	"time"

	"github.com/goran-ethernal/ShadowLogs/internal/filter"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/internal/metrics"
	"github.com/goran-ethernal/ShadowLogs/internal/query"
	"github.com/goran-ethernal/ShadowLogs/internal/store"
	"github.com/goran-ethernal/ShadowLogs/pkg/config"
	"golang.org/x/sync/errgroup"
)

// Validator resolves a raw filter into a validated one.
type Validator interface {
	Validate(ctx context.Context, raw filter.RawFilter) (*filter.Validated, error)
}

// Service executes shadow_getLogs requests.
type Service struct {
	validator Validator
	store     store.LogStore
	cfg       config.QueryConfig
	log       *logger.Logger
}

// NewService creates a Service reading from logStore.
func NewService(validator Validator, logStore store.LogStore, cfg config.QueryConfig, log *logger.Logger) *Service {
	return &Service{
		validator: validator,
		store:     logStore,
		cfg:       cfg,
		log:       log,
	}
}

// GetLogs returns the logs matching any of the filters, grouped by filter in request order
// and ordered by block number and block log index within a filter.
// All filters are validated before the store is queried. The first failing filter fails
// the whole request and no partial result is returned.
func (s *Service) GetLogs(ctx context.Context, filters []filter.RawFilter) ([]LogEntry, error) {
	validated := make([]*filter.Validated, len(filters))
	for i, raw := range filters {
		v, err := s.validator.Validate(ctx, raw)
		if err != nil {
			metrics.FilterProcessedInc("rejected")
			s.log.Debugf("filter %d rejected: %v", i, err)
			return nil, &filter.IndexedError{Index: i, Err: err}
		}

		metrics.FilterBlockSpanObserve(v.FromBlock, v.ToBlock)
		validated[i] = v
	}

	results := make([][]*store.LogRecord, len(validated))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.cfg.MaxConcurrency))

	for i, v := range validated {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			records, err := s.execute(gctx, v)
			if err != nil {
				metrics.FilterProcessedInc("failed")
				return &filter.IndexedError{Index: i, Err: err}
			}

			metrics.FilterProcessedInc("succeeded")
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// the surrounding request may be cancelled between the last query and here
	if err := ctx.Err(); err != nil {
		return nil, &QueryError{Err: err}
	}

	total := 0
	for _, records := range results {
		total += len(records)
	}
	if s.cfg.MaxResults > 0 && total > s.cfg.MaxResults {
		return nil, &ResultLimitExceededError{Limit: s.cfg.MaxResults}
	}

	entries := make([]LogEntry, 0, total)
	for _, records := range results {
		for _, r := range records {
			entries = append(entries, EncodeLogRecord(r))
		}
	}

	metrics.LogsReturnedAdd(len(entries))

	return entries, nil
}

func (s *Service) execute(ctx context.Context, v *filter.Validated) ([]*store.LogRecord, error) {
	if s.cfg.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout.Duration)
		defer cancel()
	}

	predicate, err := query.Build(v)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	start := time.Now()
	records, err := s.store.Query(ctx, predicate)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	if s.cfg.MaxResults > 0 && len(records) > s.cfg.MaxResults {
		return nil, &ResultLimitExceededError{Limit: s.cfg.MaxResults}
	}

	s.log.Debugf("filter blocks %d-%d matched %d logs in %v", v.FromBlock, v.ToBlock, len(records), time.Since(start))

	return records, nil
}
