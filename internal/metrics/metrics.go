package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database metrics
	dbQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowlogs_db_queries_total",
			Help: "Total number of log store queries",
		},
		[]string{"db", "operation"},
	)

	dbQueryTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shadowlogs_db_query_duration_seconds",
			Help:    "Duration of log store queries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"db", "operation"},
	)

	dbErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowlogs_db_errors_total",
			Help: "Total number of log store errors",
		},
		[]string{"db", "error_type"},
	)

	// Block resolution metrics
	blockResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowlogs_block_resolutions_total",
			Help: "Total number of block identifier resolutions by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// Query metrics
	filtersProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowlogs_filters_processed_total",
			Help: "Total number of filter objects processed by outcome",
		},
		[]string{"outcome"},
	)

	logsReturned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shadowlogs_logs_returned_total",
			Help: "Total number of shadow logs returned to clients",
		},
	)

	filterBlockSpan = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shadowlogs_filter_block_span",
			Help:    "Number of blocks covered by a validated filter",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), //nolint:mnd
		},
	)

	// API metrics
	apiDurations = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shadowlogs_api_request_duration_seconds",
			Help:    "Duration of JSON-RPC API requests",
			Buckets: []float64{0.0001, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method"},
	)

	apiRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowlogs_api_requests_total",
			Help: "Total number of JSON-RPC API requests",
		},
		[]string{"method"},
	)

	apiFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowlogs_api_failures_total",
			Help: "Total number of failed JSON-RPC API requests",
		},
		[]string{"method"},
	)

	apiInflight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shadowlogs_api_inflight_requests",
			Help: "Number of in-flight JSON-RPC API requests",
		},
		[]string{"method"},
	)

	// System metrics
	Uptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shadowlogs_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)

	ComponentHealth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shadowlogs_component_health",
			Help: "Component health status (1=healthy, 0=unhealthy)",
		},
		[]string{"component"},
	)

	Goroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shadowlogs_goroutines",
			Help: "Number of active goroutines",
		},
	)

	MemoryUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shadowlogs_memory_usage_bytes",
			Help: "Memory usage statistics",
		},
		[]string{"type"},
	)

	startTime = time.Now()
)

func DBQueryInc(db string, operation string) {
	dbQueries.WithLabelValues(db, operation).Inc()
}

func DBQueryDuration(db string, operation string, duration time.Duration) {
	dbQueryTime.WithLabelValues(db, operation).Observe(duration.Seconds())
}

func DBErrorsInc(db string, errorType string) {
	dbErrors.WithLabelValues(db, errorType).Inc()
}

// BlockResolutionInc counts a block identifier resolution.
// kind is one of "hash", "tag", "number"; outcome is "found", "not_found", "malformed" or "error".
func BlockResolutionInc(kind, outcome string) {
	blockResolutions.WithLabelValues(kind, outcome).Inc()
}

func FilterProcessedInc(outcome string) {
	filtersProcessed.WithLabelValues(outcome).Inc()
}

func LogsReturnedAdd(count int) {
	logsReturned.Add(float64(count))
}

// FilterBlockSpanObserve records the width of a resolved block range.
// Inverted ranges are recorded as zero.
func FilterBlockSpanObserve(fromBlock, toBlock uint64) {
	span := uint64(0)
	if toBlock >= fromBlock {
		span = toBlock - fromBlock + 1
	}
	filterBlockSpan.Observe(float64(span))
}

// InstrumentAPICall instruments a JSON-RPC method call.
// It should be used as
//
//	defer metrics.InstrumentAPICall("shadow_getLogs", &err)()
func InstrumentAPICall(method string, err *error) func() {
	timer := prometheus.NewTimer(apiDurations.WithLabelValues(method))
	inflight := apiInflight.WithLabelValues(method)
	inflight.Inc()

	return func() {
		timer.ObserveDuration()
		apiRequests.WithLabelValues(method).Inc()
		if err != nil && *err != nil {
			apiFailures.WithLabelValues(method).Inc()
		}
		inflight.Dec()
	}
}

func ComponentHealthSet(component string, healthy bool) {
	boolAsFloat := float64(1)
	if !healthy {
		boolAsFloat = 0
	}

	ComponentHealth.WithLabelValues(component).Set(boolAsFloat)
}

// UpdateSystemMetrics updates runtime system metrics.
// This should be called periodically (e.g., every 15 seconds).
func UpdateSystemMetrics() {
	Uptime.Set(time.Since(startTime).Seconds())

	Goroutines.Set(float64(runtime.NumGoroutine()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	MemoryUsage.WithLabelValues("alloc").Set(float64(m.Alloc))
	MemoryUsage.WithLabelValues("total_alloc").Set(float64(m.TotalAlloc))
	MemoryUsage.WithLabelValues("sys").Set(float64(m.Sys))
	MemoryUsage.WithLabelValues("heap_inuse").Set(float64(m.HeapInuse))
}
