package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/goran-ethernal/ShadowLogs/internal/common"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/internal/metrics"
)

const healthCheckTimeout = 5 * time.Second

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handler serves the plain HTTP endpoints next to JSON-RPC.
type Handler struct {
	store HealthChecker
	log   *logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(store HealthChecker, log *logger.Logger) *Handler {
	return &Handler{
		store: store,
		log:   log,
	}
}

// Health returns the health status of the server and its log store.
// @Summary Health check
// @Description Check that the server is up and the log store is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} HealthResponse "Log store is unreachable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Store:     "ok",
	}
	status := http.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warnf("log store health check failed: %v", err)

		response.Status = "unhealthy"
		response.Store = "unreachable"
		response.Error = err.Error()
		status = http.StatusServiceUnavailable
	}

	metrics.ComponentHealthSet(common.ComponentLogStore, status == http.StatusOK)
	respondJSON(w, status, response)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// encode first so a failure can still change the status
	encoded, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(encoded)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
