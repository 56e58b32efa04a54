package metrics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestServer_Handler(t *testing.T) {
	t.Parallel()

	LogsReturnedAdd(3)
	BlockResolutionInc("tag", "found")

	srv := NewServer(&config.MetricsConfig{Enabled: true, Path: "/metrics"}, logger.NewNopLogger())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "shadowlogs_logs_returned_total")
	require.Contains(t, rec.Body.String(), `shadowlogs_block_resolutions_total{kind="tag",outcome="found"}`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestServer_StartStop(t *testing.T) {
	t.Parallel()

	cfg := &config.MetricsConfig{Enabled: true, ListenAddress: "127.0.0.1:0", Path: "/metrics"}
	srv := NewServer(cfg, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, srv.Start(ctx))
	require.NotNil(t, srv.Addr())

	resp, err := http.Get(fmt.Sprintf("http://%s/health", srv.Addr()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, "OK", string(body))

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	require.NoError(t, srv.Stop(stopCtx))
}

func TestServer_Disabled(t *testing.T) {
	t.Parallel()

	srv := NewServer(&config.MetricsConfig{Enabled: false}, logger.NewNopLogger())
	require.NoError(t, srv.Start(context.Background()))
	require.Nil(t, srv.Addr())
	require.NoError(t, srv.Stop(context.Background()))
}

func TestInstrumentAPICall(t *testing.T) {
	t.Parallel()

	call := func(fail bool) (err error) {
		defer InstrumentAPICall("test_method", &err)()
		if fail {
			return fmt.Errorf("boom")
		}
		return nil
	}

	require.NoError(t, call(false))
	require.Error(t, call(true))
}

func TestFilterBlockSpanObserve(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		FilterBlockSpanObserve(10, 20)
		FilterBlockSpanObserve(20, 10)
	})
}
