package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/pkg/api/docs"
	"github.com/goran-ethernal/ShadowLogs/pkg/config"
)

// Ensure docs are initialized
var _ = docs.SwaggerInfo

// Server serves shadow_getLogs over JSON-RPC/HTTP together with the health and docs endpoints.
type Server struct {
	config    config.ServerConfig
	rpcServer *rpc.Server
	handler   http.Handler
	server    *http.Server
	log       *logger.Logger

	mu   sync.Mutex
	addr net.Addr
}

// NewServer creates a new API server.
func NewServer(cfg config.ServerConfig, api *ShadowAPI, store HealthChecker, log *logger.Logger) (*Server, error) {
	rpcServer := rpc.NewServer()
	if err := rpcServer.RegisterName(Namespace, api); err != nil {
		return nil, fmt.Errorf("failed to register %s API: %w", Namespace, err)
	}

	handler := NewHandler(store, log)

	router := mux.NewRouter()
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
	)).Methods(http.MethodGet)
	router.PathPrefix(cfg.PathPrefix).Handler(rpcServer).Methods(http.MethodPost)

	var h http.Handler = router
	h = RecoveryMiddleware(log)(h)
	h = LoggingMiddleware(log)(h)

	if cfg.CORS.Enabled {
		h = CORSMiddleware(cfg.CORS.AllowedOrigins)(h)
	}

	return &Server{
		config:    cfg,
		rpcServer: rpcServer,
		handler:   h,
		log:       log,
	}, nil
}

// Handler returns the full HTTP handler including middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start binds the listen address and serves requests in the background.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.config.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.ListenAddress, err)
	}

	s.mu.Lock()
	s.addr = listener.Addr()
	s.server = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.config.ReadTimeout.Duration,
		WriteTimeout: s.config.WriteTimeout.Duration,
		IdleTimeout:  s.config.IdleTimeout.Duration,
	}
	server := s.server
	s.mu.Unlock()

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorf("API server error: %v", err)
		}
	}()

	s.log.Infof("JSON-RPC server listening on %s%s", listener.Addr(), s.config.PathPrefix)

	return nil
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.mu.Unlock()

	s.rpcServer.Stop()

	if server == nil {
		return nil
	}

	s.log.Info("Shutting down API server...")
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("API server shutdown error: %w", err)
	}

	s.log.Info("API server stopped")
	return nil
}
