package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goran-ethernal/ShadowLogs/internal/chain"
	"github.com/goran-ethernal/ShadowLogs/internal/common"
	"github.com/goran-ethernal/ShadowLogs/internal/config"
	"github.com/goran-ethernal/ShadowLogs/internal/filter"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
	"github.com/goran-ethernal/ShadowLogs/internal/metrics"
	"github.com/goran-ethernal/ShadowLogs/internal/rpc"
	"github.com/goran-ethernal/ShadowLogs/internal/shadow"
	"github.com/goran-ethernal/ShadowLogs/pkg/api"
	"github.com/spf13/cobra"
)

const (
	version = "1.0.0"
	banner  = `
╔═══════════════════════════════════════════╗
║            ShadowLogs v%s              ║
║      shadow_getLogs JSON-RPC server       ║
╚═══════════════════════════════════════════╝
`

	shutdownTimeout = 10 * time.Second
)

var (
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shadow-logs",
	Short: "ShadowLogs - shadow log search server",
	Long: `ShadowLogs serves shadow_getLogs, an eth_getLogs style search over logs
produced by replaying canonical transactions against shadow bytecode.
Block hashes and tags are resolved against a canonical Ethereum node.`,
	Version: version,
	RunE:    runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to configuration file")
	rootCmd.AddCommand(migrateCmd, schemaCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Printf(banner, version)

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\nShutting down gracefully...")
		cancel()
	}()

	log := logger.NewComponentLoggerFromConfig(common.ComponentRPCServer, cfg.Logging)

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		metricsServer := metrics.NewServer(cfg.Metrics,
			logger.NewComponentLoggerFromConfig(common.ComponentMetrics, cfg.Logging))
		if err := metricsServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer stopCancel()
			if err := metricsServer.Stop(stopCtx); err != nil {
				log.Warnf("Failed to stop metrics server: %v", err)
			}
		}()
	}

	logStore, err := openLogStore(cfg.DB, logger.NewComponentLoggerFromConfig(common.ComponentLogStore, cfg.Logging))
	if err != nil {
		return err
	}
	defer logStore.Close()

	if err := logStore.Ping(ctx); err != nil {
		return fmt.Errorf("log store is unreachable: %w", err)
	}
	metrics.ComponentHealthSet(common.ComponentLogStore, true)

	log.Info("Connecting to Ethereum node...")
	ethClient, err := rpc.NewClient(ctx, cfg.Chain,
		logger.NewComponentLoggerFromConfig(common.ComponentChainClient, cfg.Logging))
	if err != nil {
		return fmt.Errorf("failed to create RPC client: %w", err)
	}
	defer ethClient.Close()
	log.Infof("Connected to Ethereum node: %s", cfg.Chain.RPCURL)

	resolver := chain.NewResolver(ethClient,
		logger.NewComponentLoggerFromConfig(common.ComponentBlockResolver, cfg.Logging))
	validator := filter.NewValidator(resolver, filter.WithMaxBlockRange(cfg.Query.MaxBlockRange))
	service := shadow.NewService(validator, logStore, cfg.Query,
		logger.NewComponentLoggerFromConfig(common.ComponentLogQuery, cfg.Logging))

	server, err := api.NewServer(cfg.Server, api.NewShadowAPI(service, log), logStore, log)
	if err != nil {
		return fmt.Errorf("failed to create API server: %w", err)
	}
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stopCancel()

	return server.Stop(stopCtx)
}
