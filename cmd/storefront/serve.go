package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storefront/commerce"
	"storefront/config"
	"storefront/storefront"
	"storefront/transport/grpcapi"
	"storefront/transport/httpapi"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		logEvents  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC and HTTP servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, configPath, logEvents)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().BoolVar(&logEvents, "log-events", false, "Print every cart and order event to stdout")
	return cmd
}

func serve(ctx context.Context, configPath string, logEvents bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := commerce.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	tp, err := commerce.NewTracerProvider(cfg.Tracing, os.Stdout)
	if err != nil {
		return fmt.Errorf("create tracer: %w", err)
	}
	defer func() {
		if err := commerce.ShutdownTracer(context.Background(), tp); err != nil {
			logger.Warn("tracer shutdown", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc, err := storefront.NewFromConfig(cfg, logger, storefront.NewMetrics(reg))
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	if logEvents {
		svc.SetEventLog(os.Stdout)
	}

	var httpLis net.Listener
	if cfg.Server.HTTPPort != "" {
		httpLis, err = net.Listen("tcp", ":"+cfg.Server.HTTPPort)
		if err != nil {
			return fmt.Errorf("failed to listen on port %s: %w", cfg.Server.HTTPPort, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return commerce.RunServer(gctx, commerce.ServerConfig{
			Domain:      "storefront",
			DefaultPort: cfg.Server.GRPCPort,
		}, logger, grpcapi.Register(svc, logger))
	})
	if httpLis != nil {
		router := httpapi.NewRouter(svc, logger, reg)
		g.Go(func() error {
			return httpapi.Serve(gctx, httpLis, router, logger)
		})
	}

	logger.Info("storefront ready", zap.String("version", Version))
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("storefront stopped")
	return nil
}
