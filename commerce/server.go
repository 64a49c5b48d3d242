package commerce

import (
	"context"
	"fmt"
	"net"
	"os"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// RegisterFunc registers gRPC services on a server.
type RegisterFunc func(*grpc.Server)

// ServerConfig configures a gRPC server.
type ServerConfig struct {
	Domain      string
	DefaultPort string
}

// ResolvePort reads PORT from the environment, falling back to cfg.DefaultPort.
func ResolvePort(cfg ServerConfig) string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return cfg.DefaultPort
}

// NewServer builds a gRPC server with the registered services and a health
// service reporting SERVING.
func NewServer(register RegisterFunc, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	s := grpc.NewServer(opts...)
	register(s)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	return s, healthServer
}

// RunServer starts a gRPC server with health checks.
//
// Blocks until the server exits or ctx is cancelled, in which case the
// server is stopped gracefully.
func RunServer(ctx context.Context, cfg ServerConfig, logger *zap.Logger, register RegisterFunc) error {
	port := ResolvePort(cfg)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}
	return Serve(ctx, lis, cfg.Domain, logger, register)
}

// Serve runs a gRPC server on an existing listener.
func Serve(ctx context.Context, lis net.Listener, domain string, logger *zap.Logger, register RegisterFunc) error {
	s, healthServer := NewServer(register)

	stopped := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			healthServer.Shutdown()
			s.GracefulStop()
		case <-stopped:
		}
	}()
	defer close(stopped)

	logger.Info("grpc server started",
		zap.String("domain", domain),
		zap.String("addr", lis.Addr().String()),
	)

	if err := s.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}
