package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alfagnish/users-gateway/internal/config"
	grpcserver "github.com/alfagnish/users-gateway/internal/grpc"
	"github.com/alfagnish/users-gateway/internal/logging"
	"github.com/alfagnish/users-gateway/internal/metrics"
	"github.com/alfagnish/users-gateway/internal/server"
	"github.com/alfagnish/users-gateway/internal/users"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	// 1. Load configuration from .env and environment variables.
	cfg := config.Load()

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("config",
		zap.String("listen", cfg.ListenAddr),
		zap.String("grpc", cfg.GRPCAddr),
		zap.Bool("debug", cfg.Debug),
	)

	// 2. The table is fixed for the lifetime of the process.
	table := users.Default()

	// 3. Set up the chi router with all handlers.
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.New(cfg, table, logger, metrics.New()),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// 4. Optional gRPC surface over the same table.
	var gs *grpc.Server
	if cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			logger.Fatal("grpc listen failed", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
		}
		gs = grpcserver.NewServer(table, logger)
		go func() {
			logger.Info("grpc listening", zap.String("addr", cfg.GRPCAddr))
			if err := gs.Serve(lis); err != nil {
				logger.Error("grpc server error", zap.Error(err))
			}
		}()
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("gateway listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if gs != nil {
		gs.GracefulStop()
	}
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown error", zap.Error(err))
	}

	logger.Info("gateway stopped")
}
