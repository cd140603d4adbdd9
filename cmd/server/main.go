package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/flowpaylabs/paymethod-service/internal/config"
	"github.com/flowpaylabs/paymethod-service/internal/infrastructure/database"
	grpcServer "github.com/flowpaylabs/paymethod-service/internal/infrastructure/grpc"
	httpServer "github.com/flowpaylabs/paymethod-service/internal/infrastructure/http"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting payment method service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("version", cfg.Service.Version))

	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, logger); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	repos := database.NewRepositories(db, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	grpcSrv := grpcServer.NewServer(cfg, logger)
	httpSrv := httpServer.NewServer(cfg, logger, repos)

	go func() {
		if err := grpcSrv.Start(); err != nil {
			logger.Fatal("Failed to start gRPC server", zap.Error(err))
		}
	}()

	go func() {
		if err := httpSrv.Start(); err != nil {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down payment method service")

	if err := grpcSrv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown gRPC server", zap.Error(err))
	}

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}
