package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	api "todoapi/internal/adapter/http"
	"todoapi/pkg/config"
	"todoapi/pkg/logger"
	"todoapi/pkg/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()

	appLogger, err := logger.New(cfg.ServiceName)

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer appLogger.Sync()

	tel, err := telemetry.NewContainer(telemetry.Config{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Environment:    cfg.Environment,
		MetricsPort:    cfg.MetricsPort,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	}, appLogger)

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer tel.Shutdown(context.Background())

	tel.AppMetrics.StartSystemMetrics(ctx)

	if err := api.StartServer(ctx, cfg, tel.AppMetrics, appLogger); err != nil {
		log.Fatal("Server failed:", err)
	}

	appLogger.Logger.Info("Shutting down gracefully...")
}
