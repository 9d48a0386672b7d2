package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-advisor/internal/analysis"
	"crypto-advisor/internal/logger"
	"crypto-advisor/internal/server"
	"crypto-advisor/internal/trace"
)

func main() {
	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	service := analysis.NewService(
		cfg,
		initializeMarket(ctx, cfg),
		initializeTrends(ctx, cfg),
		initializeAnalyst(ctx, cfg),
		initializeExchanges(ctx, cfg),
	)

	srv := server.New(cfg, service)

	logger.Info(ctx, "Advisor started", "port", cfg.Server.Port, "provider", cfg.LLM.Provider)
	if err := srv.Run(ctx); err != nil {
		logger.ErrorWithErr(ctx, "Server stopped with error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := trace.Shutdown(shutdownCtx); err != nil {
		logger.Warn(shutdownCtx, "Tracer shutdown failed", "error", err)
	}
}
