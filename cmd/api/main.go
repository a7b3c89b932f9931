package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"portfolio-chat/config"
	_ "portfolio-chat/docs" // Swagger docs
	"portfolio-chat/internal/chat"
	"portfolio-chat/internal/httpserver"
	"portfolio-chat/internal/metrics"
	"portfolio-chat/internal/middleware"
	"portfolio-chat/pkg/log"
)

// @title       Portfolio Chat API
// @description Session-scoped conversational router for a portfolio RAG chatbot.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Portfolio Chat API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	// 4. Chat backend. On failure the API stays up and answers 503.
	var chatUC chat.UseCase
	backend, err := buildBackend(ctx, cfg, logger, appMetrics)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize chat backend: %v", err)
	} else {
		defer backend.Close()
		chatUC = backend.useCase
		logger.Info(ctx, "Chat backend initialized")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg, appMetrics),
		Gatherer:    registry,
		ChatUseCase: chatUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
