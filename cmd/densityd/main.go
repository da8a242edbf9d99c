package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/deccanpulse/footfall-density-service/internal/adapter/http"
	kafkaadapter "github.com/deccanpulse/footfall-density-service/internal/adapter/kafka"
	"github.com/deccanpulse/footfall-density-service/internal/config"
	"github.com/deccanpulse/footfall-density-service/internal/generator"
	"github.com/deccanpulse/footfall-density-service/internal/observability"
	"github.com/deccanpulse/footfall-density-service/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	gen := generator.New(generator.Options{
		Seed:         cfg.Seed,
		WindowYears:  cfg.WindowYears,
		ClearBias:    cfg.ClearBias,
		FestivalRate: cfg.FestivalRate,
	})

	// Sink loading is feature-flagged via KAFKA_SINK_ENABLED.
	var loader pipeline.BatchLoader
	var writer *kafkaadapter.Writer
	if cfg.KafkaSinkEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		loader = writer
		logger.Info("kafka sink enabled", "topic", cfg.KafkaSinkTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka sink disabled")
	}

	p := pipeline.New(gen, loader, logger, metrics, cfg.CorpusSize, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Build, label, and load the corpus.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
