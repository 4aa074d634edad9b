package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	httpadapter "github.com/couchcryptid/surf-forecast-engine/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/surf-forecast-engine/internal/adapter/kafka"
	"github.com/couchcryptid/surf-forecast-engine/internal/config"
	"github.com/couchcryptid/surf-forecast-engine/internal/domain"
	"github.com/couchcryptid/surf-forecast-engine/internal/evalcache"
	"github.com/couchcryptid/surf-forecast-engine/internal/observability"
	"github.com/couchcryptid/surf-forecast-engine/internal/pipeline"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// Evaluation cache is feature-flagged via EVAL_CACHE_ENABLED.
	var evaluator pipeline.Evaluator = domain.NewEngine(cfg.SpotLocation, cfg.ForecastHorizon)
	if cfg.EvalCacheEnabled {
		evaluator = evalcache.New(evaluator, cfg.EvalCacheSize, nil, metrics)
		metrics.EvalCacheEnabled.Set(1)
		logger.Info("evaluation cache enabled", "cache_size", cfg.EvalCacheSize)
	} else {
		logger.Info("evaluation cache disabled")
	}

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(evaluator, logger, metrics)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, evaluator, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("surf engine configured",
		"source_topic", cfg.KafkaSourceTopic,
		"sink_topic", cfg.KafkaSinkTopic,
		"spot_timezone", cfg.SpotLocation.String(),
		"forecast_horizon", cfg.ForecastHorizon,
	)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start evaluation pipeline.
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
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
