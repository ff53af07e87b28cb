package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/flightbrief/pirep-etl-service/internal/adapter/avwx"
	"github.com/flightbrief/pirep-etl-service/internal/adapter/httpadapter"
	"github.com/flightbrief/pirep-etl-service/internal/config"
	"github.com/flightbrief/pirep-etl-service/internal/domain"
	"github.com/flightbrief/pirep-etl-service/internal/observability"
	"github.com/flightbrief/pirep-etl-service/internal/pipeline"
	"github.com/flightbrief/pirep-etl-service/internal/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	tables, err := config.LoadTables(cfg.TablesPath)
	if err != nil {
		logger.Error("failed to load tables", "error", err)
		os.Exit(1)
	}

	// Initialize station directory (feature-flagged via AVWX_ENABLED).
	var stations domain.StationDirectory
	if cfg.AVWXEnabled {
		client := avwx.NewClient(cfg.AVWXBaseURL, cfg.AVWXTimeout, logger, metrics)
		stations = avwx.NewCachedDirectory(client, cfg.AVWXCacheSize, metrics)
		metrics.StationEnabled.Set(1)
		logger.Info("station enrichment enabled", "base_url", cfg.AVWXBaseURL, "cache_size", cfg.AVWXCacheSize)
	} else {
		logger.Info("station enrichment disabled")
	}

	v := validator.New(tables.Schema)
	transformer := pipeline.NewTransformer(tables, stations, logger)
	p := pipeline.New(v, transformer, logger, metrics, cfg.MaxBatchRecords)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", "processed_records", p.Processed())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
