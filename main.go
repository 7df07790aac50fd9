package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/rivervalleyreport/backend/config"
	"github.com/rivervalleyreport/backend/db"
	httpserver "github.com/rivervalleyreport/backend/http"
	"github.com/rivervalleyreport/backend/logging"
	"github.com/rivervalleyreport/backend/observability"
	"github.com/rivervalleyreport/backend/openmeteo"
	"github.com/rivervalleyreport/backend/river"
	"github.com/rivervalleyreport/backend/usgs"
	"github.com/rivervalleyreport/backend/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db connection error", zap.Error(err))
	}
	defer store.Close()

	metrics := observability.NewMetrics()

	go pruneSessions(ctx, store, logger)

	gaugeClient := usgs.NewClient(cfg.USGSBaseURL, cfg.RequestTimeout, logger, metrics)
	rivers := river.NewService(gaugeClient, logger, clockwork.NewRealClock(), metrics, cfg.Lookback(), cfg.ProjectionDays)

	meteoClient := openmeteo.NewClient(cfg.ForecastBaseURL, cfg.AirQualityBaseURL, cfg.RequestTimeout, logger, metrics)
	forecast := weather.NewService(meteoClient, logger, metrics)

	srv := httpserver.New(cfg, rivers, forecast, store, store, logger)
	logger.Info("REST API listening", zap.String("addr", cfg.ListenAddr()))

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// pruneSessions clears expired session rows every hour until shutdown.
func pruneSessions(ctx context.Context, store *db.Store, logger *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PruneSessions(ctx)
			if err != nil {
				logger.Warn("session prune failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("pruned expired sessions", zap.Int64("count", n))
			}
		}
	}
}
