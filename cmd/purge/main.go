// Command purge removes cache entries older than the configured retention
// period. It is intended to be invoked by an external cron job, not as an
// in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/wordpeek/wordpeek-backend/internal/app"
	"github.com/wordpeek/wordpeek-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Cache.Backend == config.CacheBackendMemory {
		logger.Error("memory cache is process-local, nothing to purge")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := app.NewCacheStore(ctx, cfg.Cache, logger)
	if err != nil {
		logger.Error("open cache store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	threshold := time.Now().AddDate(0, 0, -cfg.Cache.RetentionDays)

	removed, err := store.Purge(ctx, threshold)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int("removed", removed),
		slog.String("backend", cfg.Cache.Backend),
		slog.Time("threshold", threshold),
	)
}
