// Package app wires configuration, providers, cache store, services, and
// the HTTP server into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wordpeek/wordpeek-backend/internal/adapter/cache/memory"
	"github.com/wordpeek/wordpeek-backend/internal/adapter/cache/sqlitecache"
	"github.com/wordpeek/wordpeek-backend/internal/adapter/postgres"
	"github.com/wordpeek/wordpeek-backend/internal/adapter/provider/cambridge"
	"github.com/wordpeek/wordpeek-backend/internal/adapter/provider/gemini"
	"github.com/wordpeek/wordpeek-backend/internal/adapter/provider/merriam"
	"github.com/wordpeek/wordpeek-backend/internal/auth"
	"github.com/wordpeek/wordpeek-backend/internal/config"
	"github.com/wordpeek/wordpeek-backend/internal/service/lookup"
	"github.com/wordpeek/wordpeek-backend/internal/service/translate"
	"github.com/wordpeek/wordpeek-backend/internal/transport/middleware"
	"github.com/wordpeek/wordpeek-backend/internal/transport/rest"
)

// CacheStore is the backend-agnostic view of a cache implementation.
// Purge is exercised by cmd/purge, not by the request path.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Purge(ctx context.Context, olderThan time.Time) (int, error)
	Ping(ctx context.Context) error
	Close() error
}

// Run is the application entry point. It loads configuration, builds the
// cache store and providers, and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting server",
		slog.String("version", BuildVersion()),
		slog.String("cache_backend", cfg.Cache.Backend),
		slog.String("preferred_source", cfg.Lookup.PreferredSource),
	)

	store, err := NewCacheStore(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	cambridgeProv := cambridge.NewProvider(cfg.Lookup.CambridgeBaseURL, logger)

	var merriamProv *merriam.Provider
	if cfg.Lookup.MWAPIKey != "" {
		merriamProv = merriam.NewProvider(
			cfg.Lookup.MerriamBaseURL,
			cfg.Lookup.MerriamAudioBaseURL,
			cfg.Lookup.MWAPIKey,
			logger,
		)
	}

	var geminiProv *gemini.Provider
	if cfg.Lookup.GeminiAPIKey != "" {
		geminiProv, err = gemini.NewProvider(ctx, cfg.Lookup.GeminiAPIKey, cfg.Lookup.GeminiModel, logger)
		if err != nil {
			return fmt.Errorf("init gemini provider: %w", err)
		}
	}

	lookupSvc := lookup.NewService(logger, cambridgeProv, merriamProv, geminiProv, merriamProv, store, cfg.Lookup)

	var translateSvc *translate.Service
	if geminiProv != nil {
		translateSvc = translate.NewService(logger, geminiProv, store, cfg.Lookup)
	} else {
		translateSvc = translate.NewService(logger, nil, store, cfg.Lookup)
	}

	handler, stopLimiter := buildHandler(cfg, logger, lookupSvc, translateSvc, store)
	defer stopLimiter()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewCacheStore builds the configured cache backend.
func NewCacheStore(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (CacheStore, error) {
	switch cfg.Backend {
	case config.CacheBackendMemory:
		return memory.NewStore(), nil
	case config.CacheBackendSQLite:
		store, err := sqlitecache.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite cache: %w", err)
		}
		logger.Info("sqlite cache ready", slog.String("path", cfg.SQLitePath))
		return store, nil
	case config.CacheBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres cache: %w", err)
		}
		return postgres.NewCacheStore(pool), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// buildHandler assembles the route table with its middleware chain. The
// returned stop function terminates the rate limiter's cleanup goroutine.
func buildHandler(
	cfg *config.Config,
	logger *slog.Logger,
	lookupSvc *lookup.Service,
	translateSvc *translate.Service,
	store CacheStore,
) (http.Handler, func()) {
	lookupHandler := rest.NewLookupHandler(lookupSvc, logger)
	translateHandler := rest.NewTranslateHandler(translateSvc, logger)
	healthHandler := rest.NewHealthHandler(store, BuildVersion())

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Auth.JWTSecret != "" {
		jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		mws = append(mws, middleware.Auth(jwtMgr))
		logger.Info("bearer auth enabled", slog.String("issuer", cfg.Auth.JWTIssuer))
	}

	stop := func() {}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		stop = limiter.Stop
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	api := middleware.Chain(mws...)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/lookup", api(requireMethod(http.MethodGet, lookupHandler.Lookup)))
	mux.Handle("/api/v1/translate", api(requireMethod(http.MethodPost, translateHandler.Translate)))
	mux.HandleFunc("/livez", healthHandler.Live)
	mux.HandleFunc("/readyz", healthHandler.Ready)
	mux.HandleFunc("/health", healthHandler.Health)

	return mux, stop
}

// requireMethod rejects other verbs with 405. CORS preflight never reaches
// this guard; the CORS middleware answers OPTIONS itself.
func requireMethod(method string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	})
}
