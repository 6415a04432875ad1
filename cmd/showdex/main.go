package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kinetic-pages/showdex/internal/config"
	"github.com/kinetic-pages/showdex/internal/db"
	dbRedis "github.com/kinetic-pages/showdex/internal/db/redis"
	logpkg "github.com/kinetic-pages/showdex/internal/logger"
	"github.com/kinetic-pages/showdex/internal/metrics"
	catalogrepo "github.com/kinetic-pages/showdex/internal/repository/catalog"
	historyrepo "github.com/kinetic-pages/showdex/internal/repository/history"
	chiTransport "github.com/kinetic-pages/showdex/internal/transport/chi"
	wsTransport "github.com/kinetic-pages/showdex/internal/transport/ws"
	filteruc "github.com/kinetic-pages/showdex/internal/usecase/filter"
	queryuc "github.com/kinetic-pages/showdex/internal/usecase/query"
	searchuc "github.com/kinetic-pages/showdex/internal/usecase/search"
	"github.com/kinetic-pages/showdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting showdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_path", cfg.Catalog.Path),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	// Database is optional: without it, query history stays in-memory.
	var store db.Store
	if len(cfg.Database.Addrs) > 0 {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer store.Close()

		ctx := context.Background()
		readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		logger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	}

	var history queryuc.HistoryStore
	if store != nil {
		history = historyrepo.New(store, cfg.Storage.KeyPrefix, cfg.Search.HistoryCapacity, logger)
	}

	// Build the search core.
	scorer := searchuc.NewScorer(searchuc.DefaultWeights())
	engine := searchuc.New(scorer, cfg.Catalog.DefaultLanguage, logger)
	filters := filteruc.New()
	provider := &catalogrepo.Provider{}

	// Load the catalog asynchronously: the server starts immediately and
	// answers 503 until the catalog is bound.
	go func() {
		catalog, err := catalogrepo.Load(cfg.Catalog.Path, cfg.Catalog.FallbackLanguage)
		if err != nil {
			logger.Fatal("Failed to load catalog",
				zap.String("path", cfg.Catalog.Path), zap.Error(err))
		}
		engine.Bind(catalog)
		provider.Set(catalog)
		logger.Info("Catalog loaded",
			zap.Int("records", catalog.Len()),
			zap.Int("categories", len(catalog.Categories())),
		)
	}()

	caps := queryuc.Caps{
		History:    cfg.Search.SuggestHistory,
		Records:    cfg.Search.SuggestRecords,
		Categories: cfg.Search.SuggestCategories,
		Total:      cfg.Search.SuggestTotal,
	}
	ctrlCfg := queryuc.Config{
		DebounceDelay:   time.Duration(cfg.Search.DebounceMillis) * time.Millisecond,
		HistoryCapacity: cfg.Search.HistoryCapacity,
		SuggestionCaps:  caps,
	}

	server := chiTransport.NewServer(engine, filters, provider, history, caps, logger)
	wsHandler := wsTransport.NewHandler(engine, filters, provider, history, ctrlCfg, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)
	r.Get("/ws", wsHandler.ServeHTTP)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request.
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
