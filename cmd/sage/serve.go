package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/sage/internal/config"
	dbRedis "github.com/kailas-cloud/sage/internal/db/redis"
	"github.com/kailas-cloud/sage/internal/domain/corpus"
	logpkg "github.com/kailas-cloud/sage/internal/logger"
	"github.com/kailas-cloud/sage/internal/metrics"
	chiTransport "github.com/kailas-cloud/sage/internal/transport/chi"
	chatuc "github.com/kailas-cloud/sage/internal/usecase/chat"
	healthuc "github.com/kailas-cloud/sage/internal/usecase/health"
	searchuc "github.com/kailas-cloud/sage/internal/usecase/search"
	"github.com/kailas-cloud/sage/internal/version"
)

type serveOptions struct {
	configPath string
	port       int
}

func (o *serveOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", "", "path to a YAML config (default: config/$ENV.yaml)")
	cmd.Flags().IntVar(&o.port, "port", 0, "override http.port")
}

func newServeCommand() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func loadConfig(env, path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(env)
}

func runServe(ctx context.Context, opts serveOptions) error {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := loadConfig(env, opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.port != 0 {
		cfg.HTTP.Port = opts.port
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --port: %w", err)
		}
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting sage API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("db_enabled", cfg.Database.Enabled()),
		zap.String("db_driver", cfg.Database.Driver),
	)

	// Pass a nil interface (not a typed nil pointer) when no store is configured.
	var database healthuc.Database
	if cfg.Database.Enabled() {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:       cfg.Database.Addrs,
			Username:    cfg.Database.Username,
			Password:    cfg.Database.Password,
			DB:          cfg.Database.DB,
			DialTimeout: time.Duration(cfg.Database.DialTimeoutMS) * time.Millisecond,
		})
		if err != nil {
			// The diagnostic endpoint reports the store as unreachable; serving continues.
			logger.Error("Failed to create database store", zap.Error(err))
			database = unavailableStore{err: err}
		} else {
			defer store.Close()
			readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
			if err := store.WaitForReady(ctx, readiness); err != nil {
				logger.Warn("Database not ready, continuing without it", zap.Error(err))
			} else {
				logger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
			}
			database = store
		}
	}

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterReplyMetrics()

	selector := searchuc.New(corpus.Default()).WithCache(cfg.Reply.CacheSize)
	chatSvc := chatuc.New(selector).
		WithLimit(*cfg.Reply.PickLimit).
		WithRecorder(metrics.ReplyRecorder{})
	healthSvc := healthuc.New(database, healthuc.Settings{
		URLSet:  cfg.Database.Enabled(),
		NameSet: cfg.Database.Name != "",
	}).WithTimeout(time.Duration(cfg.Database.ProbeTimeoutMS) * time.Millisecond)

	server := chiTransport.NewServer(chatSvc, healthSvc, logger).
		WithMaxPromptChars(cfg.Reply.MaxPromptChars).
		WithStrictTone(*cfg.Reply.StrictTone)

	r := newRouter(cfg, server, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("Server stopped gracefully")
	return nil
}

// newRouter wires middleware and routes. Recovery is outermost; CORS runs
// before auth so preflight requests never need a token.
func newRouter(cfg config.Config, server *chiTransport.Server, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.CORSMiddleware(chiTransport.CORSConfig{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: *cfg.CORS.AllowCredentials,
	}))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)
	return r
}

// unavailableStore stands in for a store that could not be constructed.
type unavailableStore struct {
	err error
}

func (u unavailableStore) Ping(context.Context) error { return u.err }

func (u unavailableStore) ListCollections(context.Context, int) ([]string, error) {
	return nil, u.err
}
