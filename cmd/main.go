package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matchfit/scorebox/internal/adapters/http/api"
	"github.com/matchfit/scorebox/internal/adapters/repository"
	"github.com/matchfit/scorebox/internal/app"
	"github.com/matchfit/scorebox/internal/config"
	"github.com/matchfit/scorebox/internal/seed"
	"github.com/matchfit/scorebox/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store := repository.NewMemoryStore()
	if cfg.SeedFile != "" {
		fixture, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			log.Error(ctx, "failed to load seed file", logger.String("path", cfg.SeedFile), logger.Error(err))
			return
		}
		if err := seed.Apply(ctx, fixture, store, store); err != nil {
			log.Error(ctx, "failed to apply seed file", logger.Error(err))
			return
		}
		log.Info(ctx, "seed fixture applied",
			logger.String("path", cfg.SeedFile),
			logger.Int("categories", len(fixture.Categories)),
		)
	}

	svc := app.New(
		app.WithStores(store, store, store),
		app.WithLogger(log),
		app.WithLockTimeout(time.Duration(cfg.LockTimeoutMS)*time.Millisecond),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewServer(svc, svc, api.WithMaxListLimit(cfg.MaxRankingLimit)).Router(),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(context.Background(), "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "graceful shutdown failed", logger.Error(err))
	}
	log.Info(context.Background(), "server stopped")
}
