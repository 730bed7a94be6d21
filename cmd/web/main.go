package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"layoffscli/internal/config"
	"layoffscli/internal/infrastructure"
	"layoffscli/internal/services"
	"layoffscli/internal/store"
	transport "layoffscli/internal/transport/http"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	baseDir := flag.String("base", "", "base directory for data, logs and the staging store (defaults to the working directory)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	paths, err := config.NewPaths(*baseDir)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = paths.GetLogPath("web.log")
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if err := run(cfg, paths, logger); err != nil {
		logger.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, paths *config.Paths, logger *slog.Logger) error {
	db, err := store.Open(paths.StoragePath)
	if err != nil {
		return fmt.Errorf("failed to open staging store: %w", err)
	}
	defer db.Close()

	router := transport.NewRouter(transport.RouterDeps{
		Config:  cfg,
		Logger:  logger,
		Reports: services.NewReportsService(db, logger),
		Health:  services.NewHealthService(db, Version, logger),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("report API listening",
			slog.String("addr", server.Addr),
			slog.String("version", Version),
			slog.String("storage", paths.StoragePath))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		timeout := cfg.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		logger.Info("shutting down", slog.Duration("timeout", timeout))
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
