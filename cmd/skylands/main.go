package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ericfisherdev/skylands/internal/adapter/driven/filekv"
	sqliteadapter "github.com/ericfisherdev/skylands/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/skylands/internal/adapter/driving/http"
	"github.com/ericfisherdev/skylands/internal/application"
	"github.com/ericfisherdev/skylands/internal/config"
	"github.com/ericfisherdev/skylands/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid values).
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"store", cfg.Store,
		"db_path", cfg.DBPath,
		"data_dir", cfg.DataDir,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the key-value backend.
	kv, closeKV, err := openKVStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeKV()

	// 4. Wire the core. The panel coordinator lives exactly as long as this process.
	placeStore := application.NewPlaceStore(kv)
	panel := application.NewPanelCoordinator()

	// 5. Create HTTP handler and register API routes.
	handler := httphandler.NewServeMux(httphandler.NewHandler(placeStore, panel, logger), logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	slog.Info("skylands started", "listen_addr", cfg.ListenAddr, "store", cfg.Store)

	// 6. Wait for shutdown signal or server failure.
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	// 7. Graceful shutdown.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

// openKVStore opens the configured key-value backend and returns a function
// that releases it.
func openKVStore(ctx context.Context, cfg *config.Config) (driven.KVStore, func(), error) {
	switch cfg.Store {
	case config.StoreFile:
		store, err := filekv.New(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("file store opened", "dir", cfg.DataDir)
		return store, func() {}, nil

	default:
		db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("database opened", "path", cfg.DBPath)

		// Run migrations on writer connection.
		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		slog.Info("migrations complete")

		closeDB := func() {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}
		return sqliteadapter.NewKVRepo(db), closeDB, nil
	}
}
