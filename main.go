package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/matchpoint-club/tournament-hub/app"
	"github.com/matchpoint-club/tournament-hub/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize app", slog.Any("error", err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: application.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		application.Logger.Info("HTTP server listening", slog.String("addr", cfg.HTTP.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		application.Logger.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			application.Logger.Error("HTTP server failed", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error("HTTP server shutdown failed", slog.Any("error", err))
	}
	if err := application.Close(); err != nil {
		application.Logger.Error("Error closing database connection", slog.Any("error", err))
	}

	application.Logger.Info("Application shut down gracefully")
}
