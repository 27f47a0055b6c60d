package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "ansuads/internal/adapter/http"
	"ansuads/internal/adapter/sqlite"
	"ansuads/internal/adapter/usecase"
	"ansuads/internal/config"
	"ansuads/internal/db"
)

// main is the entry point of the ansuads service. It loads configuration,
// opens the embedded database, optionally runs migrations, seeds demo data
// into an empty store, wires the repositories and usecases, then starts the
// HTTP server. On receiving a termination signal it gracefully shuts down.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout))

	database, err := db.Open(cfg.DB)
	if err != nil {
		logger.Error("database open error", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close()

	if cfg.DB.RunMigrations {
		if err = db.Migrate(database); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	campaignRepo := sqlite.NewCampaignRepository(database)
	userRepo := sqlite.NewUserRepository(database)
	sessionRepo := sqlite.NewSessionRepository(database)

	// Seed failure is recoverable: the store simply starts empty.
	if err = db.EnsureSeed(ctx, campaignRepo, cfg.Seed, logger.With("component", "seed")); err != nil {
		logger.Warn("seed error", slog.Any("error", err))
	}

	campaigns := usecase.NewCampaignUseCase(campaignRepo)
	auth := usecase.NewAuthUseCase(userRepo, sessionRepo)

	handler := httpadapter.NewHandler(campaigns, auth, logger.With("component", "http"))
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
