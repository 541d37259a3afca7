// Package main provides the entry point for the giftvault server.
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

	"github.com/mgrunewald/giftvault/internal/api"
	"github.com/mgrunewald/giftvault/internal/clock"
	"github.com/mgrunewald/giftvault/internal/config"
	"github.com/mgrunewald/giftvault/internal/repository"
	"github.com/mgrunewald/giftvault/internal/seed"
	"github.com/mgrunewald/giftvault/internal/services"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	facade := buildFacade(cfg)

	if path := cfg.GetSeedFile(); path != "" {
		s, err := seed.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load seed file: %w", err)
		}
		if err := s.Apply(ctx, facade); err != nil {
			return fmt.Errorf("failed to apply seed: %w", err)
		}
		logger.Info("seed applied",
			slog.String("file", path),
			slog.Int("users", len(s.Users)),
			slog.Int("gift_cards", len(s.GiftCards)),
			slog.Int("merchants", len(s.Merchants)),
		)
	}

	router := api.NewRouter(api.RouterConfig{
		Facade:     facade,
		Logger:     logger,
		Production: cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:         ":" + cfg.GetServerPort(),
		Handler:      router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
		IdleTimeout:  cfg.GetIdleTimeout(),
	}

	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	select {
	case <-sigChan:
		logger.Info("shutdown signal received")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// buildFacade wires the stores, services and facade together.
func buildFacade(cfg *config.AppConfig) services.Facade {
	clk := clock.System()

	users := repository.NewMemoryUserRepository()
	sessions := repository.NewMemorySessionRepository()
	cards := repository.NewMemoryGiftCardRepository()
	claims := repository.NewMemoryClaimRepository()
	merchants := repository.NewMemoryMerchantRepository()
	charges := repository.NewMemoryChargeRepository()

	var verifier services.SecretVerifier
	switch cfg.GetSecretScheme() {
	case config.SecretSchemePlain:
		verifier = services.NewPlainVerifier()
	default:
		verifier = services.NewBcryptVerifier()
	}

	sessionService := services.NewSessionService(sessions, clk, cfg.GetSessionTTL(), nil)
	claimService := services.NewClaimService(sessionService, cards, claims, clk)
	chargeService := services.NewChargeService(cards, charges, clk)

	return services.NewFacade(services.FacadeDeps{
		Users:     users,
		Verifier:  verifier,
		Sessions:  sessionService,
		Cards:     cards,
		Claims:    claimService,
		ClaimRepo: claims,
		Merchants: merchants,
		Charges:   chargeService,
		Clock:     clk,
	})
}

// newLogger builds the process logger from config.
func newLogger(cfg *config.AppConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.GetLogLevel() {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
