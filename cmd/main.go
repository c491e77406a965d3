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

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/lmittmann/tint"
	"github.com/shopspring/decimal"

	httpadapter "launchpad/internal/adapter/http"
	"launchpad/internal/adapter/memory"
	pgadapter "launchpad/internal/adapter/postgres"
	"launchpad/internal/adapter/usecase"
	"launchpad/internal/config"
	"launchpad/internal/core/port"
	"launchpad/internal/db"
)

// main is the entry point of the launchpad service. It loads configuration,
// optionally runs database migrations, wires the campaign ledger with its
// collaborators, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load .env when present, then configuration from environment variables.
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		case "pretty":
			handler = tint.NewHandler(os.Stdout, &tint.Options{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The in-memory collaborators stand in for the external token and
	// funding-pool services; dev balances are minted below in memory mode.
	tokens := memory.NewTokenService(cfg.Platform.CustodyAccount)
	pool := memory.NewLiquidityPool()

	var repo port.CampaignRepository
	switch cfg.Store.Driver {
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pgPool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pgPool.Close()
		if cfg.Env == "dev" {
			if err = db.Seed(ctx, pgPool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			}
		}
		repo = pgadapter.NewCampaignRepository(pgPool)
	default:
		repo = memory.NewCampaignRepository()
		if cfg.Env == "dev" {
			// demo balances so the create/contribute flows work out of the box
			tokens.Mint("DEMO", "demo-organizer", decimal.NewFromInt(10_000))
			tokens.Mint(cfg.Platform.FundsToken, "demo-alice", decimal.NewFromInt(1_000))
			tokens.Mint(cfg.Platform.FundsToken, "demo-bob", decimal.NewFromInt(1_000))
		}
	}

	clock := clockwork.NewRealClock()
	svc, err := usecase.NewCampaignUseCase(usecase.Config{
		Repo:           repo,
		Tokens:         tokens,
		Pool:           pool,
		Logger:         logger,
		Clock:          clock,
		FeePercent:     cfg.Platform.FeePercent,
		FeeRecipient:   cfg.Platform.FeeRecipient,
		CustodyAccount: cfg.Platform.CustodyAccount,
		FundsToken:     cfg.Platform.FundsToken,
		GracePeriod:    cfg.Platform.GracePeriod,
	})
	if err != nil {
		logger.Error("failed to build use case", slog.Any("error", err))
		os.Exit(1)
	}

	handler := httpadapter.NewHandler(svc, logger, clock, cfg.Platform.GracePeriod)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
