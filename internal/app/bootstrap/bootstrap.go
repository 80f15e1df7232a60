package bootstrap

import (
	"log/slog"
	"os"
	"strings"

	payloadengine "meridian/contexts/commerce-events/payload-engine"
	"meridian/contexts/commerce-events/payload-engine/adapters/memory"
	postgresadapter "meridian/contexts/commerce-events/payload-engine/adapters/postgres"
	"meridian/internal/platform/config"
	"meridian/internal/platform/db"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type App struct {
	Module   payloadengine.Module
	Config   config.Config
	Logger   *slog.Logger
	postgres *db.Postgres
}

// Build wires the payload engine. With a DSN configured samples come from
// postgres; otherwise everything runs on the in-memory store.
func Build() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})).With("service", cfg.ServiceName)

	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		module := payloadengine.NewInMemoryModule(cfg.Version, cfg.PricesEnteredWithTax, logger)
		// Without a database the store starts empty; demo fixtures keep
		// sample generation usable out of the box.
		memory.SeedDemo(module.Store)
		return &App{Module: module, Config: cfg, Logger: logger}, nil
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	repo := postgresadapter.NewRepository(pg.DB, logger)
	if err := repo.Migrate(); err != nil {
		_ = pg.Close()
		return nil, err
	}

	store := memory.NewStore()
	module := payloadengine.NewModule(payloadengine.Dependencies{
		IDs:                  store,
		Pricing:              memory.NewStoredPricing(),
		Clock:                store,
		Samples:              repo,
		Warehouses:           repo,
		Anonymizer:           memory.NewAnonymizer(),
		Version:              cfg.Version,
		PricesEnteredWithTax: cfg.PricesEnteredWithTax,
		Logger:               logger,
	})
	return &App{Module: module, Config: cfg, Logger: logger, postgres: pg}, nil
}

func (a *App) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
